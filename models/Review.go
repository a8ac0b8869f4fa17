package models

import "gorm.io/gorm"

// A user may leave more than one review per property; there is no
// uniqueness constraint over (user_id, property_id).
type Review struct {
	gorm.Model
	UserID     uint   `json:"userID" gorm:"not null;index"`
	PropertyID uint   `json:"propertyID" gorm:"not null;index"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment" gorm:"type:text;not null"`

	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
