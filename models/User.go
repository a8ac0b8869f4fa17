package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `json:"username" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Password       string `json:"password"`
	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
	Role           string `json:"role" gorm:"type:varchar(20);default:user;index"` // user, host, admin

	Properties []Property     `json:"properties,omitempty" gorm:"foreignKey:HostID;references:ID"`
	Wishlist   []WishlistItem `json:"wishlist,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// MarshalJSON hides the password hash and the properties back-reference.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password   string     `json:"password,omitempty"`
		Properties []Property `json:"properties,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(u),
	}
	return json.Marshal(aux)
}
