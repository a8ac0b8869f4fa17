package models

import "time"

// WishlistItem is one saved property in a user's wishlist. The unique
// index gives the list set semantics: inserting a duplicate is a no-op.
type WishlistItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userID" gorm:"not null;uniqueIndex:idx_wishlist_user_property"`
	PropertyID uint      `json:"propertyID" gorm:"not null;uniqueIndex:idx_wishlist_user_property"`
	AddedAt    time.Time `json:"addedAt" gorm:"autoCreateTime"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
