package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	gorm.Model
	PropertyID uint      `json:"propertyID" gorm:"not null;index"`
	UserID     uint      `json:"userID" gorm:"not null;index"`
	StartDate  time.Time `json:"startDate" gorm:"not null"`
	EndDate    time.Time `json:"endDate" gorm:"not null"`
	TotalPrice float64   `json:"totalPrice" gorm:"not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:confirmed"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// EffectiveStatus reports a confirmed booking whose end date has passed
// as completed. The transition is derived at read time, never persisted.
func (b *Booking) EffectiveStatus() string {
	if b.Status == BookingStatusConfirmed && b.EndDate.Before(time.Now()) {
		return BookingStatusCompleted
	}
	return b.Status
}

func (b *Booking) MarshalJSON() ([]byte, error) {
	type Alias Booking
	aux := &struct {
		Status string `json:"status"`
		*Alias
	}{
		Status: b.EffectiveStatus(),
		Alias:  (*Alias)(b),
	}
	return json.Marshal(aux)
}
