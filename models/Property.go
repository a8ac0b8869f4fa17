package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	HostID        uint           `json:"hostID" gorm:"not null;index"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Address       string         `json:"address"`
	City          string         `json:"city" gorm:"not null;index"`
	State         string         `json:"state"`
	Country       string         `json:"country" gorm:"not null"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	PricePerNight float64        `json:"pricePerNight" gorm:"not null;check:price_per_night > 0"`
	Photos        string         `json:"photos"` // JSON array of URLs
	Amenities     datatypes.JSON `json:"amenities"`
	MaxGuests     int            `json:"maxGuests" gorm:"not null"`
	Type          string         `json:"type" gorm:"type:varchar(20);not null"` // apartment, house, villa, cabin, hotel, other
	Rules         string         `json:"rules" gorm:"type:text"`
	Rating        float64        `json:"rating" gorm:"default:0"`
	NumReviews    int            `json:"numReviews" gorm:"default:0"`

	Host     User      `json:"host" gorm:"foreignKey:HostID;references:ID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:PropertyID;references:ID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:PropertyID;references:ID"`
}

var PropertyTypes = []string{"apartment", "house", "villa", "cabin", "hotel", "other"}

// MarshalJSON converts the Photos and Amenities columns to arrays and
// strips the host's circular references.
func (p *Property) MarshalJSON() ([]byte, error) {
	type Alias Property
	aux := &struct {
		Photos    []string `json:"photos"`
		Amenities []string `json:"amenities"`
		Host      *User    `json:"host,omitempty"`
		*Alias
	}{
		Photos:    []string{},
		Amenities: []string{},
		Alias:     (*Alias)(p),
	}

	if p.Photos != "" {
		var photos []string
		if err := json.Unmarshal([]byte(p.Photos), &photos); err == nil {
			aux.Photos = photos
		}
	}

	if p.Amenities != nil {
		var amenities []string
		if err := json.Unmarshal(p.Amenities, &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	if p.Host.ID > 0 {
		hostCopy := p.Host
		hostCopy.Properties = nil
		hostCopy.Password = ""
		aux.Host = &hostCopy
	}

	return json.Marshal(aux)
}
