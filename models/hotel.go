package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID             string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	DestinationID  string         `gorm:"type:uuid;not null;index" json:"destinationId"`
	Destination    Destination    `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	Address        string         `gorm:"type:text;not null" json:"address"`
	Rating         float64        `gorm:"type:decimal(2,1)" json:"rating"`
	PricePerNight  float64        `gorm:"type:decimal(10,2);not null" json:"pricePerNight"`
	Amenities      datatypes.JSON `json:"amenities,omitempty"` // JSON array of strings
	ImageURL       string         `json:"imageUrl,omitempty"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	AvailableRooms int            `gorm:"not null" json:"availableRooms"`
	TotalRooms     int            `gorm:"not null" json:"totalRooms"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
