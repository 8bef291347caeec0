package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bus struct {
	ID                string      `gorm:"type:uuid;primaryKey" json:"id"`
	OperatorName      string      `gorm:"not null" json:"operatorName"`
	FromDestinationID string      `gorm:"type:uuid;not null;index" json:"fromDestinationId"`
	FromDestination   Destination `gorm:"foreignKey:FromDestinationID" json:"fromDestination,omitempty"`
	ToDestinationID   string      `gorm:"type:uuid;not null;index" json:"toDestinationId"`
	ToDestination     Destination `gorm:"foreignKey:ToDestinationID" json:"toDestination,omitempty"`
	DepartureTime     time.Time   `gorm:"not null;index" json:"departureTime"`
	ArrivalTime       time.Time   `gorm:"not null" json:"arrivalTime"`
	Price             float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	AvailableSeats    int         `gorm:"not null" json:"availableSeats"`
	TotalSeats        int         `gorm:"not null" json:"totalSeats"`
	BusType           string      `gorm:"size:30;not null" json:"busType"` // AC, Non-AC, Sleeper, etc.
	DurationMinutes   int         `gorm:"not null" json:"durationMinutes"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (b *Bus) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
