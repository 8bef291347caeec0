package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seat classes offered on trains.
const (
	SeatClassSleeper = "sleeper"
	SeatClassAC3     = "ac3"
	SeatClassAC2     = "ac2"
	SeatClassAC1     = "ac1"
)

type Train struct {
	ID                string      `gorm:"type:uuid;primaryKey" json:"id"`
	TrainNumber       string      `gorm:"size:10;not null" json:"trainNumber"`
	TrainName         string      `gorm:"not null" json:"trainName"`
	FromDestinationID string      `gorm:"type:uuid;not null;index" json:"fromDestinationId"`
	FromDestination   Destination `gorm:"foreignKey:FromDestinationID" json:"fromDestination,omitempty"`
	ToDestinationID   string      `gorm:"type:uuid;not null;index" json:"toDestinationId"`
	ToDestination     Destination `gorm:"foreignKey:ToDestinationID" json:"toDestination,omitempty"`
	DepartureTime     time.Time   `gorm:"not null;index" json:"departureTime"`
	ArrivalTime       time.Time   `gorm:"not null" json:"arrivalTime"`
	Price             float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	AvailableSeats    int         `gorm:"not null" json:"availableSeats"`
	SeatClass         string      `gorm:"size:20;not null" json:"seatClass"`
	DurationMinutes   int         `gorm:"not null" json:"durationMinutes"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *Train) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
