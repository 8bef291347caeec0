package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seat classes offered on flights.
const (
	SeatClassEconomy  = "economy"
	SeatClassBusiness = "business"
	SeatClassFirst    = "first"
)

type Flight struct {
	ID                string      `gorm:"type:uuid;primaryKey" json:"id"`
	AirlineID         string      `gorm:"type:uuid;not null;index" json:"airlineId"`
	Airline           Airline     `gorm:"foreignKey:AirlineID" json:"airline,omitempty"`
	FlightNumber      string      `gorm:"size:10;not null" json:"flightNumber"`
	FromDestinationID string      `gorm:"type:uuid;not null;index" json:"fromDestinationId"`
	FromDestination   Destination `gorm:"foreignKey:FromDestinationID" json:"fromDestination,omitempty"`
	ToDestinationID   string      `gorm:"type:uuid;not null;index" json:"toDestinationId"`
	ToDestination     Destination `gorm:"foreignKey:ToDestinationID" json:"toDestination,omitempty"`
	DepartureTime     time.Time   `gorm:"not null;index" json:"departureTime"`
	ArrivalTime       time.Time   `gorm:"not null" json:"arrivalTime"`
	Price             float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	AvailableSeats    int         `gorm:"not null" json:"availableSeats"`
	TotalSeats        int         `gorm:"not null" json:"totalSeats"`
	SeatClass         string      `gorm:"size:20;not null" json:"seatClass"`
	DurationMinutes   int         `gorm:"not null" json:"durationMinutes"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (f *Flight) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
