package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TravelTypeFlight = "flight"
	TravelTypeHotel  = "hotel"
	TravelTypeTrain  = "train"
	TravelTypeBus    = "bus"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string `gorm:"type:uuid;not null;index" json:"userId"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
	TravelType string `gorm:"size:10;not null" json:"travelType"`

	// Exactly one of these is set, matching TravelType.
	FlightID *string `gorm:"type:uuid;index" json:"flightId,omitempty"`
	HotelID  *string `gorm:"type:uuid;index" json:"hotelId,omitempty"`
	TrainID  *string `gorm:"type:uuid;index" json:"trainId,omitempty"`
	BusID    *string `gorm:"type:uuid;index" json:"busId,omitempty"`

	PassengerDetails datatypes.JSON `gorm:"not null" json:"passengerDetails"`
	// Seats for flights/trains/buses, rooms for hotels. Needed to restore
	// availability when the booking is cancelled.
	Quantity     int        `gorm:"not null;default:1" json:"quantity"`
	TotalAmount  float64    `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status       string     `gorm:"size:20;default:'pending';index" json:"status"`
	BookingDate  time.Time  `gorm:"autoCreateTime" json:"bookingDate"`
	TravelDate   time.Time  `gorm:"not null" json:"travelDate"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`  // hotels only
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"` // hotels only
	PaymentID    string     `json:"paymentId,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// CanTransition reports whether a booking may move between the two statuses.
// Cancelled and completed are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled || to == BookingStatusCompleted
	default:
		return false
	}
}
