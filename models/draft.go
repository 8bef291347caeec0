package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Checkout steps. A draft only moves forward: selected -> details -> completed.
const (
	DraftStepSelected  = "selected"
	DraftStepDetails   = "details"
	DraftStepCompleted = "completed"
)

// BookingDraft is the server-issued checkout state. It replaces client-held
// wizard state: each step validates its input and advances the draft, and the
// final payment step hands off to the booking capability.
type BookingDraft struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string `gorm:"type:uuid;not null;index" json:"userId"`
	TravelType string `gorm:"size:10;not null" json:"travelType"`

	FlightID *string `gorm:"type:uuid" json:"flightId,omitempty"`
	HotelID  *string `gorm:"type:uuid" json:"hotelId,omitempty"`
	TrainID  *string `gorm:"type:uuid" json:"trainId,omitempty"`
	BusID    *string `gorm:"type:uuid" json:"busId,omitempty"`

	Travelers    int        `gorm:"not null;default:1" json:"travelers"`
	Rooms        int        `gorm:"not null;default:1" json:"rooms"` // hotels only
	TravelDate   time.Time  `gorm:"not null" json:"travelDate"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`

	// Unit price captured at selection time; the total is always recomputed
	// server-side from it.
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	PassengerDetails datatypes.JSON `json:"passengerDetails,omitempty"` // set at the details step
	Step             string         `gorm:"size:20;default:'selected'" json:"step"`
	BookingID        *string        `gorm:"type:uuid" json:"bookingId,omitempty"` // set at completion
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *BookingDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
