package models

import "fmt"

// Contact is who to reach about a booking, regardless of travel type.
type Contact struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// Traveler is a seated passenger on a flight, train or bus.
type Traveler struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Age       int    `json:"age" binding:"required,min=1,max=120"`
	Gender    string `json:"gender" binding:"omitempty,oneof=male female other"`
}

// Guest is a hotel occupant.
type Guest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Age       int    `json:"age" binding:"required,min=1,max=120"`
}

// PassengerDetails is the tagged variant carried by a booking: Travelers for
// flights/trains/buses, Guests for hotels. ValidateFor enforces the match.
type PassengerDetails struct {
	Contact   Contact    `json:"contact" binding:"required"`
	Travelers []Traveler `json:"travelers,omitempty" binding:"omitempty,dive"`
	Guests    []Guest    `json:"guests,omitempty" binding:"omitempty,dive"`
}

// ValidateFor checks that the variant matches the booking's travel type.
func (p *PassengerDetails) ValidateFor(travelType string) error {
	switch travelType {
	case TravelTypeHotel:
		if len(p.Guests) == 0 {
			return fmt.Errorf("hotel bookings require at least one guest")
		}
		if len(p.Travelers) > 0 {
			return fmt.Errorf("hotel bookings carry guests, not travelers")
		}
	case TravelTypeFlight, TravelTypeTrain, TravelTypeBus:
		if len(p.Travelers) == 0 {
			return fmt.Errorf("%s bookings require at least one traveler", travelType)
		}
		if len(p.Guests) > 0 {
			return fmt.Errorf("%s bookings carry travelers, not guests", travelType)
		}
	default:
		return fmt.Errorf("unknown travel type %q", travelType)
	}
	return nil
}

// Count returns the number of people covered by the details.
func (p *PassengerDetails) Count(travelType string) int {
	if travelType == TravelTypeHotel {
		return len(p.Guests)
	}
	return len(p.Travelers)
}
