package models

import "time"

// Search request payloads. Defaults (passengers=1, seat classes) are applied
// by the handlers after binding.

type FlightSearchRequest struct {
	From          string `json:"from" binding:"required"`
	To            string `json:"to" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required,datetime=2006-01-02"`
	Passengers    int    `json:"passengers" binding:"omitempty,min=1"`
	SeatClass     string `json:"seatClass" binding:"omitempty,oneof=economy business first"`
}

type HotelSearchRequest struct {
	Destination  string `json:"destination" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	Guests       int    `json:"guests" binding:"omitempty,min=1"`
	Rooms        int    `json:"rooms" binding:"omitempty,min=1"`
}

type TrainSearchRequest struct {
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	JourneyDate string `json:"journeyDate" binding:"required,datetime=2006-01-02"`
	SeatClass   string `json:"seatClass" binding:"omitempty,oneof=sleeper ac3 ac2 ac1"`
}

type BusSearchRequest struct {
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	JourneyDate string `json:"journeyDate" binding:"required,datetime=2006-01-02"`
	Passengers  int    `json:"passengers" binding:"omitempty,min=1"`
}

// Denormalized rows returned by the search endpoints.

type PlaceSummary struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type AirlineSummary struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type FlightSearchResult struct {
	ID              string         `json:"id"`
	FlightNumber    string         `json:"flightNumber"`
	DepartureTime   time.Time      `json:"departureTime"`
	ArrivalTime     time.Time      `json:"arrivalTime"`
	Price           float64        `json:"price"`
	AvailableSeats  int            `json:"availableSeats"`
	TotalSeats      int            `json:"totalSeats"`
	SeatClass       string         `json:"seatClass"`
	DurationMinutes int            `json:"durationMinutes"`
	Airline         AirlineSummary `json:"airline"`
	FromDestination PlaceSummary   `json:"fromDestination"`
	ToDestination   PlaceSummary   `json:"toDestination"`
}

type HotelSearchResult struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	Rating         float64      `json:"rating"`
	PricePerNight  float64      `json:"pricePerNight"`
	Amenities      []string     `json:"amenities"`
	ImageURL       string       `json:"imageUrl,omitempty"`
	Description    string       `json:"description,omitempty"`
	AvailableRooms int          `json:"availableRooms"`
	TotalRooms     int          `json:"totalRooms"`
	Destination    PlaceSummary `json:"destination"`
}

type TrainSearchResult struct {
	ID              string       `json:"id"`
	TrainNumber     string       `json:"trainNumber"`
	TrainName       string       `json:"trainName"`
	DepartureTime   time.Time    `json:"departureTime"`
	ArrivalTime     time.Time    `json:"arrivalTime"`
	Price           float64      `json:"price"`
	AvailableSeats  int          `json:"availableSeats"`
	SeatClass       string       `json:"seatClass"`
	DurationMinutes int          `json:"durationMinutes"`
	FromDestination PlaceSummary `json:"fromDestination"`
	ToDestination   PlaceSummary `json:"toDestination"`
}

type BusSearchResult struct {
	ID              string       `json:"id"`
	OperatorName    string       `json:"operatorName"`
	BusType         string       `json:"busType"`
	DepartureTime   time.Time    `json:"departureTime"`
	ArrivalTime     time.Time    `json:"arrivalTime"`
	Price           float64      `json:"price"`
	AvailableSeats  int          `json:"availableSeats"`
	TotalSeats      int          `json:"totalSeats"`
	DurationMinutes int          `json:"durationMinutes"`
	FromDestination PlaceSummary `json:"fromDestination"`
	ToDestination   PlaceSummary `json:"toDestination"`
}
