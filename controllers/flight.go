package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// flightRow is the flat scan target for the joined flight search query.
type flightRow struct {
	ID              string    `gorm:"column:id"`
	FlightNumber    string    `gorm:"column:flight_number"`
	DepartureTime   time.Time `gorm:"column:departure_time"`
	ArrivalTime     time.Time `gorm:"column:arrival_time"`
	Price           float64   `gorm:"column:price"`
	AvailableSeats  int       `gorm:"column:available_seats"`
	TotalSeats      int       `gorm:"column:total_seats"`
	SeatClass       string    `gorm:"column:seat_class"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	AirlineName     string    `gorm:"column:airline_name"`
	AirlineCode     string    `gorm:"column:airline_code"`
	AirlineLogoURL  string    `gorm:"column:airline_logo_url"`
	FromName        string    `gorm:"column:from_name"`
	FromCity        string    `gorm:"column:from_city"`
	ToName          string    `gorm:"column:to_name"`
	ToCity          string    `gorm:"column:to_city"`
}

func (r flightRow) toResult() models.FlightSearchResult {
	return models.FlightSearchResult{
		ID:              r.ID,
		FlightNumber:    r.FlightNumber,
		DepartureTime:   r.DepartureTime,
		ArrivalTime:     r.ArrivalTime,
		Price:           r.Price,
		AvailableSeats:  r.AvailableSeats,
		TotalSeats:      r.TotalSeats,
		SeatClass:       r.SeatClass,
		DurationMinutes: r.DurationMinutes,
		Airline:         models.AirlineSummary{Name: r.AirlineName, Code: r.AirlineCode, LogoURL: r.AirlineLogoURL},
		FromDestination: models.PlaceSummary{Name: r.FromName, City: r.FromCity},
		ToDestination:   models.PlaceSummary{Name: r.ToName, City: r.ToCity},
	}
}

// SearchFlights handles POST /api/flights/search. Matches flights departing
// on the requested day between cities matched by case-insensitive substring,
// in the requested class, with enough free seats.
func SearchFlights(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FlightSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters", "errors": bindingErrors(err)})
			return
		}
		if req.Passengers == 0 {
			req.Passengers = 1
		}
		if req.SeatClass == "" {
			req.SeatClass = models.SeatClassEconomy
		}

		dayStart, dayEnd, err := dayWindow(req.DepartureDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure date"})
			return
		}

		var rows []flightRow
		err = db.Table("flights").
			Select(`flights.id, flights.flight_number, flights.departure_time, flights.arrival_time,
				flights.price, flights.available_seats, flights.total_seats, flights.seat_class,
				flights.duration_minutes,
				airlines.name AS airline_name, airlines.code AS airline_code, airlines.logo_url AS airline_logo_url,
				from_dest.name AS from_name, from_dest.city AS from_city,
				to_dest.name AS to_name, to_dest.city AS to_city`).
			Joins("JOIN airlines ON airlines.id = flights.airline_id").
			Joins("JOIN destinations from_dest ON from_dest.id = flights.from_destination_id").
			Joins("JOIN destinations to_dest ON to_dest.id = flights.to_destination_id").
			Where("LOWER(from_dest.city) LIKE ?", like(req.From)).
			Where("LOWER(to_dest.city) LIKE ?", like(req.To)).
			Where("flights.departure_time >= ? AND flights.departure_time < ?", dayStart, dayEnd).
			Where("flights.seat_class = ?", req.SeatClass).
			Where("flights.available_seats >= ?", req.Passengers).
			Order("flights.departure_time asc").
			Scan(&rows).Error
		if err != nil {
			config.Logger.Error("flight search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search flights"})
			return
		}

		results := make([]models.FlightSearchResult, 0, len(rows))
		for _, r := range rows {
			results = append(results, r.toResult())
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetFlight handles GET /api/flights/:id.
func GetFlight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var flight models.Flight
		err := db.Preload("Airline").Preload("FromDestination").Preload("ToDestination").
			First(&flight, "id = ?", c.Param("id")).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}

		c.JSON(http.StatusOK, flight)
	}
}
