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

type busRow struct {
	ID              string    `gorm:"column:id"`
	OperatorName    string    `gorm:"column:operator_name"`
	BusType         string    `gorm:"column:bus_type"`
	DepartureTime   time.Time `gorm:"column:departure_time"`
	ArrivalTime     time.Time `gorm:"column:arrival_time"`
	Price           float64   `gorm:"column:price"`
	AvailableSeats  int       `gorm:"column:available_seats"`
	TotalSeats      int       `gorm:"column:total_seats"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	FromName        string    `gorm:"column:from_name"`
	FromCity        string    `gorm:"column:from_city"`
	ToName          string    `gorm:"column:to_name"`
	ToCity          string    `gorm:"column:to_city"`
}

func (r busRow) toResult() models.BusSearchResult {
	return models.BusSearchResult{
		ID:              r.ID,
		OperatorName:    r.OperatorName,
		BusType:         r.BusType,
		DepartureTime:   r.DepartureTime,
		ArrivalTime:     r.ArrivalTime,
		Price:           r.Price,
		AvailableSeats:  r.AvailableSeats,
		TotalSeats:      r.TotalSeats,
		DurationMinutes: r.DurationMinutes,
		FromDestination: models.PlaceSummary{Name: r.FromName, City: r.FromCity},
		ToDestination:   models.PlaceSummary{Name: r.ToName, City: r.ToCity},
	}
}

// SearchBuses handles POST /api/buses/search. Buses carry a free-text type
// instead of a seat-class enum, so there is no class filter.
func SearchBuses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BusSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters", "errors": bindingErrors(err)})
			return
		}
		if req.Passengers == 0 {
			req.Passengers = 1
		}

		dayStart, dayEnd, err := dayWindow(req.JourneyDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journey date"})
			return
		}

		var rows []busRow
		err = db.Table("buses").
			Select(`buses.id, buses.operator_name, buses.bus_type, buses.departure_time,
				buses.arrival_time, buses.price, buses.available_seats, buses.total_seats,
				buses.duration_minutes,
				from_dest.name AS from_name, from_dest.city AS from_city,
				to_dest.name AS to_name, to_dest.city AS to_city`).
			Joins("JOIN destinations from_dest ON from_dest.id = buses.from_destination_id").
			Joins("JOIN destinations to_dest ON to_dest.id = buses.to_destination_id").
			Where("LOWER(from_dest.city) LIKE ?", like(req.From)).
			Where("LOWER(to_dest.city) LIKE ?", like(req.To)).
			Where("buses.departure_time >= ? AND buses.departure_time < ?", dayStart, dayEnd).
			Where("buses.available_seats >= ?", req.Passengers).
			Order("buses.departure_time asc").
			Scan(&rows).Error
		if err != nil {
			config.Logger.Error("bus search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search buses"})
			return
		}

		results := make([]models.BusSearchResult, 0, len(rows))
		for _, r := range rows {
			results = append(results, r.toResult())
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetBus handles GET /api/buses/:id.
func GetBus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bus models.Bus
		err := db.Preload("FromDestination").Preload("ToDestination").
			First(&bus, "id = ?", c.Param("id")).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
			return
		}

		c.JSON(http.StatusOK, bus)
	}
}
