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

type trainRow struct {
	ID              string    `gorm:"column:id"`
	TrainNumber     string    `gorm:"column:train_number"`
	TrainName       string    `gorm:"column:train_name"`
	DepartureTime   time.Time `gorm:"column:departure_time"`
	ArrivalTime     time.Time `gorm:"column:arrival_time"`
	Price           float64   `gorm:"column:price"`
	AvailableSeats  int       `gorm:"column:available_seats"`
	SeatClass       string    `gorm:"column:seat_class"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	FromName        string    `gorm:"column:from_name"`
	FromCity        string    `gorm:"column:from_city"`
	ToName          string    `gorm:"column:to_name"`
	ToCity          string    `gorm:"column:to_city"`
}

func (r trainRow) toResult() models.TrainSearchResult {
	return models.TrainSearchResult{
		ID:              r.ID,
		TrainNumber:     r.TrainNumber,
		TrainName:       r.TrainName,
		DepartureTime:   r.DepartureTime,
		ArrivalTime:     r.ArrivalTime,
		Price:           r.Price,
		AvailableSeats:  r.AvailableSeats,
		SeatClass:       r.SeatClass,
		DurationMinutes: r.DurationMinutes,
		FromDestination: models.PlaceSummary{Name: r.FromName, City: r.FromCity},
		ToDestination:   models.PlaceSummary{Name: r.ToName, City: r.ToCity},
	}
}

// SearchTrains handles POST /api/trains/search. The train search form carries
// no passenger count, so availability only requires at least one free seat.
func SearchTrains(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TrainSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters", "errors": bindingErrors(err)})
			return
		}
		if req.SeatClass == "" {
			req.SeatClass = models.SeatClassSleeper
		}

		dayStart, dayEnd, err := dayWindow(req.JourneyDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journey date"})
			return
		}

		var rows []trainRow
		err = db.Table("trains").
			Select(`trains.id, trains.train_number, trains.train_name, trains.departure_time,
				trains.arrival_time, trains.price, trains.available_seats, trains.seat_class,
				trains.duration_minutes,
				from_dest.name AS from_name, from_dest.city AS from_city,
				to_dest.name AS to_name, to_dest.city AS to_city`).
			Joins("JOIN destinations from_dest ON from_dest.id = trains.from_destination_id").
			Joins("JOIN destinations to_dest ON to_dest.id = trains.to_destination_id").
			Where("LOWER(from_dest.city) LIKE ?", like(req.From)).
			Where("LOWER(to_dest.city) LIKE ?", like(req.To)).
			Where("trains.departure_time >= ? AND trains.departure_time < ?", dayStart, dayEnd).
			Where("trains.seat_class = ?", req.SeatClass).
			Where("trains.available_seats >= ?", 1).
			Order("trains.departure_time asc").
			Scan(&rows).Error
		if err != nil {
			config.Logger.Error("train search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search trains"})
			return
		}

		results := make([]models.TrainSearchResult, 0, len(rows))
		for _, r := range rows {
			results = append(results, r.toResult())
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetTrain handles GET /api/trains/:id.
func GetTrain(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var train models.Train
		err := db.Preload("FromDestination").Preload("ToDestination").
			First(&train, "id = ?", c.Param("id")).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
			return
		}

		c.JSON(http.StatusOK, train)
	}
}
