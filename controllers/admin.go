package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// Admin: add a destination.
func AdminAddDestination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var d models.Destination
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if d.Name == "" || d.City == "" || d.State == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, city and state are required"})
			return
		}

		if err := db.Create(&d).Error; err != nil {
			config.Logger.Error("failed to create destination", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create destination"})
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

// Admin: add an airline.
func AdminAddAirline(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a models.Airline
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if a.Name == "" || a.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and code are required"})
			return
		}

		if err := db.Create(&a).Error; err != nil {
			config.Logger.Error("failed to create airline", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create airline"})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// Admin: add a flight.
func AdminAddFlight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f models.Flight
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if f.AirlineID == "" || f.FromDestinationID == "" || f.ToDestinationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "airlineId, fromDestinationId and toDestinationId are required"})
			return
		}
		if f.FromDestinationID == f.ToDestinationID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDestinationId and toDestinationId must differ"})
			return
		}

		if err := db.Create(&f).Error; err != nil {
			config.Logger.Error("failed to create flight", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight"})
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}

// Admin: add a hotel.
func AdminAddHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var h models.Hotel
		if err := c.ShouldBindJSON(&h); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if h.Name == "" || h.DestinationID == "" || h.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, destinationId and address are required"})
			return
		}

		if err := db.Create(&h).Error; err != nil {
			config.Logger.Error("failed to create hotel", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel"})
			return
		}
		c.JSON(http.StatusCreated, h)
	}
}

// Admin: add a train.
func AdminAddTrain(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Train
		if err := c.ShouldBindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if t.FromDestinationID == "" || t.ToDestinationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDestinationId and toDestinationId are required"})
			return
		}
		if t.FromDestinationID == t.ToDestinationID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDestinationId and toDestinationId must differ"})
			return
		}

		if err := db.Create(&t).Error; err != nil {
			config.Logger.Error("failed to create train", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create train"})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

// Admin: add a bus.
func AdminAddBus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b models.Bus
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if b.OperatorName == "" || b.FromDestinationID == "" || b.ToDestinationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "operatorName, fromDestinationId and toDestinationId are required"})
			return
		}
		if b.FromDestinationID == b.ToDestinationID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDestinationId and toDestinationId must differ"})
			return
		}

		if err := db.Create(&b).Error; err != nil {
			config.Logger.Error("failed to create bus", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bus"})
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// Admin: publish a travel guide article.
func AdminAddArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a models.TravelGuideArticle
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if a.Title == "" || a.Content == "" || a.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, content and slug are required"})
			return
		}

		if a.AuthorID == "" {
			if userID, ok := currentUserID(c); ok {
				a.AuthorID = userID
			}
		}

		if err := db.Create(&a).Error; err != nil {
			config.Logger.Error("failed to create article", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// Admin: force a booking status. Unlike the owner route this does not check
// transitions, but cancelling still returns inventory.
func AdminUpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status", "errors": bindingErrors(err)})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.Status == models.BookingStatusCancelled && booking.Status != models.BookingStatusCancelled {
				if err := restoreAvailability(tx, &booking); err != nil {
					return err
				}
			}
			return tx.Model(&booking).Update("status", input.Status).Error
		})
		if err != nil {
			config.Logger.Error("failed to update booking status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}

		booking.Status = input.Status
		c.JSON(http.StatusOK, booking)
	}
}
