package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// The checkout flow is a server-issued draft resource instead of client-held
// wizard state: select -> passenger details -> payment, with each step
// validated before the draft advances. A missing draft is a recoverable
// condition (the client restarts the search), so lookups return 404 rather
// than an error payload.

type checkoutStartRequest struct {
	TravelType   string `json:"travelType" binding:"required,oneof=flight hotel train bus"`
	ItemID       string `json:"itemId" binding:"required,uuid"`
	TravelDate   string `json:"travelDate" binding:"required"`
	CheckInDate  string `json:"checkInDate"`  // hotels only
	CheckOutDate string `json:"checkOutDate"` // hotels only
	Travelers    int    `json:"travelers" binding:"omitempty,min=1"`
	Rooms        int    `json:"rooms" binding:"omitempty,min=1"`
}

// StartCheckout handles POST /api/checkout: creates a draft from a selected
// inventory item. Prices come from the database, never from the client.
func StartCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req checkoutStartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout data", "errors": bindingErrors(err)})
			return
		}
		if req.Travelers == 0 {
			req.Travelers = 1
		}
		if req.Rooms == 0 {
			req.Rooms = 1
		}

		travelDate, err := parseDate(req.TravelDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid travelDate"})
			return
		}

		draft := models.BookingDraft{
			UserID:     userID,
			TravelType: req.TravelType,
			Travelers:  req.Travelers,
			Rooms:      req.Rooms,
			TravelDate: travelDate,
			Step:       models.DraftStepSelected,
		}

		switch req.TravelType {
		case models.TravelTypeFlight:
			var flight models.Flight
			if err := db.First(&flight, "id = ?", req.ItemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
				return
			}
			draft.FlightID = &flight.ID
			draft.UnitPrice = flight.Price
			draft.TotalAmount = flight.Price * float64(req.Travelers)

		case models.TravelTypeTrain:
			var train models.Train
			if err := db.First(&train, "id = ?", req.ItemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
				return
			}
			draft.TrainID = &train.ID
			draft.UnitPrice = train.Price
			draft.TotalAmount = train.Price * float64(req.Travelers)

		case models.TravelTypeBus:
			var bus models.Bus
			if err := db.First(&bus, "id = ?", req.ItemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
				return
			}
			draft.BusID = &bus.ID
			draft.UnitPrice = bus.Price
			draft.TotalAmount = bus.Price * float64(req.Travelers)

		case models.TravelTypeHotel:
			checkIn, err := parseDate(req.CheckInDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkInDate"})
				return
			}
			checkOut, err := parseDate(req.CheckOutDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkOutDate"})
				return
			}
			if !checkOut.After(checkIn) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "checkOutDate must be after checkInDate"})
				return
			}
			var hotel models.Hotel
			if err := db.First(&hotel, "id = ?", req.ItemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
				return
			}
			nights := int(checkOut.Sub(checkIn).Hours() / 24)
			if nights < 1 {
				nights = 1
			}
			draft.HotelID = &hotel.ID
			draft.CheckInDate = &checkIn
			draft.CheckOutDate = &checkOut
			draft.UnitPrice = hotel.PricePerNight
			draft.TotalAmount = hotel.PricePerNight * float64(nights) * float64(req.Rooms)
		}

		if err := db.Create(&draft).Error; err != nil {
			config.Logger.Error("failed to create checkout draft", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
			return
		}

		c.JSON(http.StatusCreated, draft)
	}
}

// GetCheckout handles GET /api/checkout/:id.
func GetCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		draft, found := loadDraft(db, c.Param("id"), userID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}

		c.JSON(http.StatusOK, draft)
	}
}

// SetCheckoutPassengers handles PUT /api/checkout/:id/passengers. Advances the
// draft to the details step and recomputes the total from the actual headcount.
func SetCheckoutPassengers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		draft, found := loadDraft(db, c.Param("id"), userID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}
		if draft.Step == models.DraftStepCompleted {
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already completed"})
			return
		}

		var details models.PassengerDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid passenger details", "errors": bindingErrors(err)})
			return
		}
		if err := details.ValidateFor(draft.TravelType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		detailsJSON, err := json.Marshal(&details)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save passenger details"})
			return
		}

		draft.PassengerDetails = detailsJSON
		draft.Step = models.DraftStepDetails
		if draft.TravelType != models.TravelTypeHotel {
			draft.Travelers = details.Count(draft.TravelType)
			draft.TotalAmount = draft.UnitPrice * float64(draft.Travelers)
		}

		if err := db.Save(draft).Error; err != nil {
			config.Logger.Error("failed to update checkout draft", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checkout"})
			return
		}

		c.JSON(http.StatusOK, draft)
	}
}

// PayCheckout handles POST /api/checkout/:id/pay. Only a draft at the details
// step can be paid; payment and booking creation run through the same single
// capability as POST /api/bookings.
func PayCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		draft, found := loadDraft(db, c.Param("id"), userID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}
		if draft.Step != models.DraftStepDetails {
			c.JSON(http.StatusConflict, gin.H{"error": "Passenger details must be submitted before payment"})
			return
		}

		var payment PaymentRequest
		if err := c.ShouldBindJSON(&payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data", "errors": bindingErrors(err)})
			return
		}

		var details models.PassengerDetails
		if err := json.Unmarshal(draft.PassengerDetails, &details); err != nil {
			config.Logger.Error("corrupt draft passenger details", zap.String("draft", draft.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete checkout"})
			return
		}

		req := BookingRequest{
			TravelType:       draft.TravelType,
			FlightID:         draft.FlightID,
			HotelID:          draft.HotelID,
			TrainID:          draft.TrainID,
			BusID:            draft.BusID,
			TravelDate:       draft.TravelDate.Format(time.RFC3339),
			Rooms:            draft.Rooms,
			PassengerDetails: details,
			Payment:          &payment,
		}
		if draft.CheckInDate != nil {
			req.CheckInDate = draft.CheckInDate.Format(time.RFC3339)
		}
		if draft.CheckOutDate != nil {
			req.CheckOutDate = draft.CheckOutDate.Format(time.RFC3339)
		}

		booking, status, err := createBooking(db, userID, &req)
		if err != nil {
			if status == http.StatusInternalServerError {
				config.Logger.Error("failed to complete checkout", zap.Error(err))
				c.JSON(status, gin.H{"error": "Failed to complete checkout"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		draft.Step = models.DraftStepCompleted
		draft.BookingID = &booking.ID
		if err := db.Save(draft).Error; err != nil {
			// The booking exists; losing the draft linkage is not fatal.
			config.Logger.Warn("failed to mark checkout completed", zap.String("draft", draft.ID), zap.Error(err))
		}

		c.JSON(http.StatusCreated, booking)
	}
}

func loadDraft(db *gorm.DB, id, userID string) (*models.BookingDraft, bool) {
	var draft models.BookingDraft
	if err := db.First(&draft, "id = ?", id).Error; err != nil {
		return nil, false
	}
	// Someone else's draft looks the same as a missing one.
	if draft.UserID != userID {
		return nil, false
	}
	return &draft, true
}
