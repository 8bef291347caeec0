package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
	"github.com/ParthibanSekar/snaptravels/utils"
)

type PaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=card upi wallet netbanking"`
	Detail string `json:"detail"` // last card digits, UPI id, wallet name
}

type BookingRequest struct {
	TravelType string  `json:"travelType" binding:"required,oneof=flight hotel train bus"`
	FlightID   *string `json:"flightId" binding:"omitempty,uuid"`
	HotelID    *string `json:"hotelId" binding:"omitempty,uuid"`
	TrainID    *string `json:"trainId" binding:"omitempty,uuid"`
	BusID      *string `json:"busId" binding:"omitempty,uuid"`

	TravelDate   string `json:"travelDate" binding:"required"`
	CheckInDate  string `json:"checkInDate"`             // hotels only
	CheckOutDate string `json:"checkOutDate"`            // hotels only
	Rooms        int    `json:"rooms" binding:"omitempty,min=1"` // hotels only

	PassengerDetails models.PassengerDetails `json:"passengerDetails" binding:"required"`
	Payment          *PaymentRequest         `json:"payment"`
}

// createBooking is the single booking-creation capability. It validates the
// typed passenger details against the travel type, prices the booking from
// the referenced inventory row, decrements availability with a conditional
// update in the same transaction as the insert, and charges through the
// payment provider when payment info is present. Returns the persisted
// booking or an HTTP status plus error describing the failure.
func createBooking(db *gorm.DB, userID string, req *BookingRequest) (*models.Booking, int, error) {
	pd := &req.PassengerDetails
	if err := pd.ValidateFor(req.TravelType); err != nil {
		return nil, http.StatusBadRequest, err
	}

	travelDate, err := parseDate(req.TravelDate)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid travelDate")
	}

	detailsJSON, err := json.Marshal(pd)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	booking := models.Booking{
		UserID:           userID,
		TravelType:       req.TravelType,
		TravelDate:       travelDate,
		PassengerDetails: detailsJSON,
		Status:           models.BookingStatusPending,
	}
	qty := pd.Count(req.TravelType)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, http.StatusInternalServerError, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	switch req.TravelType {
	case models.TravelTypeFlight:
		if req.FlightID == nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("flightId is required for flight bookings")
		}
		var flight models.Flight
		if err := tx.First(&flight, "id = ?", *req.FlightID).Error; err != nil {
			tx.Rollback()
			return nil, http.StatusNotFound, errors.New("flight not found")
		}
		if status, err := reserveSeats(tx, "flights", flight.ID, qty); err != nil {
			tx.Rollback()
			return nil, status, err
		}
		booking.FlightID = &flight.ID
		booking.TotalAmount = flight.Price * float64(qty)

	case models.TravelTypeTrain:
		if req.TrainID == nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("trainId is required for train bookings")
		}
		var train models.Train
		if err := tx.First(&train, "id = ?", *req.TrainID).Error; err != nil {
			tx.Rollback()
			return nil, http.StatusNotFound, errors.New("train not found")
		}
		if status, err := reserveSeats(tx, "trains", train.ID, qty); err != nil {
			tx.Rollback()
			return nil, status, err
		}
		booking.TrainID = &train.ID
		booking.TotalAmount = train.Price * float64(qty)

	case models.TravelTypeBus:
		if req.BusID == nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("busId is required for bus bookings")
		}
		var bus models.Bus
		if err := tx.First(&bus, "id = ?", *req.BusID).Error; err != nil {
			tx.Rollback()
			return nil, http.StatusNotFound, errors.New("bus not found")
		}
		if status, err := reserveSeats(tx, "buses", bus.ID, qty); err != nil {
			tx.Rollback()
			return nil, status, err
		}
		booking.BusID = &bus.ID
		booking.TotalAmount = bus.Price * float64(qty)

	case models.TravelTypeHotel:
		if req.HotelID == nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("hotelId is required for hotel bookings")
		}
		checkIn, err := parseDate(req.CheckInDate)
		if err != nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("invalid checkInDate")
		}
		checkOut, err := parseDate(req.CheckOutDate)
		if err != nil {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("invalid checkOutDate")
		}
		if !checkOut.After(checkIn) {
			tx.Rollback()
			return nil, http.StatusBadRequest, errors.New("checkOutDate must be after checkInDate")
		}

		var hotel models.Hotel
		if err := tx.First(&hotel, "id = ?", *req.HotelID).Error; err != nil {
			tx.Rollback()
			return nil, http.StatusNotFound, errors.New("hotel not found")
		}

		rooms := req.Rooms
		if rooms == 0 {
			rooms = 1
		}
		qty = rooms

		res := tx.Model(&models.Hotel{}).
			Where("id = ? AND available_rooms >= ?", hotel.ID, rooms).
			UpdateColumn("available_rooms", gorm.Expr("available_rooms - ?", rooms))
		if res.Error != nil {
			tx.Rollback()
			return nil, http.StatusInternalServerError, res.Error
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			return nil, http.StatusConflict, errors.New("not enough rooms available")
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		if nights < 1 {
			nights = 1
		}
		booking.HotelID = &hotel.ID
		booking.CheckInDate = &checkIn
		booking.CheckOutDate = &checkOut
		booking.TotalAmount = hotel.PricePerNight * float64(nights) * float64(rooms)
	}

	booking.Quantity = qty

	if req.Payment != nil {
		ref, err := utils.Payments.Charge(booking.TotalAmount, req.Payment.Method)
		if err != nil {
			tx.Rollback()
			return nil, http.StatusBadGateway, errors.New("payment failed")
		}
		booking.PaymentID = ref
		booking.Status = models.BookingStatusConfirmed
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, http.StatusInternalServerError, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &booking, 0, nil
}

// reserveSeats conditionally decrements available_seats, refusing to go below
// zero. Concurrent bookings race on this single update, so capacity can never
// be oversold.
func reserveSeats(tx *gorm.DB, table, id string, qty int) (int, error) {
	res := tx.Table(table).
		Where("id = ? AND available_seats >= ?", id, qty).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", qty))
	if res.Error != nil {
		return http.StatusInternalServerError, res.Error
	}
	if res.RowsAffected == 0 {
		return http.StatusConflict, errors.New("not enough seats available")
	}
	return 0, nil
}

// restoreAvailability reverses the decrement taken at creation time. Called
// when a booking is cancelled.
func restoreAvailability(tx *gorm.DB, b *models.Booking) error {
	switch {
	case b.FlightID != nil:
		return tx.Table("flights").Where("id = ?", *b.FlightID).
			UpdateColumn("available_seats", gorm.Expr("available_seats + ?", b.Quantity)).Error
	case b.TrainID != nil:
		return tx.Table("trains").Where("id = ?", *b.TrainID).
			UpdateColumn("available_seats", gorm.Expr("available_seats + ?", b.Quantity)).Error
	case b.BusID != nil:
		return tx.Table("buses").Where("id = ?", *b.BusID).
			UpdateColumn("available_seats", gorm.Expr("available_seats + ?", b.Quantity)).Error
	case b.HotelID != nil:
		return tx.Table("hotels").Where("id = ?", *b.HotelID).
			UpdateColumn("available_rooms", gorm.Expr("available_rooms + ?", b.Quantity)).Error
	}
	return nil
}

// CreateBooking handles POST /api/bookings.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data", "errors": bindingErrors(err)})
			return
		}

		booking, status, err := createBooking(db, userID, &req)
		if err != nil {
			if status == http.StatusInternalServerError {
				config.Logger.Error("failed to create booking", zap.Error(err))
				c.JSON(status, gin.H{"error": "Failed to create booking"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, booking)
	}
}

// GetBooking handles GET /api/bookings/:id. Only the owner may read it.
func GetBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

// GetUserBookings handles GET /api/bookings, newest first.
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bookings := make([]models.Booking, 0)
		err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error
		if err != nil {
			config.Logger.Error("failed to fetch user bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status. Owners may walk a
// booking through pending -> confirmed -> cancelled/completed; cancelling puts
// the reserved seats or rooms back.
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

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
		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		if !models.CanTransition(booking.Status, input.Status) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot change status from " + booking.Status + " to " + input.Status,
			})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.Status == models.BookingStatusCancelled {
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
