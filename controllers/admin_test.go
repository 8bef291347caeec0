package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthibanSekar/snaptravels/models"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	db, r := setupEnv(t)
	_, userToken := registerUser(t, db, "user@example.com", "user")

	payload := gin.H{"name": "Goa", "city": "Panaji", "state": "Goa"}

	w := doRequest(t, r, http.MethodPost, "/api/admin/destinations", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/admin/destinations", payload, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAddDestination(t *testing.T) {
	db, r := setupEnv(t)
	_, adminToken := registerUser(t, db, "admin@example.com", "admin")

	w := doRequest(t, r, http.MethodPost, "/api/admin/destinations", gin.H{
		"name": "Goa", "city": "Panaji", "state": "Goa", "popularityScore": 88,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	dest := decodeJSON[models.Destination](t, w)
	assert.NotEmpty(t, dest.ID)
	assert.Equal(t, "Goa", dest.Name)
	assert.Equal(t, 88, dest.PopularityScore)

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/admin/destinations", gin.H{"name": "X"}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminAddFlight(t *testing.T) {
	db, r := setupEnv(t)
	_, adminToken := registerUser(t, db, "admin@example.com", "admin")

	delhi := seedDestination(t, db, "New Delhi", "New Delhi", "Delhi", 95)
	mumbai := seedDestination(t, db, "Mumbai", "Mumbai", "Maharashtra", 92)
	airline := seedAirline(t, db, "IndiGo", "6E")

	dep := time.Date(2026, 12, 1, 7, 0, 0, 0, time.UTC)
	w := doRequest(t, r, http.MethodPost, "/api/admin/flights", gin.H{
		"airlineId": airline.ID, "flightNumber": "6E-204",
		"fromDestinationId": delhi.ID, "toDestinationId": mumbai.ID,
		"departureTime": dep.Format(time.RFC3339), "arrivalTime": dep.Add(2 * time.Hour).Format(time.RFC3339),
		"price": 4599, "availableSeats": 180, "totalSeats": 180,
		"seatClass": "economy", "durationMinutes": 120,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	flight := decodeJSON[models.Flight](t, w)
	assert.NotEmpty(t, flight.ID)
	assert.Equal(t, "6E-204", flight.FlightNumber)

	t.Run("same origin and destination", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/admin/flights", gin.H{
			"airlineId": airline.ID, "flightNumber": "6E-999",
			"fromDestinationId": delhi.ID, "toDestinationId": delhi.ID,
			"departureTime": dep.Format(time.RFC3339), "arrivalTime": dep.Format(time.RFC3339),
			"price": 1000, "availableSeats": 10, "totalSeats": 10,
			"seatClass": "economy", "durationMinutes": 60,
		}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminUpdateBookingStatus(t *testing.T) {
	db, r := setupEnv(t)
	user, _ := registerUser(t, db, "user@example.com", "user")
	_, adminToken := registerUser(t, db, "admin@example.com", "admin")

	booking := seedBooking(t, db, user.ID, time.Now())

	// Admins can force a status the owner's transition rules would refuse.
	w := doRequest(t, r, http.MethodPut, "/api/admin/bookings/"+booking.ID+"/status",
		gin.H{"status": "completed"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.BookingStatusCompleted, decodeJSON[models.Booking](t, w).Status)

	w = doRequest(t, r, http.MethodPut, "/api/admin/bookings/"+booking.ID+"/status",
		gin.H{"status": "pending"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
