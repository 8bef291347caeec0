package controllers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthibanSekar/snaptravels/models"
)

func TestSearchFlights(t *testing.T) {
	db, r := setupEnv(t)

	delhi := seedDestination(t, db, "New Delhi", "New Delhi", "Delhi", 95)
	mumbai := seedDestination(t, db, "Mumbai", "Mumbai", "Maharashtra", 92)
	indigo := seedAirline(t, db, "IndiGo", "6E")

	dep := time.Date(2026, 9, 15, 6, 0, 0, 0, time.UTC)
	early := seedFlight(t, db, indigo, delhi, mumbai, dep, 4899, 5, models.SeatClassEconomy)
	later := seedFlight(t, db, indigo, delhi, mumbai, dep.Add(4*time.Hour), 5299, 5, models.SeatClassEconomy)
	// Different day, should never match.
	seedFlight(t, db, indigo, delhi, mumbai, dep.Add(24*time.Hour), 4499, 5, models.SeatClassEconomy)

	t.Run("matches by city substring and date window", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
			"from": "delhi", "to": "mumbai", "departureDate": "2026-09-15", "passengers": 2,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		results := decodeJSON[[]models.FlightSearchResult](t, w)
		require.Len(t, results, 2)
		assert.Equal(t, early.ID, results[0].ID)
		assert.Equal(t, later.ID, results[1].ID)
		assert.Equal(t, "6E", results[0].Airline.Code)
		assert.Equal(t, "New Delhi", results[0].FromDestination.City)
		assert.Equal(t, "Mumbai", results[0].ToDestination.City)
		assert.Equal(t, 5, results[0].AvailableSeats)
		assert.True(t, results[0].DepartureTime.Equal(dep))
	})

	t.Run("excludes flights without enough seats", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
			"from": "delhi", "to": "mumbai", "departureDate": "2026-09-15", "passengers": 10,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("filters by seat class", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
			"from": "delhi", "to": "mumbai", "departureDate": "2026-09-15",
			"passengers": 1, "seatClass": models.SeatClassBusiness,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		results := decodeJSON[[]models.FlightSearchResult](t, w)
		assert.Empty(t, results)
	})

	t.Run("unknown route returns empty array", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
			"from": "chennai", "to": "mumbai", "departureDate": "2026-09-15", "passengers": 1,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}

func TestSearchFlightsValidation(t *testing.T) {
	_, r := setupEnv(t)

	w := doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
		"to": "mumbai", "departureDate": "2026-09-15",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "from")

	w = doRequest(t, r, http.MethodPost, "/api/flights/search", gin.H{
		"from": "delhi", "to": "mumbai", "departureDate": "15-09-2026",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFlight(t *testing.T) {
	db, r := setupEnv(t)

	delhi := seedDestination(t, db, "New Delhi", "New Delhi", "Delhi", 95)
	goa := seedDestination(t, db, "Goa", "Panaji", "Goa", 88)
	airline := seedAirline(t, db, "Air India", "AI")
	flight := seedFlight(t, db, airline, delhi, goa,
		time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC), 6200, 20, models.SeatClassEconomy)

	w := doRequest(t, r, http.MethodGet, "/api/flights/"+flight.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON[models.Flight](t, w)
	assert.Equal(t, flight.ID, got.ID)
	assert.Equal(t, "Air India", got.Airline.Name)
	assert.Equal(t, "Panaji", got.ToDestination.City)

	w = doRequest(t, r, http.MethodGet, "/api/flights/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
