package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthibanSekar/snaptravels/models"
)

func TestSearchHotels(t *testing.T) {
	db, r := setupEnv(t)

	jaipur := seedDestination(t, db, "Jaipur", "Jaipur", "Rajasthan", 85)
	goa := seedDestination(t, db, "Goa", "Panaji", "Goa", 88)

	budget := seedHotel(t, db, jaipur, "Pink City Inn", 3800, 12)
	premium := seedHotel(t, db, jaipur, "Rambagh Heritage", 5200, 6)
	seedHotel(t, db, jaipur, "Tiny Lodge", 2100, 1) // below rooms threshold
	seedHotel(t, db, goa, "Beachside Resort", 6400, 8)

	t.Run("matches city substring, orders by price", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/hotels/search", gin.H{
			"destination": "jaip", "checkInDate": "2026-11-10", "checkOutDate": "2026-11-12",
			"guests": 4, "rooms": 2,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		results := decodeJSON[[]models.HotelSearchResult](t, w)
		require.Len(t, results, 2)
		assert.Equal(t, budget.ID, results[0].ID)
		assert.Equal(t, premium.ID, results[1].ID)
		assert.Equal(t, "Jaipur", results[0].Destination.City)
		assert.NotNil(t, results[0].Amenities)
	})

	t.Run("matches destination name too", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/hotels/search", gin.H{
			"destination": "GOA", "checkInDate": "2026-11-10", "checkOutDate": "2026-11-11",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		results := decodeJSON[[]models.HotelSearchResult](t, w)
		require.Len(t, results, 1)
		assert.Equal(t, "Beachside Resort", results[0].Name)
	})

	t.Run("no match returns empty array", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/hotels/search", gin.H{
			"destination": "shimla", "checkInDate": "2026-11-10", "checkOutDate": "2026-11-11",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/hotels/search", gin.H{
			"destination": "jaipur", "checkInDate": "10/11/2026", "checkOutDate": "2026-11-12",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetHotel(t *testing.T) {
	db, r := setupEnv(t)

	jaipur := seedDestination(t, db, "Jaipur", "Jaipur", "Rajasthan", 85)
	hotel := seedHotel(t, db, jaipur, "Pink City Inn", 3800, 12)

	w := doRequest(t, r, http.MethodGet, "/api/hotels/"+hotel.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON[models.Hotel](t, w)
	assert.Equal(t, hotel.ID, got.ID)
	assert.Equal(t, "Jaipur", got.Destination.City)

	w = doRequest(t, r, http.MethodGet, "/api/hotels/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
