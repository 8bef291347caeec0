package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
	"github.com/ParthibanSekar/snaptravels/routes"
	"github.com/ParthibanSekar/snaptravels/utils"
)

// setupEnv wires an isolated in-memory database behind the real router.
func setupEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Destination{}, &models.Airline{},
		&models.Flight{}, &models.Hotel{}, &models.Train{}, &models.Bus{},
		&models.Booking{}, &models.BookingDraft{},
		&models.TravelGuideArticle{},
	))

	config.DB = db
	config.Logger = zap.NewNop()
	utils.Payments = utils.SimulatedProvider{}

	return db, routes.SetupRouter()
}

func registerUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := models.User{Email: email, Password: hash, FirstName: "Test", LastName: "User", Role: role}
	require.NoError(t, db.Create(&user).Error)
	token, err := utils.CreateToken(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func seedDestination(t *testing.T, db *gorm.DB, name, city, state string, popularity int) models.Destination {
	t.Helper()
	d := models.Destination{Name: name, City: city, State: state, PopularityScore: popularity}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func seedAirline(t *testing.T, db *gorm.DB, name, code string) models.Airline {
	t.Helper()
	a := models.Airline{Name: name, Code: code}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedFlight(t *testing.T, db *gorm.DB, airline models.Airline, from, to models.Destination,
	departure time.Time, price float64, seats int, class string) models.Flight {
	t.Helper()
	f := models.Flight{
		AirlineID:         airline.ID,
		FlightNumber:      "TT100",
		FromDestinationID: from.ID,
		ToDestinationID:   to.ID,
		DepartureTime:     departure,
		ArrivalTime:       departure.Add(2 * time.Hour),
		Price:             price,
		AvailableSeats:    seats,
		TotalSeats:        180,
		SeatClass:         class,
		DurationMinutes:   120,
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func seedHotel(t *testing.T, db *gorm.DB, dest models.Destination, name string,
	pricePerNight float64, rooms int) models.Hotel {
	t.Helper()
	h := models.Hotel{
		Name:           name,
		DestinationID:  dest.ID,
		Address:        "1 Test Road",
		Rating:         4.0,
		PricePerNight:  pricePerNight,
		AvailableRooms: rooms,
		TotalRooms:     rooms + 10,
	}
	require.NoError(t, db.Create(&h).Error)
	return h
}

func seedTrain(t *testing.T, db *gorm.DB, from, to models.Destination,
	departure time.Time, price float64, seats int, class string) models.Train {
	t.Helper()
	tr := models.Train{
		TrainNumber:       "12001",
		TrainName:         "Test Express",
		FromDestinationID: from.ID,
		ToDestinationID:   to.ID,
		DepartureTime:     departure,
		ArrivalTime:       departure.Add(8 * time.Hour),
		Price:             price,
		AvailableSeats:    seats,
		SeatClass:         class,
		DurationMinutes:   480,
	}
	require.NoError(t, db.Create(&tr).Error)
	return tr
}

func seedBus(t *testing.T, db *gorm.DB, from, to models.Destination,
	departure time.Time, price float64, seats int) models.Bus {
	t.Helper()
	b := models.Bus{
		OperatorName:      "Test Travels",
		FromDestinationID: from.ID,
		ToDestinationID:   to.ID,
		DepartureTime:     departure,
		ArrivalTime:       departure.Add(5 * time.Hour),
		Price:             price,
		AvailableSeats:    seats,
		TotalSeats:        40,
		BusType:           "AC Sleeper",
		DurationMinutes:   300,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

// validDetails builds passenger details matching the travel type.
func validDetails(travelType string, count int) map[string]any {
	contact := map[string]any{"email": "traveler@example.com", "phone": "+91-9876543210"}
	people := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		people = append(people, map[string]any{
			"firstName": fmt.Sprintf("Person%d", i+1),
			"lastName":  "Kumar",
			"age":       30 + i,
		})
	}
	details := map[string]any{"contact": contact}
	if travelType == models.TravelTypeHotel {
		details["guests"] = people
	} else {
		details["travelers"] = people
	}
	return details
}
