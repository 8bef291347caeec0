package utils

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// SeedDemoData loads a small demo inventory so the API is usable right after
// a fresh migration. Rows that already exist are left alone.
func SeedDemoData() {
	db := config.DB

	destinations := []models.Destination{
		{Name: "New Delhi", City: "New Delhi", State: "Delhi", PopularityScore: 95,
			Description: "The capital, gateway to North India."},
		{Name: "Mumbai", City: "Mumbai", State: "Maharashtra", PopularityScore: 92,
			Description: "Financial capital by the Arabian Sea."},
		{Name: "Jaipur", City: "Jaipur", State: "Rajasthan", PopularityScore: 88,
			Description: "The Pink City of forts and palaces."},
		{Name: "Goa", City: "Panaji", State: "Goa", PopularityScore: 90,
			Description: "Beaches, churches and laid-back charm."},
		{Name: "Bengaluru", City: "Bengaluru", State: "Karnataka", PopularityScore: 80},
		{Name: "Kochi", City: "Kochi", State: "Kerala", PopularityScore: 78},
		{Name: "Indira Gandhi International Airport", City: "New Delhi", State: "Delhi", PopularityScore: 0},
		{Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", State: "Maharashtra", PopularityScore: 0},
	}
	for _, d := range destinations {
		var existing models.Destination
		if err := db.Where("name = ?", d.Name).First(&existing).Error; err != nil {
			db.Create(&d)
		}
	}

	airlines := []models.Airline{
		{Name: "IndiGo", Code: "6E"},
		{Name: "Air India", Code: "AI"},
		{Name: "Vistara", Code: "UK"},
	}
	for _, a := range airlines {
		var existing models.Airline
		if err := db.Where("code = ?", a.Code).First(&existing).Error; err != nil {
			db.Create(&a)
		}
	}

	var delhi, mumbai, jaipur, goa models.Destination
	if db.Where("name = ?", "New Delhi").First(&delhi).Error != nil ||
		db.Where("name = ?", "Mumbai").First(&mumbai).Error != nil ||
		db.Where("name = ?", "Jaipur").First(&jaipur).Error != nil ||
		db.Where("name = ?", "Goa").First(&goa).Error != nil {
		return
	}
	var indigo, airIndia models.Airline
	if db.Where("code = ?", "6E").First(&indigo).Error != nil ||
		db.Where("code = ?", "AI").First(&airIndia).Error != nil {
		return
	}

	nextWeek := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)

	flights := []models.Flight{
		{AirlineID: indigo.ID, FlightNumber: "6E2041", FromDestinationID: delhi.ID, ToDestinationID: mumbai.ID,
			DepartureTime: nextWeek.Add(6 * time.Hour), ArrivalTime: nextWeek.Add(8*time.Hour + 15*time.Minute),
			Price: 4899, AvailableSeats: 42, TotalSeats: 180, SeatClass: models.SeatClassEconomy, DurationMinutes: 135},
		{AirlineID: airIndia.ID, FlightNumber: "AI805", FromDestinationID: delhi.ID, ToDestinationID: mumbai.ID,
			DepartureTime: nextWeek.Add(9 * time.Hour), ArrivalTime: nextWeek.Add(11*time.Hour + 10*time.Minute),
			Price: 12500, AvailableSeats: 12, TotalSeats: 30, SeatClass: models.SeatClassBusiness, DurationMinutes: 130},
		{AirlineID: indigo.ID, FlightNumber: "6E533", FromDestinationID: mumbai.ID, ToDestinationID: goa.ID,
			DepartureTime: nextWeek.Add(14 * time.Hour), ArrivalTime: nextWeek.Add(15*time.Hour + 10*time.Minute),
			Price: 3299, AvailableSeats: 61, TotalSeats: 180, SeatClass: models.SeatClassEconomy, DurationMinutes: 70},
	}
	for _, f := range flights {
		var existing models.Flight
		if err := db.Where("flight_number = ? AND departure_time = ?", f.FlightNumber, f.DepartureTime).
			First(&existing).Error; err != nil {
			db.Create(&f)
		}
	}

	hotels := []models.Hotel{
		{Name: "The Palace Residency", DestinationID: jaipur.ID, Address: "12 Amer Road, Jaipur",
			Rating: 4.5, PricePerNight: 5200, AvailableRooms: 18, TotalRooms: 60,
			Amenities: datatypes.JSON([]byte(`["wifi","pool","spa","breakfast"]`))},
		{Name: "Seaside Stay Goa", DestinationID: goa.ID, Address: "Calangute Beach Road, Goa",
			Rating: 4.2, PricePerNight: 3800, AvailableRooms: 7, TotalRooms: 24,
			Amenities: datatypes.JSON([]byte(`["wifi","beach access","bar"]`))},
	}
	for _, h := range hotels {
		var existing models.Hotel
		if err := db.Where("name = ?", h.Name).First(&existing).Error; err != nil {
			db.Create(&h)
		}
	}

	trains := []models.Train{
		{TrainNumber: "12952", TrainName: "Mumbai Rajdhani", FromDestinationID: delhi.ID, ToDestinationID: mumbai.ID,
			DepartureTime: nextWeek.Add(16*time.Hour + 25*time.Minute), ArrivalTime: nextWeek.Add(32*time.Hour + 35*time.Minute),
			Price: 2310, AvailableSeats: 85, SeatClass: models.SeatClassAC3, DurationMinutes: 970},
		{TrainNumber: "12956", TrainName: "Jaipur Superfast", FromDestinationID: mumbai.ID, ToDestinationID: jaipur.ID,
			DepartureTime: nextWeek.Add(18 * time.Hour), ArrivalTime: nextWeek.Add(35 * time.Hour),
			Price: 740, AvailableSeats: 140, SeatClass: models.SeatClassSleeper, DurationMinutes: 1020},
	}
	for _, t := range trains {
		var existing models.Train
		if err := db.Where("train_number = ? AND departure_time = ?", t.TrainNumber, t.DepartureTime).
			First(&existing).Error; err != nil {
			db.Create(&t)
		}
	}

	buses := []models.Bus{
		{OperatorName: "RedLine Travels", FromDestinationID: delhi.ID, ToDestinationID: jaipur.ID,
			DepartureTime: nextWeek.Add(22 * time.Hour), ArrivalTime: nextWeek.Add(27*time.Hour + 30*time.Minute),
			Price: 650, AvailableSeats: 28, TotalSeats: 40, BusType: "AC Sleeper", DurationMinutes: 330},
	}
	for _, b := range buses {
		var existing models.Bus
		if err := db.Where("operator_name = ? AND departure_time = ?", b.OperatorName, b.DepartureTime).
			First(&existing).Error; err != nil {
			db.Create(&b)
		}
	}

	seedArticles(delhi.ID)
}

func seedArticles(destinationID string) {
	db := config.DB

	var author models.User
	if err := db.Where("email = ?", "editor@snaptravels.in").First(&author).Error; err != nil {
		hash, err := HashPassword("editor-seed-password")
		if err != nil {
			return
		}
		author = models.User{
			Email:     "editor@snaptravels.in",
			Password:  hash,
			FirstName: "Asha",
			LastName:  "Menon",
			Role:      "admin",
		}
		if err := db.Create(&author).Error; err != nil {
			return
		}
	}

	now := time.Now()
	articles := []models.TravelGuideArticle{
		{Title: "48 Hours in Old Delhi", Slug: "48-hours-in-old-delhi",
			Excerpt: "Street food, spice markets and the Red Fort.",
			Content: "Start at Chandni Chowk before the crowds arrive...",
			AuthorID: author.ID, DestinationID: &destinationID,
			Published: true, PublishedAt: &now},
	}
	for _, a := range articles {
		var existing models.TravelGuideArticle
		if err := db.Where("slug = ?", a.Slug).First(&existing).Error; err != nil {
			db.Create(&a)
		}
	}
}
