package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

type hotelRow struct {
	ID              string         `gorm:"column:id"`
	Name            string         `gorm:"column:name"`
	Address         string         `gorm:"column:address"`
	Rating          float64        `gorm:"column:rating"`
	PricePerNight   float64        `gorm:"column:price_per_night"`
	Amenities       datatypes.JSON `gorm:"column:amenities"`
	ImageURL        string         `gorm:"column:image_url"`
	Description     string         `gorm:"column:description"`
	AvailableRooms  int            `gorm:"column:available_rooms"`
	TotalRooms      int            `gorm:"column:total_rooms"`
	DestinationName string         `gorm:"column:destination_name"`
	DestinationCity string         `gorm:"column:destination_city"`
}

func (r hotelRow) toResult() models.HotelSearchResult {
	amenities := []string{}
	if len(r.Amenities) > 0 {
		// Malformed amenity JSON just renders as an empty list.
		_ = json.Unmarshal(r.Amenities, &amenities)
	}
	return models.HotelSearchResult{
		ID:             r.ID,
		Name:           r.Name,
		Address:        r.Address,
		Rating:         r.Rating,
		PricePerNight:  r.PricePerNight,
		Amenities:      amenities,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		AvailableRooms: r.AvailableRooms,
		TotalRooms:     r.TotalRooms,
		Destination:    models.PlaceSummary{Name: r.DestinationName, City: r.DestinationCity},
	}
}

// SearchHotels handles POST /api/hotels/search. The destination matches the
// city or hotel-location name by case-insensitive substring; check-in/out
// dates are validated and carried for price computation but do not filter
// inventory, since rooms are tracked as a single availability counter rather
// than per-date.
func SearchHotels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.HotelSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters", "errors": bindingErrors(err)})
			return
		}
		if req.Guests == 0 {
			req.Guests = 1
		}
		if req.Rooms == 0 {
			req.Rooms = 1
		}

		var rows []hotelRow
		err := db.Table("hotels").
			Select(`hotels.id, hotels.name, hotels.address, hotels.rating, hotels.price_per_night,
				hotels.amenities, hotels.image_url, hotels.description, hotels.available_rooms,
				hotels.total_rooms,
				destinations.name AS destination_name, destinations.city AS destination_city`).
			Joins("JOIN destinations ON destinations.id = hotels.destination_id").
			Where("LOWER(destinations.city) LIKE ? OR LOWER(destinations.name) LIKE ?",
				like(req.Destination), like(req.Destination)).
			Where("hotels.available_rooms >= ?", req.Rooms).
			Order("hotels.price_per_night asc").
			Scan(&rows).Error
		if err != nil {
			config.Logger.Error("hotel search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search hotels"})
			return
		}

		results := make([]models.HotelSearchResult, 0, len(rows))
		for _, r := range rows {
			results = append(results, r.toResult())
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetHotel handles GET /api/hotels/:id.
func GetHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.Preload("Destination").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}
