package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// ListDestinations handles GET /api/destinations. Airports are inventory
// endpoints, not places people browse, so they are filtered out here.
func ListDestinations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations := make([]models.Destination, 0)
		err := db.Where("name NOT LIKE ?", "%Airport%").
			Order("popularity_score desc").
			Find(&destinations).Error
		if err != nil {
			config.Logger.Error("failed to list destinations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch destinations"})
			return
		}

		c.JSON(http.StatusOK, destinations)
	}
}

// SearchDestinations handles GET /api/destinations/search?q=.
func SearchDestinations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
			return
		}

		pattern := like(q)
		destinations := make([]models.Destination, 0)
		err := db.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?",
			pattern, pattern, pattern).
			Order("popularity_score desc").
			Find(&destinations).Error
		if err != nil {
			config.Logger.Error("destination search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search destinations"})
			return
		}

		c.JSON(http.StatusOK, destinations)
	}
}
