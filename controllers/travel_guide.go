package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
)

// ListArticles handles GET /api/travel-guide. Only published articles are
// visible, newest first.
func ListArticles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles := make([]models.TravelGuideArticle, 0)
		err := db.Where("published = ?", true).
			Order("published_at desc").
			Find(&articles).Error
		if err != nil {
			config.Logger.Error("failed to list articles", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
			return
		}

		c.JSON(http.StatusOK, articles)
	}
}

// GetArticle handles GET /api/travel-guide/:slug.
func GetArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var article models.TravelGuideArticle
		if err := db.Where("slug = ?", c.Param("slug")).First(&article).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}

		c.JSON(http.StatusOK, article)
	}
}
