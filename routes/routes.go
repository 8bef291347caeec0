package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/controllers"
	"github.com/ParthibanSekar/snaptravels/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	db := config.DB

	// Static assets (destination photos, airline logos).
	assetsDir := os.Getenv("ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = "./public"
	}
	r.Static("/public-objects", assetsDir)

	// Public API Routes

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/signup", controllers.Signup(db))
		api.POST("/login", controllers.Login(db))
		api.POST("/refresh", controllers.Refresh(db))
		api.POST("/logout", controllers.Logout(db))

		// Reference data
		api.GET("/destinations", controllers.ListDestinations(db))
		api.GET("/destinations/search", controllers.SearchDestinations(db))

		// Availability search + single lookups
		api.POST("/flights/search", controllers.SearchFlights(db))
		api.GET("/flights/:id", controllers.GetFlight(db))
		api.POST("/hotels/search", controllers.SearchHotels(db))
		api.GET("/hotels/:id", controllers.GetHotel(db))
		api.POST("/trains/search", controllers.SearchTrains(db))
		api.GET("/trains/:id", controllers.GetTrain(db))
		api.POST("/buses/search", controllers.SearchBuses(db))
		api.GET("/buses/:id", controllers.GetBus(db))

		// Travel guide
		api.GET("/travel-guide", controllers.ListArticles(db))
		api.GET("/travel-guide/:slug", controllers.GetArticle(db))
	}

	// Protected User Routes (Require Login)

	user := r.Group("/api").Use(middlewares.AuthMiddleware())
	{
		user.GET("/auth/user", controllers.CurrentUser(db))

		user.POST("/bookings", controllers.CreateBooking(db))
		user.GET("/bookings", controllers.GetUserBookings(db))
		user.GET("/bookings/:id", controllers.GetBooking(db))
		user.PUT("/bookings/:id/status", controllers.UpdateBookingStatus(db))

		user.POST("/checkout", controllers.StartCheckout(db))
		user.GET("/checkout/:id", controllers.GetCheckout(db))
		user.PUT("/checkout/:id/passengers", controllers.SetCheckoutPassengers(db))
		user.POST("/checkout/:id/pay", controllers.PayCheckout(db))
	}

	// Admin Routes (Require Admin Access)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminMiddleware())
	{
		admin.POST("/destinations", controllers.AdminAddDestination(db))
		admin.POST("/airlines", controllers.AdminAddAirline(db))
		admin.POST("/flights", controllers.AdminAddFlight(db))
		admin.POST("/hotels", controllers.AdminAddHotel(db))
		admin.POST("/trains", controllers.AdminAddTrain(db))
		admin.POST("/buses", controllers.AdminAddBus(db))
		admin.POST("/travel-guide", controllers.AdminAddArticle(db))
		admin.PUT("/bookings/:id/status", controllers.AdminUpdateBookingStatus(db))
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
