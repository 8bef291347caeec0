package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/config"
	"github.com/ParthibanSekar/snaptravels/models"
	"github.com/ParthibanSekar/snaptravels/routes"
	"github.com/ParthibanSekar/snaptravels/utils"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync()

	config.ConnectDatabase()
	db := config.DB

	// migrate
	if err := migrate(db); err != nil {
		config.Logger.Fatal("migration failed", zap.Error(err))
	}

	utils.SeedDemoData()

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	config.Logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		config.Logger.Fatal("server exited", zap.Error(err))
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Destination{}, &models.Airline{},
		&models.Flight{}, &models.Hotel{}, &models.Train{}, &models.Bus{},
		&models.Booking{}, &models.BookingDraft{},
		&models.TravelGuideArticle{},
	)
}
