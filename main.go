package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/auth"
	"github.com/larissavarjao/lvstore-api/config"
	"github.com/larissavarjao/lvstore-api/models"
	"github.com/larissavarjao/lvstore-api/notify"
	"github.com/larissavarjao/lvstore-api/payment"
	"github.com/larissavarjao/lvstore-api/routes"
)

func main() {
	log.Println("Starting lvstore-api...")

	cfg := config.Load()
	if cfg.AppSecret == "" {
		log.Fatal("APP_SECRET is required")
	}

	db := initDatabase(cfg.DatabaseURL)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	producer := notify.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	defer producer.Close()

	routes.SetupRoutes(r, db, routes.Deps{
		Auth:        auth.New(cfg.AppSecret),
		Charger:     payment.NewStripeClient(cfg.StripeSecret),
		Notifier:    producer,
		FrontendURL: cfg.FrontendURL,
	})

	log.Printf("Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}
