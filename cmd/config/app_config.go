package config

import (
	"BloodBank-API/internal/api/handlers"
	"BloodBank-API/internal/api/routes"
	"BloodBank-API/internal/middleware"
	"BloodBank-API/internal/utils"
	"BloodBank-API/internal/utils/storage"
	"BloodBank-API/pkg/donation"
	"BloodBank-API/pkg/inventory"
	"BloodBank-API/pkg/jwt"
	"BloodBank-API/pkg/request"
	"BloodBank-API/pkg/screening"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	screeningRepository := screening.NewScreeningRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	requestRepository := request.NewRequestRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	screeningService := screening.NewScreeningService(screeningRepository, s3)
	donationService := donation.NewDonationService(donationRepository, screeningService)
	requestService := request.NewRequestService(requestRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository)

	// Handler
	screeningHandler := handlers.NewScreeningHandler(screeningService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ScreeningHandler: screeningHandler,
		DonationHandler:  donationHandler,
		RequestHandler:   requestHandler,
		InventoryHandler: inventoryHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
