package routes

import (
	"BloodBank-API/domain"
	"BloodBank-API/internal/api/handlers"
	"BloodBank-API/internal/middleware"
	"BloodBank-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ScreeningHandler handlers.ScreeningHandler
	DonationHandler  handlers.DonationHandler
	RequestHandler   handlers.RequestHandler
	InventoryHandler handlers.InventoryHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Screening()
	c.Donations()
	c.BloodRequests()
	c.Inventory()
	c.GuestRoute()
}

func (c *Config) Screening() {
	screening := c.App.Group("/api/v1/screening", c.Middleware.AuthMiddleware(c.JWTService))
	{
		screening.Post("/health-checks", c.ScreeningHandler.SubmitHealthCheck)
		screening.Get("/eligibility", c.ScreeningHandler.GetEligibility)
		screening.Get("/schedule", c.ScreeningHandler.GetDonationSchedule)
		screening.Get("/can-donate", c.ScreeningHandler.CanDonate)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Get("", c.DonationHandler.GetUserDonations)
		donations.Get("/statistics", c.Middleware.RequireRoles(domain.RoleStaff, domain.RoleAdmin), c.DonationHandler.GetDonationStatistics)
		donations.Get("/:id", c.DonationHandler.GetDonationByID)
		donations.Patch("/:id/status", c.DonationHandler.UpdateDonationStatus)
	}
}

func (c *Config) BloodRequests() {
	requests := c.App.Group("/api/v1/blood-requests", c.Middleware.AuthMiddleware(c.JWTService))
	{
		requests.Get("/matches", c.RequestHandler.GetMatchingRequests)

		staff := c.Middleware.RequireRoles(domain.RoleStaff, domain.RoleAdmin)
		requests.Post("", staff, c.RequestHandler.CreateRequest)
		requests.Get("", staff, c.RequestHandler.GetOpenRequests)
		requests.Patch("/:id/close", staff, c.RequestHandler.CloseRequest)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRoles(domain.RoleStaff, domain.RoleAdmin),
	)
	{
		inventory.Get("/units", c.InventoryHandler.GetInventory)
		inventory.Post("/donations/:id/split", c.InventoryHandler.SplitDonation)
		inventory.Patch("/units/:id/approve", c.InventoryHandler.ApproveUnit)
		inventory.Patch("/units/:id/reject", c.InventoryHandler.RejectUnit)
		inventory.Patch("/units/:id/reserve", c.InventoryHandler.ReserveUnit)
		inventory.Patch("/units/:id/release", c.InventoryHandler.ReleaseUnit)
		inventory.Patch("/units/:id/consume", c.InventoryHandler.ConsumeUnit)
		inventory.Post("/expire-sweep", c.InventoryHandler.ExpireSweep)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
