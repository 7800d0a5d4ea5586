package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estudiolens/fotoestudio-api/internal/application/analytics"
	"github.com/estudiolens/fotoestudio-api/internal/application/auth"
	appbooking "github.com/estudiolens/fotoestudio-api/internal/application/booking"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BookingUC   *appbooking.BookingUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y portafolio (público)
	catalogHandler := NewCatalogHandler()
	api.Get("/packages", catalogHandler.ListPackages)
	api.Get("/packages/:id", catalogHandler.GetPackage)
	api.Get("/gallery", catalogHandler.ListGallery)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), Guard(RequirementAuthenticated), authHandler.Me)

	// Reservas del cliente (requiere sesión)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings := api.Group("/bookings", AuthMiddleware(deps.JWTSecret), Guard(RequirementAuthenticated))
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.ListMine)
	bookings.Get("/:id/receipt", bookingHandler.Receipt)

	// Back-office (solo admin)
	adminHandler := NewAdminHandler(deps.BookingUC, deps.AuthUC, deps.DashboardUC)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), Guard(RequirementAdminOnly))
	admin.Get("/bookings", adminHandler.ListBookings)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/bookings/:id/status", adminHandler.UpdateStatus)
	admin.Delete("/bookings/:id", adminHandler.DeleteBooking)
	admin.Get("/dashboard", adminHandler.Dashboard)
}
