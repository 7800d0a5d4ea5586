package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest entrada para crear una reserva. El estado y el monto
// total no son parte de la entrada: siempre se fuerzan en el use case.
type CreateBookingRequest struct {
	PackageID       string `json:"package_id" validate:"required"`
	EventDate       string `json:"event_date" validate:"required"`
	EventTime       string `json:"event_time" validate:"required"`
	Location        string `json:"location" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,max=50"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

// UpdateBookingStatusRequest entrada para la transición de estado (solo admin).
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected completed"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	PackageID       string          `json:"package_id"`
	EventDate       string          `json:"event_date"`
	EventTime       string          `json:"event_time"`
	Location        string          `json:"location"`
	Status          string          `json:"status"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PackageResponse salida de un paquete del catálogo.
type PackageResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Features    []string        `json:"features"`
	Image       string          `json:"image"`
}

// GalleryImageResponse salida de una imagen del portafolio.
type GalleryImageResponse struct {
	ID       int    `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}
