package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus estado del ciclo de vida de una reserva.
type BookingStatus string

// Estados válidos para Booking.
const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCompleted:
		return true
	}
	return false
}

// Booking solicitud de sesión fotográfica de un cliente, ligada a un paquete del catálogo.
// TotalAmount se copia del precio del paquete al momento del envío y no se recalcula.
type Booking struct {
	ID              string
	UserID          string
	PackageID       string
	EventDate       string // YYYY-MM-DD
	EventTime       string // HH:MM
	Location        string
	Status          BookingStatus
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTransition valida las aristas de la máquina de estados:
//
//	pending  --(approve)--> approved --(complete)--> completed
//	pending  --(reject)---> rejected
//
// rejected y completed son terminales; nada vuelve a pending.
func (b *Booking) CanTransition(to BookingStatus) bool {
	switch b.Status {
	case BookingPending:
		return to == BookingApproved || to == BookingRejected
	case BookingApproved:
		return to == BookingCompleted
	default:
		return false
	}
}
