package repository

import (
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking.
// Los listados devuelven las reservas ordenadas por created_at descendente,
// sin paginación (el volumen del estudio es pequeño).
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	ListByUser(userID string) ([]*entity.Booking, error)
	ListAll() ([]*entity.Booking, error)
	UpdateStatus(id string, status entity.BookingStatus) error
	Delete(id string) error
}
