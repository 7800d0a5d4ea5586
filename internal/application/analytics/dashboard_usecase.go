package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
	"github.com/estudiolens/fotoestudio-api/internal/domain/repository"
)

// DashboardUseCase resumen del back-office. Las estadísticas se recalculan
// releyendo y re-agregando la lista completa de reservas en cada consulta;
// nunca se mantienen de forma incremental, así no hace falta consistencia
// multi-documento entre reservas y agregados.
type DashboardUseCase struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{bookingRepo: bookingRepo, userRepo: userRepo}
}

// Summary agrega las reservas y usuarios actuales. El ingreso total suma el
// TotalAmount de las reservas completadas.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	bookings, err := uc.bookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		TotalBookings: len(bookings),
		TotalUsers:    len(users),
		TotalRevenue:  decimal.Zero,
	}
	for _, b := range bookings {
		switch b.Status {
		case entity.BookingPending:
			out.PendingBookings++
		case entity.BookingApproved:
			out.ApprovedBookings++
		case entity.BookingCompleted:
			out.CompletedBookings++
			out.TotalRevenue = out.TotalRevenue.Add(b.TotalAmount)
		}
	}
	return out, nil
}
