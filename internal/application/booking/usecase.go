package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain"
	"github.com/estudiolens/fotoestudio-api/internal/domain/catalog"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
	"github.com/estudiolens/fotoestudio-api/internal/domain/repository"
)

// ReceiptGenerator puerto para la generación del comprobante PDF de una reserva.
type ReceiptGenerator interface {
	GenerateReceiptPDF(booking *entity.Booking, pkg *entity.Package, customer *entity.User) ([]byte, error)
}

// BookingUseCase ciclo de vida de las reservas: envío del cliente, listados,
// transición de estado y borrado por el administrador.
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	receipts    ReceiptGenerator
}

// NewBookingUseCase construye el caso de uso. receipts puede ser nil si no se
// expone la descarga de comprobantes.
func NewBookingUseCase(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, receipts ReceiptGenerator) *BookingUseCase {
	return &BookingUseCase{bookingRepo: bookingRepo, userRepo: userRepo, receipts: receipts}
}

// Create registra una reserva para el usuario autenticado. El estado siempre
// nace en pending y TotalAmount copia el precio del paquete al momento del
// envío; nunca se recalcula después aunque el catálogo cambie.
func (uc *BookingUseCase) Create(userID string, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" ||
		in.EventDate == "" || in.EventTime == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	pkg := catalog.FindPackage(in.PackageID)
	if pkg == nil {
		return nil, domain.ErrUnknownPackage
	}
	now := time.Now()
	b := &entity.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		PackageID:       pkg.ID,
		EventDate:       in.EventDate,
		EventTime:       in.EventTime,
		Location:        in.Location,
		Status:          entity.BookingPending,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		SpecialRequests: in.SpecialRequests,
		TotalAmount:     pkg.Price,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.bookingRepo.Create(b); err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

// ListByUser reservas propias del cliente, ordenadas por fecha de creación
// descendente, sin paginación.
func (uc *BookingUseCase) ListByUser(userID string) ([]*dto.BookingResponse, error) {
	list, err := uc.bookingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(list), nil
}

// ListAll todas las reservas (vista admin), ordenadas por fecha de creación
// descendente.
func (uc *BookingUseCase) ListAll() ([]*dto.BookingResponse, error) {
	list, err := uc.bookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toBookingResponses(list), nil
}

// UpdateStatus transición de estado (solo admin). Valida la máquina de
// estados y devuelve la reserva completa ya actualizada para que el cliente
// pueda reflejarla sin re-consultar.
func (uc *BookingUseCase) UpdateStatus(bookingID string, status entity.BookingStatus) (*dto.BookingResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}
	if !b.CanTransition(status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.bookingRepo.UpdateStatus(bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return toBookingResponse(b), nil
}

// Delete borra una reserva de forma irreversible (solo admin).
func (uc *BookingUseCase) Delete(bookingID string) error {
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBookingNotFound
	}
	return uc.bookingRepo.Delete(bookingID)
}

// Receipt genera el comprobante PDF de una reserva. Solo el dueño de la
// reserva o un admin pueden descargarlo.
func (uc *BookingUseCase) Receipt(bookingID, requesterID, requesterRole string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}
	if b.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	pkg := catalog.FindPackage(b.PackageID)
	if pkg == nil {
		return nil, domain.ErrUnknownPackage
	}
	customer, err := uc.userRepo.GetByID(b.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.receipts.GenerateReceiptPDF(b, pkg, customer)
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		PackageID:       b.PackageID,
		EventDate:       b.EventDate,
		EventTime:       b.EventTime,
		Location:        b.Location,
		Status:          string(b.Status),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		CreatedAt:       b.CreatedAt,
	}
}

func toBookingResponses(list []*entity.Booking) []*dto.BookingResponse {
	out := make([]*dto.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	return out
}
