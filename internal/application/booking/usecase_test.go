package booking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudiolens/fotoestudio-api/internal/application/booking"
	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memBookingRepo struct {
	items map[string]*entity.Booking
	order []string
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{items: map[string]*entity.Booking{}}
}

func (r *memBookingRepo) Create(b *entity.Booking) error {
	cp := *b
	r.items[b.ID] = &cp
	r.order = append(r.order, b.ID)
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*entity.Booking, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) ListByUser(userID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	// Recorrido inverso: created_at descendente
	for i := len(r.order) - 1; i >= 0; i-- {
		if b, ok := r.items[r.order[i]]; ok && b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListAll() ([]*entity.Booking, error) {
	var out []*entity.Booking
	for i := len(r.order) - 1; i >= 0; i-- {
		if b, ok := r.items[r.order[i]]; ok {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(id string, status entity.BookingStatus) error {
	b, ok := r.items[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *memBookingRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memUserRepo struct {
	byID map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

type stubReceipts struct {
	lastBooking *entity.Booking
}

func (s *stubReceipts) GenerateReceiptPDF(b *entity.Booking, pkg *entity.Package, customer *entity.User) ([]byte, error) {
	s.lastBooking = b
	return []byte("%PDF-fake"), nil
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PackageID:     "2",
		EventDate:     "2026-10-15",
		EventTime:     "16:00",
		Location:      "Parque Central",
		CustomerName:  "Alice Pérez",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "+34 600 000 000",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NaceEnPendingConPrecioDelPaquete(t *testing.T) {
	repo := newMemBookingRepo()
	uc := booking.NewBookingUseCase(repo, &memUserRepo{byID: map[string]*entity.User{}}, nil)

	out, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingPending), out.Status, "toda reserva nueva nace pending")
	assert.Equal(t, "2", out.PackageID)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(300)),
		"el total copia el precio del paquete al momento del envío")
	assert.Equal(t, "user-1", out.UserID)
	assert.NotEmpty(t, out.ID)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingPending, stored.Status)
}

func TestCreate_PaqueteInexistenteRetornaError(t *testing.T) {
	uc := booking.NewBookingUseCase(newMemBookingRepo(), &memUserRepo{byID: map[string]*entity.User{}}, nil)

	req := validRequest()
	req.PackageID = "99"
	_, err := uc.Create("user-1", req)
	assert.ErrorIs(t, err, domain.ErrUnknownPackage)
}

func TestCreate_CamposObligatoriosVacios(t *testing.T) {
	uc := booking.NewBookingUseCase(newMemBookingRepo(), &memUserRepo{byID: map[string]*entity.User{}}, nil)

	req := validRequest()
	req.CustomerPhone = ""
	_, err := uc.Create("user-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByUser_SoloReservasPropias(t *testing.T) {
	repo := newMemBookingRepo()
	uc := booking.NewBookingUseCase(repo, &memUserRepo{byID: map[string]*entity.User{}}, nil)

	_, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)
	_, err = uc.Create("user-2", validRequest())
	require.NoError(t, err)
	_, err = uc.Create("user-1", validRequest())
	require.NoError(t, err)

	mine, err := uc.ListByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, b := range mine {
		assert.Equal(t, "user-1", b.UserID)
	}

	all, err := uc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_TransicionesValidas(t *testing.T) {
	repo := newMemBookingRepo()
	uc := booking.NewBookingUseCase(repo, &memUserRepo{byID: map[string]*entity.User{}}, nil)

	created, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)

	approved, err := uc.UpdateStatus(created.ID, entity.BookingApproved)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingApproved), approved.Status)
	assert.Equal(t, created.ID, approved.ID, "la respuesta trae la reserva completa actualizada")

	completed, err := uc.UpdateStatus(created.ID, entity.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingCompleted), completed.Status)
}

func TestUpdateStatus_TransicionIlegalRetornaConflicto(t *testing.T) {
	repo := newMemBookingRepo()
	uc := booking.NewBookingUseCase(repo, &memUserRepo{byID: map[string]*entity.User{}}, nil)

	created, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)

	// pending no puede saltar directo a completed
	_, err = uc.UpdateStatus(created.ID, entity.BookingCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// rejected es terminal
	_, err = uc.UpdateStatus(created.ID, entity.BookingRejected)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(created.ID, entity.BookingApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, entity.BookingRejected, stored.Status, "una transición rechazada no toca el documento")
}

func TestUpdateStatus_EstadoDesconocidoOInexistente(t *testing.T) {
	uc := booking.NewBookingUseCase(newMemBookingRepo(), &memUserRepo{byID: map[string]*entity.User{}}, nil)

	_, err := uc.UpdateStatus("no-existe", entity.BookingApproved)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = uc.UpdateStatus("da-igual", entity.BookingStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BorradoIrreversible(t *testing.T) {
	repo := newMemBookingRepo()
	uc := booking.NewBookingUseCase(repo, &memUserRepo{byID: map[string]*entity.User{}}, nil)

	created, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	all, _ := uc.ListAll()
	assert.Empty(t, all)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_SoloDuenoOAdmin(t *testing.T) {
	repo := newMemBookingRepo()
	users := &memUserRepo{byID: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "alice@example.com", DisplayName: "Alice"},
	}}
	receipts := &stubReceipts{}
	uc := booking.NewBookingUseCase(repo, users, receipts)

	created, err := uc.Create("user-1", validRequest())
	require.NoError(t, err)

	// El dueño descarga su comprobante.
	pdf, err := uc.Receipt(created.ID, "user-1", entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, created.ID, receipts.lastBooking.ID)

	// Un admin también.
	_, err = uc.Receipt(created.ID, "otro-admin", entity.RoleAdmin)
	require.NoError(t, err)

	// Otro usuario normal, no.
	_, err = uc.Receipt(created.ID, "user-2", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReceipt_ReservaInexistente(t *testing.T) {
	uc := booking.NewBookingUseCase(newMemBookingRepo(), &memUserRepo{byID: map[string]*entity.User{}}, &stubReceipts{})

	_, err := uc.Receipt("no-existe", "user-1", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
