package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
	"github.com/estudiolens/fotoestudio-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	pool *pgxpool.Pool
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

const bookingColumns = `id, user_id, package_id, event_date, event_time, location, status,
		customer_name, customer_email, customer_phone, special_requests, total_amount,
		created_at, updated_at`

// Create persiste una nueva reserva.
func (r *BookingRepo) Create(b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, package_id, event_date, event_time, location, status,
			customer_name, customer_email, customer_phone, special_requests, total_amount,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.UserID, b.PackageID, b.EventDate, b.EventTime, b.Location, string(b.Status),
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.SpecialRequests, b.TotalAmount,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. Devuelve (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListByUser reservas de un usuario, más recientes primero.
func (r *BookingRepo) ListByUser(userID string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return collectBookings(rows)
}

// ListAll todas las reservas, más recientes primero.
func (r *BookingRepo) ListAll() ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return collectBookings(rows)
}

// UpdateStatus actualiza solo el campo status. Último escritor gana: la
// atomicidad por documento del motor es el único mecanismo de consistencia.
func (r *BookingRepo) UpdateStatus(id string, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

// Delete elimina una reserva por ID.
func (r *BookingRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	var status string
	err := row.Scan(
		&b.ID, &b.UserID, &b.PackageID, &b.EventDate, &b.EventTime, &b.Location, &status,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.SpecialRequests, &b.TotalAmount,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = entity.BookingStatus(status)
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
