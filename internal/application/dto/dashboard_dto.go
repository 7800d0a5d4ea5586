package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen del back-office. Se recalcula releyendo la lista
// completa de reservas en cada consulta, nunca se mantiene incrementalmente.
type DashboardResponse struct {
	TotalBookings     int             `json:"total_bookings"`
	PendingBookings   int             `json:"pending_bookings"`
	ApprovedBookings  int             `json:"approved_bookings"`
	CompletedBookings int             `json:"completed_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalUsers        int             `json:"total_users"`
}
