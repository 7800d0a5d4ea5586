package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estudiolens/fotoestudio-api/internal/application/analytics"
	"github.com/estudiolens/fotoestudio-api/internal/application/auth"
	appbooking "github.com/estudiolens/fotoestudio-api/internal/application/booking"
	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// AdminHandler back-office: listados completos, transición de estado,
// borrado y resumen.
type AdminHandler struct {
	bookingUC   *appbooking.BookingUseCase
	authUC      *auth.AuthUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewAdminHandler construye el handler del back-office.
func NewAdminHandler(bookingUC *appbooking.BookingUseCase, authUC *auth.AuthUseCase, dashboardUC *analytics.DashboardUseCase) *AdminHandler {
	return &AdminHandler{bookingUC: bookingUC, authUC: authUC, dashboardUC: dashboardUC}
}

// ListBookings godoc
// @Summary      Todas las reservas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	out, err := h.bookingUC.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron cargar las reservas"})
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Todos los usuarios
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.authUC.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron cargar los usuarios"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transición de estado de una reserva
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.BookingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/bookings/{id}/status [patch]
//
// La respuesta devuelve la reserva completa ya actualizada para que el
// cliente pueda reflejarla en su lista sin re-consultar.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bookingUC.UpdateStatus(c.Params("id"), entity.BookingStatus(in.Status))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		case domain.ErrBookingNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BOOKING_NOT_FOUND", Message: "la reserva no existe"})
		case domain.ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la transición de estado no está permitida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo actualizar la reserva"})
		}
	}
	return c.JSON(out)
}

// DeleteBooking godoc
// @Summary      Borrar una reserva (irreversible)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.bookingUC.Delete(c.Params("id")); err != nil {
		if err == domain.ErrBookingNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BOOKING_NOT_FOUND", Message: "la reserva no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo borrar la reserva"})
	}
	return c.JSON(dto.MessageResponse{Message: "reserva eliminada"})
}

// Dashboard godoc
// @Summary      Resumen del back-office
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo calcular el resumen"})
	}
	return c.JSON(out)
}
