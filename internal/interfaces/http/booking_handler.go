package http

import (
	"github.com/gofiber/fiber/v2"

	appbooking "github.com/estudiolens/fotoestudio-api/internal/application/booking"
	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain"
)

// BookingHandler maneja el flujo de reserva del cliente autenticado.
type BookingHandler struct {
	uc *appbooking.BookingUseCase
}

// NewBookingHandler construye el handler de reservas.
func NewBookingHandler(uc *appbooking.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar solicitud de reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateBookingRequest  true  "datos del evento y paquete"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email, teléfono, fecha, hora y lugar son requeridos"})
		case domain.ErrUnknownPackage:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PACKAGE", Message: "el paquete seleccionado no existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear la reserva, intenta de nuevo"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Reservas del usuario autenticado
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron cargar las reservas"})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una reserva
// @Tags         bookings
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/receipt [get]
func (h *BookingHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.uc.Receipt(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		switch err {
		case domain.ErrBookingNotFound, domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BOOKING_NOT_FOUND", Message: "la reserva no existe"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la reserva no pertenece a esta cuenta"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el comprobante"})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reserva.pdf"`)
	return c.Send(data)
}
