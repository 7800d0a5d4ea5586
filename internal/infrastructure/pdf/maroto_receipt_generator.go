// Package pdf implementa el comprobante PDF de una reserva fotográfica.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estudio  │  N° Reserva + Fecha de solicitud        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + contacto                                  │
//	│  EVENTO: fecha / hora / lugar                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAQUETE: nombre, duración, características                  │
//	│  TOTAL                                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el ID de la reserva + estado                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

const studioName = "FotoEstudio"

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa booking.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	booking *entity.Booking,
	pkg *entity.Package,
	customer *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva "+studioName, true).
		WithAuthor(studioName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(booking))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(booking, customer))
	m.AddRows(eventRow(booking))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(packageRows(pkg)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(booking))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(booking))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del estudio (izq), N° de reserva + fecha (der).
func headerRow(booking *entity.Booking) core.Row {
	fecha := booking.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(studioName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de reserva de sesión fotográfica", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(booking.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Solicitada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente tal como se capturaron en el formulario.
func customerRow(booking *entity.Booking, customer *entity.User) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(booking.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Cuenta: %s",
				booking.CustomerEmail, booking.CustomerPhone, customer.Email,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// eventRow: fecha, hora y lugar del evento.
func eventRow(booking *entity.Booking) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EVENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Hora: %s   |   Lugar: %s",
				booking.EventDate, booking.EventTime, booking.Location,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// packageRows: paquete contratado con sus características.
func packageRows(pkg *entity.Package) []core.Row {
	rows := []core.Row{
		row.New(12).Add(
			col.New(8).Add(
				text.New("PAQUETE", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(pkg.Name, props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 6,
				}),
			),
			col.New(4).Add(
				text.New("Duración: "+pkg.Duration, props.Text{
					Size: 8, Align: align.Right, Top: 7, Color: colorGray,
				}),
			),
		),
	}
	for _, f := range pkg.Features {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+f, props.Text{Size: 8, Top: 0.5, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// totalRow: monto total congelado al momento del envío.
func totalRow(booking *entity.Booking) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New("Rs. "+booking.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// footerRow: QR con el ID completo de la reserva + estado actual.
func footerRow(booking *entity.Booking) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(booking.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Presenta este comprobante el día de tu sesión.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Estado de la reserva: "+string(booking.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 18, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// shortID devuelve los primeros 8 caracteres del UUID para mostrar.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
