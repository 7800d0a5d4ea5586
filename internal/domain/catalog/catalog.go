// Package catalog contiene el catálogo estático de paquetes fotográficos y el
// portafolio público del estudio. Los datos se compilan en la aplicación: no
// hay persistencia ni ciclo de vida, es un catálogo de solo lectura.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// Packages paquetes reservables, en el orden en que se muestran.
// Los precios quedan fijos al compilar; el TotalAmount de una reserva copia el
// precio vigente al momento del envío, por lo que cambiar aquí un precio no
// altera reservas ya creadas.
var Packages = []entity.Package{
	{
		ID:          "1",
		Name:        "Wedding Essential",
		Description: "Perfect for intimate weddings",
		Price:       decimal.NewFromInt(1500),
		Duration:    "6 hours",
		Features:    []string{"Professional photographer", "Digital gallery", "100+ edited photos", "Online gallery"},
		Image:       "images/wed1.jpg?auto=compress&cs=tinysrgb&w=400&h=300&fit=crop",
	},
	{
		ID:          "2",
		Name:        "Portrait Session",
		Description: "Individual or family portraits",
		Price:       decimal.NewFromInt(300),
		Duration:    "2 hours",
		Features:    []string{"Professional photographer", "30+ edited photos", "Multiple outfit changes", "Digital delivery"},
		Image:       "images/prod2.jpg?auto=compress&cs=tinysrgb&w=400&h=300&fit=crop",
	},
	{
		ID:          "3",
		Name:        "Event Coverage",
		Description: "Corporate and special events",
		Price:       decimal.NewFromInt(800),
		Duration:    "4 hours",
		Features:    []string{"Event photographer", "Candid moments", "150+ photos", "Same-day highlights"},
		Image:       "images/cor1.jpg?auto=compress&cs=tinysrgb&w=400&h=300&fit=crop",
	},
	{
		ID:          "4",
		Name:        "Wedding Premium",
		Description: "Complete wedding coverage",
		Price:       decimal.NewFromInt(2500),
		Duration:    "8 hours",
		Features:    []string{"Two photographers", "Engagement session", "300+ edited photos", "Wedding album", "Online gallery"},
		Image:       "https://images.pexels.com/photos/1169084/pexels-photo-1169084.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&fit=crop",
	},
}

// FindPackage resuelve un packageID contra el catálogo. Búsqueda lineal:
// el conjunto es pequeño y fijo. Devuelve nil si no existe.
func FindPackage(id string) *entity.Package {
	for i := range Packages {
		if Packages[i].ID == id {
			return &Packages[i]
		}
	}
	return nil
}
