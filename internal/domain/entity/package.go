package entity

import "github.com/shopspring/decimal"

// Package paquete fotográfico del catálogo estático (compilado en la aplicación).
// No se persiste: es un catálogo de solo lectura sin ciclo de vida.
type Package struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    string
	Features    []string // lista ordenada
	Image       string
}

// GalleryImage imagen del portafolio público del estudio.
type GalleryImage struct {
	ID       int
	Src      string
	Alt      string
	Category string
}
