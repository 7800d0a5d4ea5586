package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain/catalog"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// CatalogHandler expone el catálogo estático de paquetes y el portafolio.
// No hay use case detrás: son consumidores puros de datos compilados.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListPackages godoc
// @Summary      Catálogo de paquetes fotográficos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.PackageResponse
// @Router       /api/packages [get]
func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	out := make([]dto.PackageResponse, 0, len(catalog.Packages))
	for i := range catalog.Packages {
		out = append(out, toPackageResponse(&catalog.Packages[i]))
	}
	return c.JSON(out)
}

// GetPackage godoc
// @Summary      Paquete por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "ID del paquete"
// @Success      200  {object}  dto.PackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *fiber.Ctx) error {
	pkg := catalog.FindPackage(c.Params("id"))
	if pkg == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PACKAGE_NOT_FOUND", Message: "el paquete no existe"})
	}
	return c.JSON(toPackageResponse(pkg))
}

// ListGallery godoc
// @Summary      Portafolio público del estudio
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.GalleryImageResponse
// @Router       /api/gallery [get]
func (h *CatalogHandler) ListGallery(c *fiber.Ctx) error {
	out := make([]dto.GalleryImageResponse, 0, len(catalog.GalleryImages))
	for _, img := range catalog.GalleryImages {
		out = append(out, dto.GalleryImageResponse{
			ID:       img.ID,
			Src:      img.Src,
			Alt:      img.Alt,
			Category: img.Category,
		})
	}
	return c.JSON(out)
}

func toPackageResponse(p *entity.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Duration:    p.Duration,
		Features:    p.Features,
		Image:       p.Image,
	}
}
