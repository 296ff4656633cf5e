package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/catalog"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
)

// CatalogHandler maneja ítems, valores de clasificación y proveedores.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// CreateItem da de alta un ítem.
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
		}
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetItem devuelve un ítem por código.
func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código numérico requerido"})
	}
	out, err := h.uc.GetItem(c.Context(), code)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// SearchItems busca por código o nombre (la consulta de la caja).
func (h *CatalogHandler) SearchItems(c *fiber.Ctx) error {
	out, err := h.uc.SearchItems(c.Context(), c.Query("q"), c.QueryInt("limit", 20))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// ListItems lista el catálogo paginado.
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListItems(c.Context(), page)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem edita un ítem.
func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código numérico requerido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), code, in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// AdjustSOH ajusta el stock de un ítem (recepción o conteo).
func (h *CatalogHandler) AdjustSOH(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código numérico requerido"})
	}
	var in dto.AdjustSOHRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	soh, err := h.uc.AdjustSOH(c.Context(), code, in.Delta)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(dto.SOHResponse{Code: code, SOH: soh})
}

// DeleteItem elimina un ítem del catálogo.
func (h *CatalogHandler) DeleteItem(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código numérico requerido"})
	}
	if err := h.uc.DeleteItem(c.Context(), code); err != nil {
		return catalogError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}

// ── Valores de clasificación ──────────────────────────────────────────────────

// ListCategories lista categorías.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// ListSubCategories lista subcategorías de una categoría.
func (h *CatalogHandler) ListSubCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListSubCategories(c.Context(), c.Query("category"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// ListBrands lista marcas.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.Context())
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

type nameBody struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AddCategory declara una categoría.
func (h *CatalogHandler) AddCategory(c *fiber.Ctx) error {
	return h.addValue(c, func(b nameBody) error { return h.uc.AddCategory(c.Context(), b.Name) })
}

// AddSubCategory declara una subcategoría.
func (h *CatalogHandler) AddSubCategory(c *fiber.Ctx) error {
	return h.addValue(c, func(b nameBody) error { return h.uc.AddSubCategory(c.Context(), b.Category, b.Name) })
}

// AddBrand declara una marca.
func (h *CatalogHandler) AddBrand(c *fiber.Ctx) error {
	return h.addValue(c, func(b nameBody) error { return h.uc.AddBrand(c.Context(), b.Name) })
}

func (h *CatalogHandler) addValue(c *fiber.Ctx, add func(nameBody) error) error {
	var in nameBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := add(in); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el valor ya existe"})
		}
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "valor agregado"})
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateVendor da de alta un proveedor.
func (h *CatalogHandler) CreateVendor(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateVendor(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el proveedor ya existe"})
		}
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVendors lista proveedores.
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListVendors(c.Context(), page)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateVendor edita un proveedor.
func (h *CatalogHandler) UpdateVendor(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateVendor(c.Context(), c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// DeleteVendor elimina un proveedor.
func (h *CatalogHandler) DeleteVendor(c *fiber.Ctx) error {
	if err := h.uc.DeleteVendor(c.Context(), c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor eliminado"})
}

func catalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
