package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/checkout"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
)

// BillingHandler maneja el punto de venta: vista previa de líneas, cierre de
// venta y consulta/reimpresión de facturas.
type BillingHandler struct {
	uc *checkout.UseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *checkout.UseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// PriceItem valoriza una línea sin registrar nada (vista previa al escanear).
func (h *BillingHandler) PriceItem(c *fiber.Ctx) error {
	code := c.QueryInt("code", 0)
	qty := c.QueryInt("qty", 1)
	out, err := h.uc.PriceItem(c.Context(), code, qty)
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(out)
}

// Checkout cierra la venta y devuelve la factura. Si el render salió bien,
// la respuesta incluye la URL del documento.
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resp, _, err := h.uc.Checkout(c.Context(), GetUsername(c), in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetBill devuelve una factura emitida.
func (h *BillingHandler) GetBill(c *fiber.Ctx) error {
	out, err := h.uc.GetBill(c.Context(), c.Params("billNo"))
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(out)
}

// ListRecent devuelve las últimas facturas.
func (h *BillingHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(out)
}

// Document regenera y sirve el documento de una factura emitida.
func (h *BillingHandler) Document(c *fiber.Ctx) error {
	doc, err := h.uc.Document(c.Context(), c.Params("billNo"))
	if err != nil {
		return billingError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+doc.Filename+`"`)
	return c.Send(doc.Bytes)
}

// LookupCustomer autocompleta el nombre del cliente por móvil.
func (h *BillingHandler) LookupCustomer(c *fiber.Ctx) error {
	out, err := h.uc.LookupCustomer(c.Context(), c.Query("mobile"))
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(out)
}

// billingError mapea los sentinelas de dominio a códigos HTTP.
func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "la venta no tiene ítems"})
	case errors.Is(err, domain.ErrInsufficientTender):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_TENDER", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrRenderFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: "no se pudo generar el documento"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
