package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/domain"
)

// ReportHandler reportes de gestión (manager y admin).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DaySales devuelve el resumen de ventas de un día (?date=DD/MM/YYYY).
func (h *ReportHandler) DaySales(c *fiber.Ctx) error {
	out, err := h.uc.DaySales(c.Context(), c.Query("date"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// DaySalesPDF sirve el reporte del día como PDF descargable.
func (h *ReportHandler) DaySalesPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DaySalesPDF(c.Context(), c.Query("date"))
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date con formato DD/MM/YYYY requerido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
