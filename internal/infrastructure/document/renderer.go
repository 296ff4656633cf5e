package document

import (
	"fmt"

	"github.com/tu-usuario/billing-pro/internal/application/checkout"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/layout"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

var _ checkout.InvoiceRenderer = (*Renderer)(nil)

// Config del renderer de facturas.
type Config struct {
	// Backend: "pdf" (por defecto) o "text" para forzar el plano.
	Backend string
	// FontPath TTF Unicode preferida; vacío activa el sondeo del sistema.
	FontPath string

	StoreName   string
	AddressLine string
	BankDetails string
	LogoPath    string
}

// Renderer produce el documento de una factura. El orden de intentos es:
// PDF con moneda Unicode, PDF completo en ASCII si el encoder rechazó algo,
// y texto plano como último recurso. El texto plano no puede fallar, así que
// una factura válida siempre obtiene documento.
type Renderer struct {
	cfg      Config
	fontPath string // resuelta una vez al construir
	log      *logger.Logger
}

// NewRenderer construye el renderer resolviendo la fuente Unicode disponible.
func NewRenderer(cfg Config, log *logger.Logger) *Renderer {
	r := &Renderer{cfg: cfg, log: log}
	if cfg.Backend != "text" {
		r.fontPath = resolveFont(cfg.FontPath)
		if r.fontPath == "" {
			log.Warn().Msg("sin TTF Unicode: las facturas saldrán con moneda Rs.")
		}
	}
	return r
}

// Render produce el documento de la factura.
func (r *Renderer) Render(bill *entity.Bill) (*entity.RenderedInvoice, error) {
	if bill == nil || bill.BillNo == "" {
		return nil, fmt.Errorf("%w: factura incompleta", domain.ErrInvalidInput)
	}

	if r.cfg.Backend == "text" {
		return r.renderText(bill), nil
	}

	pdfBytes, err := r.renderPDF(bill, false)
	if err != nil {
		// Reintento completo en ASCII: la moneda cambia en todo el
		// documento, nunca por campo.
		r.log.Warn().Err(err).Str("bill_no", bill.BillNo).
			Msg("render Unicode rechazado; reintento en ASCII")
		pdfBytes, err = r.renderPDF(bill, true)
	}
	if err != nil {
		r.log.Error().Err(err).Str("bill_no", bill.BillNo).
			Msg("backend PDF caído; degradando a texto plano")
		return r.renderText(bill), nil
	}

	return &entity.RenderedInvoice{
		Bytes:       pdfBytes,
		ContentType: entity.ContentTypePDF,
		Filename:    bill.BillNo + ".pdf",
	}, nil
}

func (r *Renderer) renderPDF(bill *entity.Bill, forceASCII bool) ([]byte, error) {
	fontPath := r.fontPath
	if forceASCII {
		fontPath = ""
	}

	qrPath, cleanup := buildQRImage(bill)
	defer cleanup()

	canvas := NewGofpdfCanvas(fontPath)
	engine := layout.NewEngine(canvas, layout.Options{
		StoreName:       r.cfg.StoreName,
		AddressLine:     r.cfg.AddressLine,
		BankDetails:     r.cfg.BankDetails,
		LogoPath:        r.cfg.LogoPath,
		QRImagePath:     qrPath,
		UnicodeCurrency: fontPath != "",
	})
	if _, err := engine.Render(bill); err != nil {
		return nil, err
	}
	return canvas.Bytes()
}

func (r *Renderer) renderText(bill *entity.Bill) *entity.RenderedInvoice {
	return &entity.RenderedInvoice{
		Bytes:       renderText(bill, r.cfg.StoreName, r.cfg.AddressLine),
		ContentType: entity.ContentTypeText,
		Filename:    bill.BillNo + ".txt",
	}
}
