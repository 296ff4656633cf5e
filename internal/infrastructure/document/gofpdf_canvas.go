// Package document produce el documento imprimible de una factura: PDF sobre
// gofpdf con reintento ASCII, y texto plano como último recurso.
package document

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/tu-usuario/billing-pro/internal/domain/layout"
)

const builtinFamily = "Helvetica"

// GofpdfCanvas adapta gofpdf al puerto Canvas del motor de layout.
// Coordenadas en puntos, origen arriba-izquierda, sin salto de página
// automático: la paginación la decide el motor.
type GofpdfCanvas struct {
	pdf    *gofpdf.Fpdf
	family string
	w, h   float64
}

var _ layout.Canvas = (*GofpdfCanvas)(nil)

// NewGofpdfCanvas crea el canvas A4. Si fontPath no es vacío se registra esa
// TTF como familia del documento (necesaria para glifos fuera de cp1252, como
// el símbolo de rupia); si es vacío se usa la Helvetica embebida.
func NewGofpdfCanvas(fontPath string) *GofpdfCanvas {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	family := builtinFamily
	if fontPath != "" {
		family = "invoice"
		// La misma TTF cubre los tres estilos; gofpdf exige registrarlos aparte.
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
		pdf.AddUTF8Font(family, "I", fontPath)
	}

	w, h := pdf.GetPageSize()
	return &GofpdfCanvas{pdf: pdf, family: family, w: w, h: h}
}

func (c *GofpdfCanvas) PageWidth() float64  { return c.w }
func (c *GofpdfCanvas) PageHeight() float64 { return c.h }
func (c *GofpdfCanvas) AddPage()            { c.pdf.AddPage() }
func (c *GofpdfCanvas) PageNo() int         { return c.pdf.PageNo() }

// Cell escribe texto en un rectángulo con estilo, alineación y fondo opcional.
func (c *GofpdfCanvas) Cell(x, y, w, h float64, text string, p layout.TextProps) {
	c.pdf.SetFont(c.family, styleString(p.Style), p.Size)
	c.pdf.SetTextColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))

	fill := false
	if p.Fill != nil {
		c.pdf.SetFillColor(int(p.Fill.R), int(p.Fill.G), int(p.Fill.B))
		fill = true
	}

	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, text, "", 0, alignString(p.Align), fill, 0, "")
}

// FillRect pinta un rectángulo sólido.
func (c *GofpdfCanvas) FillRect(x, y, w, h float64, col layout.Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.pdf.Rect(x, y, w, h, "F")
}

// Image coloca una imagen con ancho fijo y alto proporcional. Los errores de
// imagen no rompen el documento: gofpdf los acumula y aquí se descartan.
func (c *GofpdfCanvas) Image(path string, x, y, w float64) {
	before := c.pdf.Err()
	c.pdf.ImageOptions(path, x, y, w, 0, false,
		gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	if !before && c.pdf.Err() {
		c.pdf.ClearError()
	}
}

// Bytes cierra el documento y devuelve el PDF.
func (c *GofpdfCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func styleString(s layout.FontStyle) string {
	switch s {
	case layout.StyleBold:
		return "B"
	case layout.StyleItalic:
		return "I"
	default:
		return ""
	}
}

func alignString(a layout.Align) string {
	switch a {
	case layout.AlignCenter:
		return "CM"
	case layout.AlignRight:
		return "RM"
	default:
		return "LM"
	}
}
