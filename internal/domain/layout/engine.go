// Package layout implementa el motor de composición de la factura impresa.
//
// Layout de la página (puntos, A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: banda verde con nombre/dirección │ caja INVOICE    │
//	│  Customer + Mobile / Date & Time                            │
//	│  TABLA: Description | Qty | Rate | Amount (filas rayadas)   │
//	│  TOTALES: Qty / Subtotal / GST / Discount / TOTAL / Tender  │
//	│  QR + firmas + datos bancarios                              │
//	│  FOOTER: Page N                                             │
//	└─────────────────────────────────────────────────────────────┘
//
// El motor es una máquina de estados con acumulador explícito (cursor Y,
// paridad de rayado, página) sobre un Canvas; el corte de página se decide
// antes de emitir cada fila y antes del bloque de totales.
package layout

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// Geometría de la página (puntos). rowHeight y bottomMargin gobiernan el
// corte: una fila se emite solo si cursorY+rowHeight+bottomMargin cabe.
const (
	headerHeight     = 80.0
	leftMargin       = 30.0
	bottomMargin     = 50.0
	rowHeight        = 18.0
	tableHeaderH     = 22.0
	totalsBlockH     = 140.0
	lineHeight       = 16.0
	descMaxRunes     = 60
	invoiceBoxWidth  = 150.0
	invoiceBoxHeight = 44.0
)

// Columnas de la tabla de ítems.
const (
	colDescX   = leftMargin
	colDescW   = 300.0
	colQtyX    = 330.0
	colQtyW    = 60.0
	colRateX   = 390.0
	colRateW   = 80.0
	colAmountX = 470.0
	colAmountW = 80.0
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary    = Color{R: 0, G: 40, B: 30}
	colorAccent     = Color{R: 202, G: 155, B: 26}
	colorCream      = Color{R: 255, G: 247, B: 230}
	colorHeaderText = Color{R: 255, G: 255, B: 220}
	colorWhite      = Color{R: 255, G: 255, B: 255}
	colorBlack      = Color{R: 0, G: 0, B: 0}
	colorFooterGray = Color{R: 120, G: 120, B: 120}
	colorQtyFill    = Color{R: 100, G: 123, B: 23}
)

// Options parámetros fijos del documento, resueltos una sola vez antes del
// render (identidad de la tienda y capacidades: fuente Unicode, QR).
type Options struct {
	StoreName       string
	AddressLine     string
	BankDetails     string
	LogoPath        string // vacío = sin logo
	QRImagePath     string // vacío = sin código QR
	UnicodeCurrency bool
}

// Engine compone una factura sobre un Canvas. No es reutilizable entre
// renders concurrentes: cada llamada a Render usa su propio Engine.
type Engine struct {
	c    Canvas
	opts Options
	cur  CurrencyFormatter

	// acumulador del layout
	bill    *entity.Bill
	cursorY float64
	stripe  bool // paridad del rayado; NO se resetea en el corte de página
}

// NewEngine construye el motor para un render.
func NewEngine(c Canvas, opts Options) *Engine {
	return &Engine{
		c:    c,
		opts: opts,
		cur:  NewCurrencyFormatter(opts.UnicodeCurrency),
	}
}

// Render compone la factura completa y devuelve el número de páginas.
// Una factura sin líneas es válida: tabla vacía y totales en cero.
func (e *Engine) Render(bill *entity.Bill) (pages int, err error) {
	if bill == nil {
		return 0, fmt.Errorf("%w: factura nil", domain.ErrInvalidInput)
	}
	if bill.BillNo == "" {
		return 0, fmt.Errorf("%w: factura sin número", domain.ErrInvalidInput)
	}

	e.bill = bill
	e.cursorY = 0
	e.stripe = false

	e.c.AddPage()
	e.drawPageHeader()
	e.drawCustomerBlock()
	e.drawTableHeader()

	for i := range bill.Items {
		e.drawRow(&bill.Items[i])
	}

	// El bloque de totales corta página igual que una fila, pero sin
	// redibujar la cabecera de la tabla.
	e.ensureRoom(totalsBlockH, false)
	e.drawTotals()
	e.drawSignatureBlock()
	e.drawFooter()

	return e.c.PageNo(), nil
}

// ensureRoom corta la página si no caben need puntos más el margen inferior:
// pie de página, página nueva, cabecera, y la cabecera de tabla si siguen filas.
func (e *Engine) ensureRoom(need float64, redrawTable bool) {
	if e.cursorY+need+bottomMargin > e.c.PageHeight() {
		e.drawFooter()
		e.c.AddPage()
		e.drawPageHeader()
		if redrawTable {
			e.drawTableHeader()
		}
	}
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (e *Engine) drawPageHeader() {
	e.c.FillRect(0, 0, e.c.PageWidth(), headerHeight, colorPrimary)
	if e.opts.LogoPath != "" {
		e.c.Image(e.opts.LogoPath, 90, 5, 240)
	}
	e.c.Cell(leftMargin, 18, 360, 14, e.opts.StoreName, TextProps{
		Style: StyleBold, Size: 16, Color: colorHeaderText,
	})
	e.c.Cell(leftMargin, 44, 400, 12, e.opts.AddressLine, TextProps{
		Style: StyleBold, Size: 10, Color: colorHeaderText,
	})

	// Caja blanca "INVOICE" con el número de factura, arriba a la derecha.
	boxX := e.c.PageWidth() - invoiceBoxWidth - 30
	e.c.FillRect(boxX, 20, invoiceBoxWidth, invoiceBoxHeight, colorWhite)
	e.c.Cell(boxX, 26, invoiceBoxWidth, 12, "INVOICE", TextProps{
		Style: StyleBold, Size: 12, Align: AlignCenter, Color: colorPrimary,
	})
	e.c.Cell(boxX, 44, invoiceBoxWidth, 10, "Bill No: "+e.bill.BillNo, TextProps{
		Size: 9, Align: AlignCenter, Color: colorPrimary,
	})

	e.cursorY = headerHeight + 10
}

func (e *Engine) drawCustomerBlock() {
	label := TextProps{Style: StyleBold, Size: 11, Color: colorBlack}
	value := TextProps{Size: 11, Color: colorBlack}

	e.c.Cell(leftMargin, e.cursorY, 80, lineHeight, "Customer:", label)
	e.c.Cell(leftMargin+80, e.cursorY, 260, lineHeight,
		e.bill.CustomerName+"  "+e.bill.CustomerMobile, value)
	e.cursorY += lineHeight

	e.c.Cell(leftMargin, e.cursorY, 80, lineHeight, "Date & Time:", label)
	e.c.Cell(leftMargin+80, e.cursorY, 260, lineHeight,
		e.bill.Date+"      "+e.bill.Time, value)
	e.cursorY += lineHeight + 6
}

func (e *Engine) drawTableHeader() {
	h := TextProps{Style: StyleBold, Size: 11, Color: colorWhite, Fill: &colorPrimary}
	hc := h
	hc.Align = AlignCenter
	hr := h
	hr.Align = AlignRight

	y := e.cursorY
	e.c.Cell(colDescX, y, colDescW, tableHeaderH, "Description", h)
	e.c.Cell(colQtyX, y, colQtyW, tableHeaderH, "Qty", hc)
	e.c.Cell(colRateX, y, colRateW, tableHeaderH, "Rate", hr)
	e.c.Cell(colAmountX, y, colAmountW, tableHeaderH, "Amount", hr)
	e.cursorY += tableHeaderH
}

func (e *Engine) drawRow(it *entity.LineItem) {
	e.ensureRoom(rowHeight, true)

	fill := colorCream
	if e.stripe {
		fill = colorAccent
	}
	cell := TextProps{Size: 10, Color: colorBlack, Fill: &fill}
	cellC := cell
	cellC.Align = AlignCenter
	cellR := cell
	cellR.Align = AlignRight

	y := e.cursorY
	e.c.Cell(colDescX, y, colDescW, rowHeight, truncate(it.ItemName, descMaxRunes), cell)
	e.c.Cell(colQtyX, y, colQtyW, rowHeight, strconv.Itoa(it.Qty), cellC)
	e.c.Cell(colRateX, y, colRateW, rowHeight, e.cur.Format(it.Rate), cellR)
	e.c.Cell(colAmountX, y, colAmountW, rowHeight, e.cur.Format(it.NetAmount), cellR)

	e.stripe = !e.stripe
	e.cursorY += rowHeight
}

func (e *Engine) drawTotals() {
	// Separador a lo ancho de la página.
	e.c.FillRect(leftMargin, e.cursorY+8, e.c.PageWidth()-2*leftMargin, 0.8, colorPrimary)
	e.cursorY += 18

	// El total de GST se deriva de las líneas: el resumen de la factura
	// no lleva campo de impuestos.
	gstTotal := decimal.Zero
	totalQty := 0
	for i := range e.bill.Items {
		gstTotal = gstTotal.Add(e.bill.Items[i].GSTAmount)
		totalQty += e.bill.Items[i].Qty
	}

	label := TextProps{Size: 11, Color: colorBlack}
	value := TextProps{Size: 11, Align: AlignRight, Color: colorBlack}
	t := e.bill.Totals
	rightX := 410.0

	e.c.Cell(230, e.cursorY, 70, rowHeight, "Total Qty:", TextProps{
		Size: 11, Color: colorBlack, Fill: &colorQtyFill,
	})
	e.c.Cell(300, e.cursorY, 70, rowHeight, strconv.Itoa(totalQty), TextProps{
		Size: 11, Align: AlignRight, Color: colorBlack, Fill: &colorQtyFill,
	})
	e.c.Cell(rightX, e.cursorY, 70, rowHeight, "Subtotal:", label)
	e.c.Cell(rightX+70, e.cursorY, 70, rowHeight, e.cur.Format(t.Subtotal), value)
	e.cursorY += rowHeight

	e.c.Cell(rightX, e.cursorY, 70, rowHeight, "GST Total:", label)
	e.c.Cell(rightX+70, e.cursorY, 70, rowHeight, e.cur.Format(gstTotal), value)
	e.cursorY += rowHeight

	e.c.Cell(rightX, e.cursorY, 70, rowHeight, "Discount:", label)
	e.c.Cell(rightX+70, e.cursorY, 70, rowHeight, e.cur.Format(t.Discount), value)
	e.cursorY += rowHeight

	grand := TextProps{Style: StyleBold, Size: 13, Color: colorWhite, Fill: &colorPrimary}
	grandV := grand
	grandV.Align = AlignRight
	e.c.Cell(rightX, e.cursorY, 70, 22, "Total:", grand)
	e.c.Cell(rightX+70, e.cursorY, 70, 22, e.cur.Format(t.Total), grandV)
	e.cursorY += 22

	e.c.Cell(rightX, e.cursorY, 70, rowHeight, "Tender:", label)
	e.c.Cell(rightX+70, e.cursorY, 70, rowHeight, e.cur.Format(t.Tender), value)
	e.cursorY += rowHeight

	e.c.Cell(rightX, e.cursorY, 70, rowHeight, "Change:", label)
	e.c.Cell(rightX+70, e.cursorY, 70, rowHeight, e.cur.Format(t.Change), value)
	e.cursorY += rowHeight
}

func (e *Engine) drawSignatureBlock() {
	e.cursorY += 12
	if e.opts.QRImagePath != "" {
		e.c.Image(e.opts.QRImagePath, leftMargin, e.cursorY, 80)
	}

	sig := TextProps{Size: 10, Color: colorBlack}
	e.c.Cell(leftMargin+90, e.cursorY+12, 240, lineHeight, "Received By: ______________________", sig)
	e.c.Cell(350, e.cursorY+12, 240, lineHeight, "Authorised Signatory: ______________", sig)
	e.cursorY += 46

	e.c.Cell(leftMargin, e.cursorY, e.c.PageWidth()-2*leftMargin, lineHeight,
		e.opts.BankDetails, TextProps{Size: 9, Color: colorBlack})
	e.cursorY += lineHeight
}

func (e *Engine) drawFooter() {
	e.c.Cell(0, e.c.PageHeight()-bottomMargin+10, e.c.PageWidth(), 10,
		fmt.Sprintf("Page %d", e.c.PageNo()), TextProps{
			Style: StyleItalic, Size: 8, Align: AlignCenter, Color: colorFooterGray,
		})
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
