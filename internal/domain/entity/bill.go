package entity

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// LineItem es una línea de venta. Los valores del catálogo se copian al
// momento de la venta: cambiar un Item después jamás altera una línea histórica.
type LineItem struct {
	ItemCode        int
	ItemName        string
	Qty             int
	Rate            decimal.Decimal
	GSTPercent      decimal.Decimal
	GSTAmount       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	GrossAmount     decimal.Decimal // tras descuento, antes de restar GST
	NetAmount       decimal.Decimal // el "amount" que se muestra y se suma al total
	Cost            decimal.Decimal // costo extendido (unitario * qty)
	Category        string
	SubCategory     string
	Brand           string
	ExpiryDate      string
	StoreCode       int
	StoreName       string
	VendorName      string
	VendorGST       string
}

// Totals resumen de la factura.
// Invariantes: Total = Σ NetAmount de las líneas; Change = Tender − Total.
type Totals struct {
	Subtotal decimal.Decimal // Σ GrossAmount
	Discount decimal.Decimal // Σ DiscountAmount
	Total    decimal.Decimal // Σ NetAmount
	Tender   decimal.Decimal
	Change   decimal.Decimal
}

// Bill es una venta finalizada e inmutable: cabecera + líneas + totales.
type Bill struct {
	BillNo         string
	Date           string // DD/MM/YYYY
	Time           string // HH:MM:SS
	CustomerName   string
	CustomerMobile string
	PaymentMode    string // CASH, CARD, UPI, GC CARD
	Cashier        string
	Items          []LineItem
	Totals         Totals
}

// Content types del documento renderizado.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain"
)

// RenderedInvoice es el documento producido para una factura: bytes + tipo.
// Efímero; quien llama decide si lo persiste o lo sirve directo.
type RenderedInvoice struct {
	Bytes       []byte
	ContentType string
	Filename    string // <billNo>.pdf o <billNo>.txt
}

var pdfMagic = []byte("%PDF")

// IsPDF reporta si los bytes llevan la firma %PDF.
func (r *RenderedInvoice) IsPDF() bool {
	return bytes.HasPrefix(r.Bytes, pdfMagic)
}
