package layout

import "github.com/shopspring/decimal"

// CurrencyFormatter formatea montos para impresión. La elección Unicode/ASCII
// se hace una sola vez por documento: jamás se mezclan "₹" y "Rs." en una
// misma factura.
type CurrencyFormatter struct {
	unicode bool
}

// NewCurrencyFormatter construye el formateador. unicodeGlyph=true requiere
// que el backend tenga una fuente capaz de codificar ₹.
func NewCurrencyFormatter(unicodeGlyph bool) CurrencyFormatter {
	return CurrencyFormatter{unicode: unicodeGlyph}
}

// Format redondea a 2 decimales solo aquí, en presentación.
func (f CurrencyFormatter) Format(v decimal.Decimal) string {
	if f.unicode {
		return "₹" + v.StringFixed(2)
	}
	return "Rs." + v.StringFixed(2)
}
