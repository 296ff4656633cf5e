package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de la tienda.
// SOH (stock on hand) puede quedar negativo en una sobreventa: la caja nunca
// bloquea una venta por stock, solo lo registra.
type Item struct {
	Code            int             // código único (EAN o interno)
	Name            string
	Rate            decimal.Decimal // precio de lista
	GSTPercent      decimal.Decimal // 0–100
	DiscountPercent decimal.Decimal // 0–100
	SOH             int
	Cost            decimal.Decimal // costo unitario de compra
	Category        string
	SubCategory     string
	Brand           string
	ExpiryDate      string // texto libre, como lo captura la tienda
	StoreCode       int
	StoreName       string
	VendorName      string
	VendorGST       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
