package dto

import "github.com/shopspring/decimal"

// AddItemRequest agrega un ítem al carrito de la sesión de venta.
type AddItemRequest struct {
	ItemCode int `json:"item_code" validate:"required"`
	Qty      int `json:"qty" validate:"required,min=1"`
}

// CheckoutRequest cierra la venta. Los ítems viajan completos porque el
// carrito vive en el cliente; el servidor recalcula cada línea.
type CheckoutRequest struct {
	Items          []AddItemRequest `json:"items" validate:"required,dive"`
	CustomerName   string           `json:"customer_name"`
	CustomerMobile string           `json:"customer_mobile"`
	PaymentMode    string           `json:"payment_mode"`
	Tender         decimal.Decimal  `json:"tender"`
}

// LineItemResponse una línea de la factura con sus montos calculados.
type LineItemResponse struct {
	ItemCode       int             `json:"item_code"`
	ItemName       string          `json:"item_name"`
	Qty            int             `json:"qty"`
	Rate           decimal.Decimal `json:"rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}

// BillResponse cabecera + líneas + totales de una factura emitida.
type BillResponse struct {
	BillNo         string             `json:"bill_no"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	CustomerName   string             `json:"customer_name"`
	CustomerMobile string             `json:"customer_mobile"`
	PaymentMode    string             `json:"payment_mode"`
	Cashier        string             `json:"cashier"`
	Items          []LineItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Discount       decimal.Decimal    `json:"discount"`
	Total          decimal.Decimal    `json:"total"`
	Tender         decimal.Decimal    `json:"tender"`
	Change         decimal.Decimal    `json:"change"`

	// Warnings avisos no fatales del cierre (stock parcial, render caído).
	Warnings []string `json:"warnings,omitempty"`
}

// CustomerLookupResponse autocompletado de cliente por móvil.
type CustomerLookupResponse struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}
