package dto

import "github.com/shopspring/decimal"

// DaySalesRequest rango del reporte de ventas diarias (DD/MM/YYYY).
type DaySalesRequest struct {
	Date string `query:"date" validate:"required"`
}

// DaySalesRow una factura dentro del reporte del día.
type DaySalesRow struct {
	BillNo       string          `json:"bill_no"`
	Time         string          `json:"time"`
	CustomerName string          `json:"customer_name"`
	PaymentMode  string          `json:"payment_mode"`
	Cashier      string          `json:"cashier"`
	Qty          int             `json:"qty"`
	Total        decimal.Decimal `json:"total"`
}

// DaySalesResponse resumen de ventas de un día.
type DaySalesResponse struct {
	Date          string                     `json:"date"`
	BillCount     int                        `json:"bill_count"`
	UnitsSold     int                        `json:"units_sold"`
	GrossTotal    decimal.Decimal            `json:"gross_total"`
	ByPaymentMode map[string]decimal.Decimal `json:"by_payment_mode"`
	Rows          []DaySalesRow              `json:"rows"`
}
