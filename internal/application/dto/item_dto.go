package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// CreateItemRequest alta de ítem en el catálogo.
type CreateItemRequest struct {
	Code            int             `json:"code" validate:"required"`
	Name            string          `json:"name" validate:"required"`
	Rate            decimal.Decimal `json:"rate" validate:"required"`
	GSTPercent      decimal.Decimal `json:"gst_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Cost            decimal.Decimal `json:"cost"`
	SOH             int             `json:"soh"`
	Category        string          `json:"category"`
	SubCategory     string          `json:"sub_category"`
	Brand           string          `json:"brand"`
	ExpiryDate      string          `json:"expiry_date"`
	StoreCode       int             `json:"store_code"`
	StoreName       string          `json:"store_name"`
	VendorName      string          `json:"vendor_name"`
	VendorGST       string          `json:"vendor_gst"`
}

// UpdateItemRequest edición de ítem; el código no cambia.
type UpdateItemRequest struct {
	Name            string          `json:"name" validate:"required"`
	Rate            decimal.Decimal `json:"rate" validate:"required"`
	GSTPercent      decimal.Decimal `json:"gst_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Cost            decimal.Decimal `json:"cost"`
	SOH             int             `json:"soh"`
	Category        string          `json:"category"`
	SubCategory     string          `json:"sub_category"`
	Brand           string          `json:"brand"`
	ExpiryDate      string          `json:"expiry_date"`
	VendorName      string          `json:"vendor_name"`
	VendorGST       string          `json:"vendor_gst"`
}

// ItemResponse representación pública de un ítem.
type ItemResponse struct {
	Code            int             `json:"code"`
	Name            string          `json:"name"`
	Rate            decimal.Decimal `json:"rate"`
	GSTPercent      decimal.Decimal `json:"gst_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Cost            decimal.Decimal `json:"cost"`
	SOH             int             `json:"soh"`
	Category        string          `json:"category"`
	SubCategory     string          `json:"sub_category"`
	Brand           string          `json:"brand"`
	ExpiryDate      string          `json:"expiry_date"`
	VendorName      string          `json:"vendor_name"`
	VendorGST       string          `json:"vendor_gst"`
}

// ToItemResponse mapea la entidad al DTO de salida.
func ToItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		Code:            it.Code,
		Name:            it.Name,
		Rate:            it.Rate,
		GSTPercent:      it.GSTPercent,
		DiscountPercent: it.DiscountPercent,
		Cost:            it.Cost,
		SOH:             it.SOH,
		Category:        it.Category,
		SubCategory:     it.SubCategory,
		Brand:           it.Brand,
		ExpiryDate:      it.ExpiryDate,
		VendorName:      it.VendorName,
		VendorGST:       it.VendorGST,
	}
}

// AdjustSOHRequest ajuste de stock de un ítem (delta con signo).
type AdjustSOHRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// SOHResponse stock resultante tras un ajuste.
type SOHResponse struct {
	Code int `json:"code"`
	SOH  int `json:"soh"`
}
