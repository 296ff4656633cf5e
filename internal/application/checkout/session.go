// Package checkout implementa el flujo de caja: carrito, cierre de venta
// (número de factura, persistencia, stock) y render del documento.
package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/pricing"
)

// Session es el carrito de una venta en curso: líneas ya valorizadas.
// Es un valor en memoria, sin identidad; el número de factura se asigna
// recién al cerrar.
type Session struct {
	lines []entity.LineItem
}

// Add valoriza qty unidades del ítem y agrega la línea al carrito. Los datos
// del catálogo se copian a la línea: ediciones posteriores del ítem no la tocan.
func (s *Session) Add(it *entity.Item, qty int) (*entity.LineItem, error) {
	calc, err := pricing.ComputeLine(it.Rate, qty, it.GSTPercent, it.DiscountPercent, it.Cost)
	if err != nil {
		return nil, err
	}

	line := entity.LineItem{
		ItemCode:        it.Code,
		ItemName:        it.Name,
		Qty:             qty,
		Rate:            it.Rate,
		GSTPercent:      it.GSTPercent,
		GSTAmount:       calc.TaxAmount,
		DiscountPercent: it.DiscountPercent,
		DiscountAmount:  calc.DiscountAmount,
		GrossAmount:     calc.GrossAmount,
		NetAmount:       calc.NetAmount,
		Cost:            calc.ExtendedCost,
		Category:        it.Category,
		SubCategory:     it.SubCategory,
		Brand:           it.Brand,
		ExpiryDate:      it.ExpiryDate,
		StoreCode:       it.StoreCode,
		StoreName:       it.StoreName,
		VendorName:      it.VendorName,
		VendorGST:       it.VendorGST,
	}
	s.lines = append(s.lines, line)
	return &line, nil
}

// Lines devuelve las líneas en orden de ingreso.
func (s *Session) Lines() []entity.LineItem { return s.lines }

// Empty reporta si el carrito no tiene líneas.
func (s *Session) Empty() bool { return len(s.lines) == 0 }

// Clear vacía el carrito.
func (s *Session) Clear() { s.lines = nil }

// TotalQty suma las cantidades de todas las líneas.
func (s *Session) TotalQty() int {
	n := 0
	for i := range s.lines {
		n += s.lines[i].Qty
	}
	return n
}

// Totals calcula el resumen de la venta contra el monto entregado.
// Falla con ErrEmptyCart si no hay líneas y con ErrInsufficientTender si el
// entregado no cubre el total.
func (s *Session) Totals(tender decimal.Decimal) (*entity.Totals, error) {
	if s.Empty() {
		return nil, domain.ErrEmptyCart
	}

	subtotal, discount, total := decimal.Zero, decimal.Zero, decimal.Zero
	for i := range s.lines {
		subtotal = subtotal.Add(s.lines[i].GrossAmount)
		discount = discount.Add(s.lines[i].DiscountAmount)
		total = total.Add(s.lines[i].NetAmount)
	}
	if tender.LessThan(total) {
		return nil, fmt.Errorf("%w: entregado %s, total %s",
			domain.ErrInsufficientTender, tender.StringFixed(2), total.StringFixed(2))
	}

	return &entity.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Tender:   tender,
		Change:   tender.Sub(total),
	}, nil
}
