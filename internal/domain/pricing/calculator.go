// Package pricing implementa la aritmética de una línea de venta (servicio de
// dominio, puro). El orden de las operaciones es contractual: cambiarlo cambia
// el redondeo acumulado de facturas históricas.
//
//	lineTotal      = rate * qty
//	discountAmount = lineTotal * discount% / 100
//	grossAmount    = lineTotal - discountAmount
//	taxAmount      = grossAmount * gst% / 100
//	netAmount      = grossAmount - taxAmount      (precio de lista con GST incluido)
//	extendedCost   = unitCost * qty
//
// Ningún paso intermedio se redondea; StringFixed(2) se aplica solo al
// presentar los valores.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Line es el resultado de valorizar una línea: todos los montos sin redondear.
type Line struct {
	LineTotal      decimal.Decimal
	DiscountAmount decimal.Decimal
	GrossAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	NetAmount      decimal.Decimal
	ExtendedCost   decimal.Decimal
}

// ComputeLine valoriza qty unidades de un artículo. La superficie de entrada
// (UI/API) ya restringe qty >= 1; aquí se rechaza igualmente para que un
// caller defectuoso nunca produzca una línea negativa.
func ComputeLine(rate decimal.Decimal, qty int, gstPercent, discountPercent, unitCost decimal.Decimal) (*Line, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser >= 1, recibido %d", domain.ErrInvalidInput, qty)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo %s", domain.ErrInvalidInput, rate)
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("%w: costo negativo %s", domain.ErrInvalidInput, unitCost)
	}
	if !validPercent(gstPercent) {
		return nil, fmt.Errorf("%w: GST%% fuera de [0,100]: %s", domain.ErrInvalidInput, gstPercent)
	}
	if !validPercent(discountPercent) {
		return nil, fmt.Errorf("%w: descuento%% fuera de [0,100]: %s", domain.ErrInvalidInput, discountPercent)
	}

	qtyDec := decimal.NewFromInt(int64(qty))
	lineTotal := rate.Mul(qtyDec)
	discountAmount := lineTotal.Mul(discountPercent).Div(hundred)
	gross := lineTotal.Sub(discountAmount)
	tax := gross.Mul(gstPercent).Div(hundred)
	net := gross.Sub(tax)

	return &Line{
		LineTotal:      lineTotal,
		DiscountAmount: discountAmount,
		GrossAmount:    gross,
		TaxAmount:      tax,
		NetAmount:      net,
		ExtendedCost:   unitCost.Mul(qtyDec),
	}, nil
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
