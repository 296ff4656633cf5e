package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia del manual de caja:
//
//	rate=100, qty=3, descuento=10%, GST=5%
//	lineTotal=300, discountAmount=30, gross=270, tax=13.5, net=256.5
//
// Si alguien cambia el orden de las operaciones, este test falla primero.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeLine_VectorReferencia(t *testing.T) {
	line, err := pricing.ComputeLine(d("100"), 3, d("5"), d("10"), d("90"))
	require.NoError(t, err)

	assert.True(t, d("300").Equal(line.LineTotal), "lineTotal: %s", line.LineTotal)
	assert.True(t, d("30").Equal(line.DiscountAmount), "discountAmount: %s", line.DiscountAmount)
	assert.True(t, d("270").Equal(line.GrossAmount), "grossAmount: %s", line.GrossAmount)
	assert.True(t, d("13.5").Equal(line.TaxAmount), "taxAmount: %s", line.TaxAmount)
	assert.True(t, d("256.5").Equal(line.NetAmount), "netAmount: %s", line.NetAmount)
	assert.True(t, d("270").Equal(line.ExtendedCost), "extendedCost: %s", line.ExtendedCost)
}

// TestComputeLine_FormulaCerrada verifica net = r*q*(1-d/100)*(1-t/100) con
// tolerancia de 0.01 sobre una malla de valores representativos.
func TestComputeLine_FormulaCerrada(t *testing.T) {
	rates := []string{"0", "0.99", "10", "149.50", "999.99"}
	qtys := []int{1, 2, 7, 60}
	percents := []string{"0", "2.5", "10", "18", "100"}
	tolerance := d("0.01")

	for _, r := range rates {
		for _, q := range qtys {
			for _, disc := range percents {
				for _, tax := range percents {
					line, err := pricing.ComputeLine(d(r), q, d(tax), d(disc), decimal.Zero)
					require.NoError(t, err)

					expected := d(r).
						Mul(decimal.NewFromInt(int64(q))).
						Mul(decimal.NewFromInt(1).Sub(d(disc).Div(d("100")))).
						Mul(decimal.NewFromInt(1).Sub(d(tax).Div(d("100"))))
					diff := line.NetAmount.Sub(expected).Abs()
					assert.True(t, diff.LessThanOrEqual(tolerance),
						"rate=%s qty=%d disc=%s tax=%s: net=%s esperado=%s", r, q, disc, tax, line.NetAmount, expected)
				}
			}
		}
	}
}

// TestComputeLine_SinRedondeoIntermedio: los montos intermedios conservan toda
// la precisión; solo la presentación redondea a 2 decimales.
func TestComputeLine_SinRedondeoIntermedio(t *testing.T) {
	line, err := pricing.ComputeLine(d("33.33"), 3, d("7"), d("3"), decimal.Zero)
	require.NoError(t, err)

	// 99.99 * 0.03 = 2.9997 — un cálculo que redondeara por paso daría 3.00
	assert.True(t, d("2.9997").Equal(line.DiscountAmount),
		"discountAmount debe conservarse sin redondear: %s", line.DiscountAmount)
	assert.Equal(t, "2.9997", line.DiscountAmount.String())
	assert.Equal(t, "3.00", line.DiscountAmount.StringFixed(2))
}

// ── Errores de validación ─────────────────────────────────────────────────────

func TestComputeLine_RechazaCantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -50} {
		_, err := pricing.ComputeLine(d("10"), qty, decimal.Zero, decimal.Zero, decimal.Zero)
		require.Error(t, err, "qty=%d debe rechazarse", qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestComputeLine_RechazaPrecioNegativo(t *testing.T) {
	_, err := pricing.ComputeLine(d("-1"), 1, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeLine_RechazaPorcentajesFueraDeRango(t *testing.T) {
	cases := []struct {
		name     string
		gst, dis string
	}{
		{"gst negativo", "-5", "0"},
		{"gst mayor a 100", "101", "0"},
		{"descuento negativo", "0", "-1"},
		{"descuento mayor a 100", "0", "100.01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.ComputeLine(d("10"), 1, d(tc.gst), d(tc.dis), decimal.Zero)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestComputeLine_DescuentoTotalDejaLineaEnCero(t *testing.T) {
	line, err := pricing.ComputeLine(d("250"), 4, d("18"), d("100"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, line.GrossAmount.IsZero())
	assert.True(t, line.NetAmount.IsZero())
	assert.True(t, d("1000").Equal(line.DiscountAmount))
}
