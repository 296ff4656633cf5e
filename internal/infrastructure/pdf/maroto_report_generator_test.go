package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount_AgrupacionIndia(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"999":      "999.00",
		"1000":     "1,000.00",
		"123456.7": "1,23,456.70",
		"10000000": "1,00,00,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestPaymentBreakdown_OrdenEstable(t *testing.T) {
	got := paymentBreakdown(map[string]decimal.Decimal{
		"UPI":  decimal.RequireFromString("120"),
		"CASH": decimal.RequireFromString("296.5"),
	})
	assert.Equal(t, "Por pago: CASH Rs.296.50   |   UPI Rs.120.00", got)

	assert.Equal(t, "Por pago: —", paymentBreakdown(nil), "día sin ventas")
}
