package document

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func sampleBill() *entity.Bill {
	return &entity.Bill{
		BillNo:         "42",
		Date:           "15/08/2026",
		Time:           "18:42:10",
		CustomerName:   "Pema Sherpa",
		CustomerMobile: "9832000000",
		PaymentMode:    "CASH",
		Cashier:        "cashier",
		Items: []entity.LineItem{
			{
				ItemName:    "Arroz 5kg",
				Qty:         2,
				Rate:        decimal.NewFromInt(450),
				GrossAmount: decimal.NewFromInt(900),
				NetAmount:   decimal.NewFromInt(900),
			},
			{
				ItemName:    "Té Darjeeling 250g",
				Qty:         1,
				Rate:        decimal.RequireFromString("120.50"),
				GrossAmount: decimal.RequireFromString("120.50"),
				NetAmount:   decimal.RequireFromString("120.50"),
			},
		},
		Totals: entity.Totals{
			Subtotal: decimal.RequireFromString("1020.50"),
			Discount: decimal.Zero,
			Total:    decimal.RequireFromString("1020.50"),
			Tender:   decimal.NewFromInt(1100),
			Change:   decimal.RequireFromString("79.50"),
		},
	}
}

func TestRender_PDF(t *testing.T) {
	r := NewRenderer(Config{
		Backend:     "pdf",
		StoreName:   "Alam Megastore",
		AddressLine: "Relling Bihibaray | Dist-Darjeeling",
		BankDetails: "Bank Details: ABC Bank",
	}, testLogger())

	doc, err := r.Render(sampleBill())
	require.NoError(t, err)
	assert.True(t, doc.IsPDF(), "los bytes deben llevar la firma %%PDF")
	assert.Equal(t, entity.ContentTypePDF, doc.ContentType)
	assert.Equal(t, "42.pdf", doc.Filename)
}

func TestRender_BackendTextoForzado(t *testing.T) {
	r := NewRenderer(Config{
		Backend:     "text",
		StoreName:   "Alam Megastore",
		AddressLine: "Relling Bihibaray",
	}, testLogger())

	doc, err := r.Render(sampleBill())
	require.NoError(t, err)
	assert.False(t, doc.IsPDF())
	assert.Equal(t, entity.ContentTypeText, doc.ContentType)
	assert.Equal(t, "42.txt", doc.Filename)

	text := string(doc.Bytes)
	assert.Contains(t, text, "Bill No: 42")

	// Una línea por ítem con forma name\tqty\trate\tamount.
	var itemLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Count(line, "\t") == 3 {
			itemLines = append(itemLines, line)
		}
	}
	require.Len(t, itemLines, 2)
	fields := strings.Split(itemLines[0], "\t")
	assert.Equal(t, "Arroz 5kg", fields[0])
	assert.Equal(t, "2", fields[1])
	assert.Equal(t, "Rs.450.00", fields[2])
	assert.Equal(t, "Rs.900.00", fields[3])

	assert.Contains(t, text, "Total: Rs.1020.50")
	assert.Contains(t, text, "Change: Rs.79.50")
}

func TestRender_FacturaInvalida(t *testing.T) {
	r := NewRenderer(Config{Backend: "text"}, testLogger())

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bill := sampleBill()
	bill.BillNo = ""
	_, err = r.Render(bill)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRender_SinItems(t *testing.T) {
	r := NewRenderer(Config{Backend: "pdf", StoreName: "Alam Megastore"}, testLogger())

	bill := sampleBill()
	bill.Items = nil
	bill.Totals = entity.Totals{
		Subtotal: decimal.Zero, Discount: decimal.Zero,
		Total: decimal.Zero, Tender: decimal.Zero, Change: decimal.Zero,
	}

	doc, err := r.Render(bill)
	require.NoError(t, err, "una factura sin líneas renderiza tabla vacía, no error")
	assert.True(t, doc.IsPDF())
}

func TestResolveFont_PreferenciaConfigurada(t *testing.T) {
	// Una ruta configurada inexistente cae a las candidatas del sistema;
	// si tampoco hay, devuelve vacío (modo ASCII).
	got := resolveFont("/no/existe/fuente.ttf")
	for _, candidate := range fontCandidates {
		if got == candidate {
			return
		}
	}
	assert.Empty(t, got)
}
