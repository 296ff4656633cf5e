package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

type fakeBillRepo struct {
	byDate map[string][]*entity.Bill
}

func (r *fakeBillRepo) NextBillNumber() (int, error)                      { return 0, nil }
func (r *fakeBillRepo) Create(b *entity.Bill) error                       { return nil }
func (r *fakeBillRepo) CreateLine(string, *entity.LineItem) error         { return nil }
func (r *fakeBillRepo) GetByNumber(string) (*entity.Bill, error)          { return nil, domain.ErrNotFound }
func (r *fakeBillRepo) ListRecent(int) ([]*entity.Bill, error)            { return nil, nil }
func (r *fakeBillRepo) FindCustomerByMobile(string) (string, error)       { return "", nil }
func (r *fakeBillRepo) ListByDate(date string) ([]*entity.Bill, error) {
	return r.byDate[date], nil
}

type fakeGenerator struct {
	got *dto.DaySalesResponse
}

func (g *fakeGenerator) Generate(report *dto.DaySalesResponse) ([]byte, error) {
	g.got = report
	return []byte("%PDF-1.4 fake"), nil
}

func seedBill(no, time, mode string, total string, qtys ...int) *entity.Bill {
	b := &entity.Bill{
		BillNo:      no,
		Date:        "15/08/2026",
		Time:        time,
		PaymentMode: mode,
		Cashier:     "cashier",
		Totals:      entity.Totals{Total: decimal.RequireFromString(total)},
	}
	for _, q := range qtys {
		b.Items = append(b.Items, entity.LineItem{Qty: q})
	}
	return b
}

func TestDaySales_Agrega(t *testing.T) {
	repo := &fakeBillRepo{byDate: map[string][]*entity.Bill{
		"15/08/2026": {
			seedBill("1", "10:01:00", "CASH", "256.50", 3),
			seedBill("2", "12:30:00", "UPI", "120.00", 1, 2),
			seedBill("3", "18:45:00", "CASH", "40.00", 1),
		},
	}}
	uc := reports.NewUseCase(repo, &fakeGenerator{}, logger.New(logger.Config{Env: "production", Level: "error"}))

	got, err := uc.DaySales(context.Background(), "15/08/2026")
	require.NoError(t, err)
	assert.Equal(t, 3, got.BillCount)
	assert.Equal(t, 7, got.UnitsSold)
	assert.True(t, got.GrossTotal.Equal(decimal.RequireFromString("416.50")))
	require.Len(t, got.Rows, 3)
	assert.Equal(t, 3, got.Rows[0].Qty)

	assert.True(t, got.ByPaymentMode["CASH"].Equal(decimal.RequireFromString("296.50")),
		"el corte por modo de pago debe sumar ambas facturas en efectivo")
	assert.True(t, got.ByPaymentMode["UPI"].Equal(decimal.RequireFromString("120.00")))
}

func TestDaySales_DiaSinVentas(t *testing.T) {
	uc := reports.NewUseCase(&fakeBillRepo{byDate: map[string][]*entity.Bill{}},
		&fakeGenerator{}, logger.New(logger.Config{Env: "production", Level: "error"}))

	got, err := uc.DaySales(context.Background(), "01/01/2026")
	require.NoError(t, err, "un día sin ventas no es un error")
	assert.Zero(t, got.BillCount)
	assert.True(t, got.GrossTotal.IsZero())
	assert.Empty(t, got.Rows)
}

func TestDaySales_FechaMalformada(t *testing.T) {
	uc := reports.NewUseCase(&fakeBillRepo{}, &fakeGenerator{},
		logger.New(logger.Config{Env: "production", Level: "error"}))

	for _, bad := range []string{"2026-08-15", "15/8/2026", "", "ayer"} {
		_, err := uc.DaySales(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q", bad)
	}
}

func TestDaySalesPDF_Filename(t *testing.T) {
	gen := &fakeGenerator{}
	uc := reports.NewUseCase(&fakeBillRepo{byDate: map[string][]*entity.Bill{}},
		gen, logger.New(logger.Config{Env: "production", Level: "error"}))

	pdf, filename, err := uc.DaySalesPDF(context.Background(), "15/08/2026")
	require.NoError(t, err)
	assert.Equal(t, "sales_15-08-2026.pdf", filename)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.got)
	assert.Equal(t, "15/08/2026", gen.got.Date)
}
