package checkout_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/checkout"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items      map[int]*entity.Item
	adjusted   map[int]int // code -> delta acumulado
	failAdjust map[int]bool
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{
		items:      map[int]*entity.Item{},
		adjusted:   map[int]int{},
		failAdjust: map[int]bool{},
	}
	for _, it := range items {
		r.items[it.Code] = it
	}
	return r
}

func (r *fakeItemRepo) Create(it *entity.Item) error { r.items[it.Code] = it; return nil }
func (r *fakeItemRepo) GetByCode(code int) (*entity.Item, error) {
	it, ok := r.items[code]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return it, nil
}
func (r *fakeItemRepo) FindByCodeOrName(q string, limit int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Update(it *entity.Item) error                   { return nil }
func (r *fakeItemRepo) Delete(code int) error                          { return nil }
func (r *fakeItemRepo) AdjustSOH(code, delta int) (int, error) {
	if r.failAdjust[code] {
		return 0, errors.New("deadlock simulado")
	}
	r.adjusted[code] += delta
	it, ok := r.items[code]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	it.SOH += delta
	return it.SOH, nil
}

type fakeBillRepo struct {
	next      int
	bills     map[string]*entity.Bill
	lines     map[string]int
	customers map[string]string
	failNext  bool
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{
		next:      1,
		bills:     map[string]*entity.Bill{},
		lines:     map[string]int{},
		customers: map[string]string{},
	}
}

func (r *fakeBillRepo) NextBillNumber() (int, error) {
	if r.failNext {
		return 0, errors.New("secuencia caída")
	}
	n := r.next
	r.next++
	return n, nil
}
func (r *fakeBillRepo) Create(b *entity.Bill) error { r.bills[b.BillNo] = b; return nil }
func (r *fakeBillRepo) CreateLine(billNo string, ln *entity.LineItem) error {
	r.lines[billNo]++
	return nil
}
func (r *fakeBillRepo) GetByNumber(billNo string) (*entity.Bill, error) {
	b, ok := r.bills[billNo]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
func (r *fakeBillRepo) ListRecent(limit int) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		out = append(out, b)
	}
	return out, nil
}
func (r *fakeBillRepo) ListByDate(date string) ([]*entity.Bill, error) { return nil, nil }
func (r *fakeBillRepo) FindCustomerByMobile(mobile string) (string, error) {
	return r.customers[mobile], nil
}

// fakeTxRunner pasa los mismos fakes a fn; si fn falla, descarta lo escrito
// simulando el rollback.
type fakeTxRunner struct {
	billRepo *fakeBillRepo
	itemRepo *fakeItemRepo
}

func (t *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
) error) error {
	existing := map[string]bool{}
	for no := range t.billRepo.bills {
		existing[no] = true
	}
	sohBefore := map[int]int{}
	for code, it := range t.itemRepo.items {
		sohBefore[code] = it.SOH
	}
	if err := fn(t.billRepo, t.itemRepo); err != nil {
		// rollback
		for no := range t.billRepo.bills {
			if !existing[no] {
				delete(t.billRepo.bills, no)
				delete(t.billRepo.lines, no)
			}
		}
		for code, soh := range sohBefore {
			t.itemRepo.items[code].SOH = soh
		}
		return err
	}
	return nil
}

type fakeRenderer struct {
	fail bool
}

func (f *fakeRenderer) Render(b *entity.Bill) (*entity.RenderedInvoice, error) {
	if f.fail {
		return nil, domain.ErrRenderFailed
	}
	return &entity.RenderedInvoice{
		Bytes:       []byte("%PDF-1.4 fake"),
		ContentType: entity.ContentTypePDF,
		Filename:    b.BillNo + ".pdf",
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func catalogItem(code int, rate, gst, disc string, soh int) *entity.Item {
	return &entity.Item{
		Code:            code,
		Name:            "Item " + strconv.Itoa(code),
		Rate:            dec(rate),
		GSTPercent:      dec(gst),
		DiscountPercent: dec(disc),
		Cost:            dec("1"),
		SOH:             soh,
	}
}

type fixture struct {
	uc       *checkout.UseCase
	itemRepo *fakeItemRepo
	billRepo *fakeBillRepo
	renderer *fakeRenderer
}

func newFixture(atomic bool, items ...*entity.Item) *fixture {
	itemRepo := newFakeItemRepo(items...)
	billRepo := newFakeBillRepo()
	renderer := &fakeRenderer{}
	uc := checkout.NewUseCase(
		&fakeTxRunner{billRepo: billRepo, itemRepo: itemRepo},
		itemRepo,
		billRepo,
		renderer,
		checkout.Options{AtomicStock: atomic, Timezone: time.UTC},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	return &fixture{uc: uc, itemRepo: itemRepo, billRepo: billRepo, renderer: renderer}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCheckout_VentaCompleta(t *testing.T) {
	f := newFixture(true,
		catalogItem(1001, "100", "5", "10", 50),
		catalogItem(1002, "33.33", "0", "0", 10),
	)

	resp, doc, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items: []dto.AddItemRequest{
			{ItemCode: 1001, Qty: 3},
			{ItemCode: 1002, Qty: 1},
		},
		CustomerName: "Pema",
		Tender:       dec("400"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1", resp.BillNo, "la primera factura lleva el número 1")
	assert.Len(t, resp.Items, 2)

	// Línea 1: 100*3=300, desc 10% = 30, bruto 270, GST 5% = 13.5, neto 256.5.
	// Línea 2: 33.33 sin impuestos ni descuento.
	assert.True(t, resp.Total.Equal(dec("289.83")), "total = 256.5 + 33.33, got %s", resp.Total)
	assert.True(t, resp.Change.Equal(dec("110.17")))
	assert.Empty(t, resp.Warnings)

	// Persistencia y stock.
	assert.Equal(t, 2, f.billRepo.lines["1"], "todas las líneas persistidas")
	assert.Equal(t, 47, f.itemRepo.items[1001].SOH)
	assert.Equal(t, 9, f.itemRepo.items[1002].SOH)

	require.NotNil(t, doc)
	assert.True(t, doc.IsPDF())
	assert.Equal(t, "1.pdf", doc.Filename)
}

func TestCheckout_NumeracionConsecutiva(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "10", "0", "0", 100))

	for want := 1; want <= 3; want++ {
		resp, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
			Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 1}},
			Tender: dec("10"),
		})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(want), resp.BillNo)
	}
}

func TestCheckout_CarritoVacio(t *testing.T) {
	f := newFixture(true)
	_, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_EntregadoInsuficiente(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "100", "0", "0", 5))

	_, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 2}},
		Tender: dec("199.99"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientTender)
	assert.Empty(t, f.billRepo.bills, "nada debe persistirse")
}

func TestCheckout_ItemInexistente(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "100", "0", "0", 5))

	_, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 9999, Qty: 1}},
		Tender: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCheckout_StockAtomicoDeshaceLaVenta(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "10", "0", "0", 5))
	f.itemRepo.failAdjust[1001] = true

	_, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 1}},
		Tender: dec("10"),
	})
	require.Error(t, err)
	assert.Empty(t, f.billRepo.bills, "en modo atómico el fallo de stock deshace la factura")
}

func TestCheckout_StockNoAtomicoSoloAvisa(t *testing.T) {
	f := newFixture(false, catalogItem(1001, "10", "0", "0", 5))
	f.itemRepo.failAdjust[1001] = true

	resp, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 1}},
		Tender: dec("10"),
	})
	require.NoError(t, err, "la venta queda firme aunque el stock no baje")
	assert.Len(t, f.billRepo.bills, 1)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "1001")
}

func TestCheckout_SobreventaDejaStockNegativo(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "10", "0", "0", 2))

	_, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 5}},
		Tender: dec("50"),
	})
	require.NoError(t, err, "la caja nunca bloquea por stock")
	assert.Equal(t, -3, f.itemRepo.items[1001].SOH)
}

func TestCheckout_RenderCaidoNoRompeLaVenta(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "10", "0", "0", 5))
	f.renderer.fail = true

	resp, doc, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 1}},
		Tender: dec("10"),
	})
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Len(t, f.billRepo.bills, 1, "la factura queda persistida")
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "documento no generado")
}

func TestPriceItem(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "100", "5", "10", 50))

	line, err := f.uc.PriceItem(context.Background(), 1001, 3)
	require.NoError(t, err)
	assert.True(t, line.NetAmount.Equal(dec("256.5")))
	assert.True(t, line.GSTAmount.Equal(dec("13.5")))
	assert.True(t, line.DiscountAmount.Equal(dec("30")))
}

func TestPriceItem_CantidadInvalida(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "100", "0", "0", 50))
	_, err := f.uc.PriceItem(context.Background(), 1001, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookupCustomer(t *testing.T) {
	f := newFixture(true)
	f.billRepo.customers["9832000000"] = "Pema Sherpa"

	got, err := f.uc.LookupCustomer(context.Background(), "9832000000")
	require.NoError(t, err)
	assert.Equal(t, "Pema Sherpa", got.Name)

	nuevo, err := f.uc.LookupCustomer(context.Background(), "7000000000")
	require.NoError(t, err)
	assert.Empty(t, nuevo.Name, "cliente nuevo devuelve nombre vacío")

	_, err = f.uc.LookupCustomer(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocument_Reimpresion(t *testing.T) {
	f := newFixture(true, catalogItem(1001, "10", "0", "0", 5))

	resp, _, err := f.uc.Checkout(context.Background(), "cashier", dto.CheckoutRequest{
		Items:  []dto.AddItemRequest{{ItemCode: 1001, Qty: 1}},
		Tender: dec("10"),
	})
	require.NoError(t, err)

	doc, err := f.uc.Document(context.Background(), resp.BillNo)
	require.NoError(t, err)
	assert.Equal(t, resp.BillNo+".pdf", doc.Filename)

	_, err = f.uc.Document(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
