package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

// Options política del cierre de venta.
type Options struct {
	// AtomicStock: true descuenta stock dentro de la transacción (un fallo
	// deshace la venta completa); false lo descuenta después del commit,
	// ítem por ítem, acumulando avisos sin tocar la factura.
	AtomicStock bool
	// Timezone de la tienda para fechar la factura (ej. Asia/Kolkata).
	Timezone *time.Location
}

// UseCase orquesta el cierre de una venta: número de factura, persistencia de
// cabecera y líneas, descuento de stock y render del documento.
type UseCase struct {
	txRunner CheckoutTxRunner
	itemRepo repository.ItemRepository
	billRepo repository.BillRepository
	renderer InvoiceRenderer
	opts     Options
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner CheckoutTxRunner,
	itemRepo repository.ItemRepository,
	billRepo repository.BillRepository,
	renderer InvoiceRenderer,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	return &UseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		billRepo: billRepo,
		renderer: renderer,
		opts:     opts,
		log:      log,
	}
}

// PriceItem valoriza qty unidades de un ítem del catálogo sin tocar ninguna
// venta: es la vista previa de línea que usa la caja al escanear.
func (uc *UseCase) PriceItem(ctx context.Context, code, qty int) (*dto.LineItemResponse, error) {
	it, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}

	var s Session
	line, err := s.Add(it, qty)
	if err != nil {
		return nil, err
	}
	resp := toLineResponse(line)
	return &resp, nil
}

// Checkout cierra la venta: recalcula cada línea contra el catálogo, valida el
// entregado, asigna número de factura y persiste todo en una transacción.
// El render del documento ocurre después del commit; sus fallos (y los de
// stock en modo no atómico) se devuelven como avisos, nunca como error.
func (uc *UseCase) Checkout(
	ctx context.Context,
	cashier string,
	in dto.CheckoutRequest,
) (*dto.BillResponse, *entity.RenderedInvoice, error) {
	if len(in.Items) == 0 {
		return nil, nil, domain.ErrEmptyCart
	}

	var session Session
	for _, reqItem := range in.Items {
		it, err := uc.itemRepo.GetByCode(reqItem.ItemCode)
		if err != nil {
			return nil, nil, err
		}
		if _, err := session.Add(it, reqItem.Qty); err != nil {
			return nil, nil, err
		}
	}

	totals, err := session.Totals(in.Tender)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().In(uc.opts.Timezone)
	bill := &entity.Bill{
		Date:           now.Format("02/01/2006"),
		Time:           now.Format("15:04:05"),
		CustomerName:   in.CustomerName,
		CustomerMobile: in.CustomerMobile,
		PaymentMode:    paymentModeOrDefault(in.PaymentMode),
		Cashier:        cashier,
		Items:          session.Lines(),
		Totals:         *totals,
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		billRepo repository.BillRepository,
		itemRepo repository.ItemRepository,
	) error {
		n, err := billRepo.NextBillNumber()
		if err != nil {
			return fmt.Errorf("checkout: numerar factura: %w", err)
		}
		bill.BillNo = strconv.Itoa(n)

		if err := billRepo.Create(bill); err != nil {
			return fmt.Errorf("checkout: guardar cabecera: %w", err)
		}
		for i := range bill.Items {
			if err := billRepo.CreateLine(bill.BillNo, &bill.Items[i]); err != nil {
				return fmt.Errorf("checkout: guardar línea %d: %w", i, err)
			}
		}

		if uc.opts.AtomicStock {
			for i := range bill.Items {
				ln := &bill.Items[i]
				if _, err := itemRepo.AdjustSOH(ln.ItemCode, -ln.Qty); err != nil {
					return fmt.Errorf("checkout: stock del ítem %d: %w", ln.ItemCode, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp := toBillResponse(bill)

	if !uc.opts.AtomicStock {
		for i := range bill.Items {
			ln := &bill.Items[i]
			if _, err := uc.itemRepo.AdjustSOH(ln.ItemCode, -ln.Qty); err != nil {
				uc.log.Warn().Err(err).
					Str("bill_no", bill.BillNo).
					Int("item_code", ln.ItemCode).
					Msg("stock no descontado tras el cierre")
				resp.Warnings = append(resp.Warnings,
					fmt.Sprintf("stock no descontado para el ítem %d", ln.ItemCode))
			}
		}
	}

	doc, err := uc.renderer.Render(bill)
	if err != nil {
		uc.log.Error().Err(err).Str("bill_no", bill.BillNo).
			Msg("render del documento caído; la venta queda firme")
		resp.Warnings = append(resp.Warnings, "documento no generado: "+err.Error())
		doc = nil
	}

	return resp, doc, nil
}

// Document vuelve a generar el documento de una factura ya emitida.
func (uc *UseCase) Document(ctx context.Context, billNo string) (*entity.RenderedInvoice, error) {
	bill, err := uc.billRepo.GetByNumber(billNo)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Render(bill)
}

// GetBill devuelve una factura emitida.
func (uc *UseCase) GetBill(ctx context.Context, billNo string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByNumber(billNo)
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// ListRecent devuelve las últimas facturas emitidas.
func (uc *UseCase) ListRecent(ctx context.Context, limit int) ([]*dto.BillResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	bills, err := uc.billRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// LookupCustomer autocompleta el nombre del cliente por su móvil.
func (uc *UseCase) LookupCustomer(ctx context.Context, mobile string) (*dto.CustomerLookupResponse, error) {
	if mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	name, err := uc.billRepo.FindCustomerByMobile(mobile)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerLookupResponse{Mobile: mobile, Name: name}, nil
}

func paymentModeOrDefault(mode string) string {
	if mode == "" {
		return "CASH"
	}
	return mode
}

func toLineResponse(ln *entity.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ItemCode:       ln.ItemCode,
		ItemName:       ln.ItemName,
		Qty:            ln.Qty,
		Rate:           ln.Rate,
		DiscountAmount: ln.DiscountAmount,
		GSTAmount:      ln.GSTAmount,
		NetAmount:      ln.NetAmount,
	}
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	resp := &dto.BillResponse{
		BillNo:         b.BillNo,
		Date:           b.Date,
		Time:           b.Time,
		CustomerName:   b.CustomerName,
		CustomerMobile: b.CustomerMobile,
		PaymentMode:    b.PaymentMode,
		Cashier:        b.Cashier,
		Subtotal:       b.Totals.Subtotal,
		Discount:       b.Totals.Discount,
		Total:          b.Totals.Total,
		Tender:         b.Totals.Tender,
		Change:         b.Totals.Change,
	}
	for i := range b.Items {
		resp.Items = append(resp.Items, toLineResponse(&b.Items[i]))
	}
	return resp
}
