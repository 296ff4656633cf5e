package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación del puerto BillRepository sobre PostgreSQL (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador de persistencia para facturas. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// NextBillNumber devuelve MAX+1. Llamar dentro de la transacción del cierre;
// el unique de bill_no hace fallar (y reintentar) la caja que llegue tarde.
func (r *BillRepo) NextBillNumber() (int, error) {
	var next int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(bill_no::int), 0) + 1 FROM bills`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next bill number: %w", err)
	}
	return next, nil
}

// Create persiste la cabecera de la factura.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bills (bill_no, date, time, customer_name, customer_mobile,
			payment_mode, cashier, subtotal, discount, total, tender, change)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		bill.BillNo, bill.Date, bill.Time, bill.CustomerName, bill.CustomerMobile,
		bill.PaymentMode, bill.Cashier, bill.Totals.Subtotal, bill.Totals.Discount,
		bill.Totals.Total, bill.Totals.Tender, bill.Totals.Change,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la factura con la copia completa de los
// datos del catálogo al momento de la venta.
func (r *BillRepo) CreateLine(billNo string, ln *entity.LineItem) error {
	query := `
		INSERT INTO bill_lines (bill_no, item_code, item_name, qty, rate,
			gst_percent, gst_amount, discount_percent, discount_amount,
			gross_amount, net_amount, cost, category, sub_category, brand,
			expiry_date, store_code, store_name, vendor_name, vendor_gst)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		billNo, ln.ItemCode, ln.ItemName, ln.Qty, ln.Rate,
		ln.GSTPercent, ln.GSTAmount, ln.DiscountPercent, ln.DiscountAmount,
		ln.GrossAmount, ln.NetAmount, ln.Cost, ln.Category, ln.SubCategory,
		ln.Brand, ln.ExpiryDate, ln.StoreCode, ln.StoreName, ln.VendorName, ln.VendorGST,
	)
	if err != nil {
		return fmt.Errorf("insert bill line: %w", err)
	}
	return nil
}

// GetByNumber devuelve la factura completa: cabecera + líneas en orden de venta.
func (r *BillRepo) GetByNumber(billNo string) (*entity.Bill, error) {
	bill, err := r.scanBillHeader(billNo)
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListRecent devuelve las últimas facturas (solo cabeceras) más recientes primero.
func (r *BillRepo) ListRecent(limit int) ([]*entity.Bill, error) {
	query := billHeaderSelect + ` ORDER BY bill_no::int DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	return collectBillHeaders(rows)
}

// ListByDate devuelve las facturas de un día, con líneas, en orden de emisión.
func (r *BillRepo) ListByDate(date string) ([]*entity.Bill, error) {
	query := billHeaderSelect + ` WHERE date = $1 ORDER BY bill_no::int`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list bills by date: %w", err)
	}
	defer rows.Close()
	bills, err := collectBillHeaders(rows)
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		if err := r.loadLines(b); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// FindCustomerByMobile devuelve el nombre de la venta más reciente con ese
// móvil, o vacío si nunca compró.
func (r *BillRepo) FindCustomerByMobile(mobile string) (string, error) {
	var name string
	err := r.q.QueryRow(context.Background(),
		`SELECT customer_name FROM bills
		 WHERE customer_mobile = $1 AND customer_name <> ''
		 ORDER BY bill_no::int DESC LIMIT 1`,
		mobile,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find customer: %w", err)
	}
	return name, nil
}

const billHeaderSelect = `
	SELECT bill_no, date, time, customer_name, customer_mobile, payment_mode,
		cashier, subtotal, discount, total, tender, change
	FROM bills`

func (r *BillRepo) scanBillHeader(billNo string) (*entity.Bill, error) {
	var b entity.Bill
	err := r.q.QueryRow(context.Background(), billHeaderSelect+` WHERE bill_no = $1`, billNo).Scan(
		&b.BillNo, &b.Date, &b.Time, &b.CustomerName, &b.CustomerMobile,
		&b.PaymentMode, &b.Cashier, &b.Totals.Subtotal, &b.Totals.Discount,
		&b.Totals.Total, &b.Totals.Tender, &b.Totals.Change,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

func (r *BillRepo) loadLines(bill *entity.Bill) error {
	query := `
		SELECT item_code, item_name, qty, rate, gst_percent, gst_amount,
			discount_percent, discount_amount, gross_amount, net_amount, cost,
			category, sub_category, brand, expiry_date, store_code, store_name,
			vendor_name, vendor_gst
		FROM bill_lines WHERE bill_no = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, bill.BillNo)
	if err != nil {
		return fmt.Errorf("load bill lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ln entity.LineItem
		err := rows.Scan(
			&ln.ItemCode, &ln.ItemName, &ln.Qty, &ln.Rate, &ln.GSTPercent,
			&ln.GSTAmount, &ln.DiscountPercent, &ln.DiscountAmount,
			&ln.GrossAmount, &ln.NetAmount, &ln.Cost, &ln.Category,
			&ln.SubCategory, &ln.Brand, &ln.ExpiryDate, &ln.StoreCode,
			&ln.StoreName, &ln.VendorName, &ln.VendorGST,
		)
		if err != nil {
			return fmt.Errorf("scan bill line: %w", err)
		}
		bill.Items = append(bill.Items, ln)
	}
	return rows.Err()
}

func collectBillHeaders(rows pgx.Rows) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		err := rows.Scan(
			&b.BillNo, &b.Date, &b.Time, &b.CustomerName, &b.CustomerMobile,
			&b.PaymentMode, &b.Cashier, &b.Totals.Subtotal, &b.Totals.Discount,
			&b.Totals.Total, &b.Totals.Tender, &b.Totals.Change,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
