package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `code, name, rate, gst_percent, discount_percent, soh, cost,
	category, sub_category, brand, expiry_date, store_code, store_name,
	vendor_name, vendor_gst, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem del catálogo.
func (r *ItemRepo) Create(item *entity.Item) error {
	now := time.Now()
	item.CreatedAt, item.UpdatedAt = now, now
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		item.Code, item.Name, item.Rate, item.GSTPercent, item.DiscountPercent,
		item.SOH, item.Cost, item.Category, item.SubCategory, item.Brand,
		item.ExpiryDate, item.StoreCode, item.StoreName, item.VendorName,
		item.VendorGST, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByCode obtiene un ítem por su código.
func (r *ItemRepo) GetByCode(code int) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE code = $1`
	it, err := scanItem(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// FindByCodeOrName busca por código exacto (si la consulta es numérica) o por
// nombre parcial case-insensitive.
func (r *ItemRepo) FindByCodeOrName(q string, limit int) ([]*entity.Item, error) {
	var rows pgx.Rows
	var err error
	if code, convErr := strconv.Atoi(q); convErr == nil {
		query := `SELECT ` + itemColumns + ` FROM items
			WHERE code = $1 OR name ILIKE '%' || $2 || '%'
			ORDER BY name LIMIT $3`
		rows, err = r.q.Query(context.Background(), query, code, q, limit)
	} else {
		query := `SELECT ` + itemColumns + ` FROM items
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY name LIMIT $2`
		rows, err = r.q.Query(context.Background(), query, q, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// List lista el catálogo ordenado por código.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// Update actualiza un ítem existente. El código no cambia.
func (r *ItemRepo) Update(item *entity.Item) error {
	item.UpdatedAt = time.Now()
	query := `
		UPDATE items SET name = $2, rate = $3, gst_percent = $4, discount_percent = $5,
			soh = $6, cost = $7, category = $8, sub_category = $9, brand = $10,
			expiry_date = $11, vendor_name = $12, vendor_gst = $13, updated_at = $14
		WHERE code = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.Code, item.Name, item.Rate, item.GSTPercent, item.DiscountPercent,
		item.SOH, item.Cost, item.Category, item.SubCategory, item.Brand,
		item.ExpiryDate, item.VendorName, item.VendorGST, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete elimina un ítem del catálogo.
func (r *ItemRepo) Delete(code int) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// AdjustSOH suma delta al stock (atómico en la fila) y devuelve el resultante.
// No hay CHECK de no-negatividad: la sobreventa deja SOH negativo a propósito.
func (r *ItemRepo) AdjustSOH(code, delta int) (int, error) {
	var soh int
	err := r.q.QueryRow(context.Background(),
		`UPDATE items SET soh = soh + $2, updated_at = now() WHERE code = $1 RETURNING soh`,
		code, delta,
	).Scan(&soh)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("adjust soh: %w", err)
	}
	return soh, nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.Code, &it.Name, &it.Rate, &it.GSTPercent, &it.DiscountPercent,
		&it.SOH, &it.Cost, &it.Category, &it.SubCategory, &it.Brand,
		&it.ExpiryDate, &it.StoreCode, &it.StoreName, &it.VendorName,
		&it.VendorGST, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	var out []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
