package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo valores de clasificación (categorías, subcategorías, marcas)
// sobre PostgreSQL. Las listas combinan los valores declarados con los que ya
// aparecen en ítems, para que el catálogo nunca "pierda" un valor en uso.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListCategories lista todas las categorías conocidas, ordenadas.
func (r *CatalogRepo) ListCategories() ([]string, error) {
	query := `
		SELECT name FROM catalog_values WHERE kind = 'category'
		UNION
		SELECT DISTINCT category FROM items WHERE category <> ''
		ORDER BY 1`
	return r.collect(query)
}

// ListSubCategories lista las subcategorías de una categoría.
func (r *CatalogRepo) ListSubCategories(category string) ([]string, error) {
	query := `
		SELECT name FROM catalog_values WHERE kind = 'sub_category' AND parent = $1
		UNION
		SELECT DISTINCT sub_category FROM items WHERE category = $1 AND sub_category <> ''
		ORDER BY 1`
	return r.collect(query, category)
}

// ListBrands lista todas las marcas conocidas, ordenadas.
func (r *CatalogRepo) ListBrands() ([]string, error) {
	query := `
		SELECT name FROM catalog_values WHERE kind = 'brand'
		UNION
		SELECT DISTINCT brand FROM items WHERE brand <> ''
		ORDER BY 1`
	return r.collect(query)
}

// AddCategory declara una categoría nueva.
func (r *CatalogRepo) AddCategory(name string) error {
	return r.add("category", "", name)
}

// AddSubCategory declara una subcategoría bajo una categoría.
func (r *CatalogRepo) AddSubCategory(category, name string) error {
	return r.add("sub_category", category, name)
}

// AddBrand declara una marca nueva.
func (r *CatalogRepo) AddBrand(name string) error {
	return r.add("brand", "", name)
}

func (r *CatalogRepo) add(kind, parent, name string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO catalog_values (kind, parent, name) VALUES ($1, $2, $3)`,
		kind, parent, name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog value: %w", err)
	}
	return nil
}

func (r *CatalogRepo) collect(query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog values: %w", err)
	}
	defer rows.Close()
	return collectStrings(rows)
}

func collectStrings(rows pgx.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
