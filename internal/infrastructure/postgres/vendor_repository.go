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

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, mobile, gst, address, bank_name, bank_ac_no,
	bank_ifsc, bank_branch, created_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.Mobile, v.GST, v.Address,
		v.BankName, v.BankAcNo, v.BankIFSC, v.BankBranch,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.getBy(`id = $1`, id)
}

// GetByName obtiene un proveedor por nombre exacto.
func (r *VendorRepo) GetByName(name string) (*entity.Vendor, error) {
	return r.getBy(`name = $1`, name)
}

func (r *VendorRepo) getBy(where string, arg any) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE ` + where
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&v.ID, &v.Name, &v.Mobile, &v.GST, &v.Address,
		&v.BankName, &v.BankAcNo, &v.BankIFSC, &v.BankBranch, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// List lista proveedores ordenados por nombre.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		err := rows.Scan(&v.ID, &v.Name, &v.Mobile, &v.GST, &v.Address,
			&v.BankName, &v.BankAcNo, &v.BankIFSC, &v.BankBranch, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *VendorRepo) Update(v *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, mobile = $3, gst = $4, address = $5,
			bank_name = $6, bank_ac_no = $7, bank_ifsc = $8, bank_branch = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.Mobile, v.GST, v.Address,
		v.BankName, v.BankAcNo, v.BankIFSC, v.BankBranch,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor.
func (r *VendorRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
