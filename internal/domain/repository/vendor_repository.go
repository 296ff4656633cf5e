package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// VendorRepository define el puerto de persistencia para proveedores.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	GetByName(name string) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	Delete(id string) error
}
