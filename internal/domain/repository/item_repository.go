package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByCode(code int) (*entity.Item, error)

	// FindByCodeOrName busca por código exacto o por coincidencia parcial del
	// nombre (case-insensitive). Es la consulta del punto de venta.
	FindByCodeOrName(query string, limit int) ([]*entity.Item, error)

	List(limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(code int) error

	// AdjustSOH suma delta (puede ser negativo) al stock disponible y devuelve
	// el stock resultante. El stock puede quedar negativo: la venta nunca se
	// bloquea por inventario desactualizado.
	AdjustSOH(code int, delta int) (int, error)
}
