package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// BillRepository define el puerto de persistencia para facturas emitidas.
type BillRepository interface {
	// NextBillNumber devuelve MAX(bill_no)+1. Debe llamarse dentro de la
	// transacción de cierre para que dos cajas no compartan número.
	NextBillNumber() (int, error)

	Create(bill *entity.Bill) error
	CreateLine(billNo string, line *entity.LineItem) error

	GetByNumber(billNo string) (*entity.Bill, error)
	ListRecent(limit int) ([]*entity.Bill, error)

	// ListByDate devuelve las facturas de un día (fecha DD/MM/YYYY) para el
	// reporte de ventas diarias.
	ListByDate(date string) ([]*entity.Bill, error)

	// FindCustomerByMobile devuelve el último nombre registrado para un móvil,
	// o cadena vacía si el cliente es nuevo.
	FindCustomerByMobile(mobile string) (string, error)
}
