package checkout

import (
	"context"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// CheckoutTxRunner ejecuta fn dentro de una transacción que incluye los repos
// de facturación y catálogo. Si fn retorna error se hace rollback.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// InvoiceRenderer produce el documento imprimible de una factura.
// Un fallo de render nunca debe deshacer una venta ya persistida.
type InvoiceRenderer interface {
	Render(bill *entity.Bill) (*entity.RenderedInvoice, error)
}
