package document

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/layout"
)

// renderText produce la factura en texto plano: bloque de cabecera, una línea
// por ítem separada por tabs y el resumen de totales. El formato es fijo y
// parseable por línea.
func renderText(bill *entity.Bill, storeName, addressLine string) []byte {
	cur := layout.NewCurrencyFormatter(false)
	var b strings.Builder

	fmt.Fprintln(&b, storeName)
	fmt.Fprintln(&b, addressLine)
	fmt.Fprintf(&b, "Bill No: %s\n", bill.BillNo)
	fmt.Fprintf(&b, "Date: %s  Time: %s\n", bill.Date, bill.Time)
	if bill.CustomerName != "" || bill.CustomerMobile != "" {
		fmt.Fprintf(&b, "Customer: %s %s\n", bill.CustomerName, bill.CustomerMobile)
	}
	fmt.Fprintf(&b, "Payment: %s  Cashier: %s\n", bill.PaymentMode, bill.Cashier)
	fmt.Fprintln(&b, strings.Repeat("-", 48))

	totalQty := 0
	for i := range bill.Items {
		ln := &bill.Items[i]
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\n",
			ln.ItemName, ln.Qty, cur.Format(ln.Rate), cur.Format(ln.NetAmount))
		totalQty += ln.Qty
	}

	fmt.Fprintln(&b, strings.Repeat("-", 48))
	t := bill.Totals
	fmt.Fprintf(&b, "Total Qty: %d\n", totalQty)
	fmt.Fprintf(&b, "Subtotal: %s\n", cur.Format(t.Subtotal))
	fmt.Fprintf(&b, "Discount: %s\n", cur.Format(t.Discount))
	fmt.Fprintf(&b, "Total: %s\n", cur.Format(t.Total))
	fmt.Fprintf(&b, "Tender: %s\n", cur.Format(t.Tender))
	fmt.Fprintf(&b, "Change: %s\n", cur.Format(t.Change))

	return []byte(b.String())
}
