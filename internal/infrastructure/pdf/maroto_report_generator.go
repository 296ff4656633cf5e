// Package pdf implementa el reporte imprimible de ventas diarias con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: facturas emitidas / unidades / total del día      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Factura | Hora | Cliente | Pago | Caja | Cant | Total│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL DÍA                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 40, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Agrupación de miles al estilo indio: 1,00,000.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

var _ reports.DailyReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.DailyReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	storeName   string
	addressLine string
}

// NewMarotoReportGenerator construye el generador con la identidad de la tienda.
func NewMarotoReportGenerator(storeName, addressLine string) *MarotoReportGenerator {
	return &MarotoReportGenerator{storeName: storeName, addressLine: addressLine}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(report *dto.DaySalesResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas "+report.Date, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("reporte: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y fecha del reporte (der).
func (g *MarotoReportGenerator) headerRow(report *dto.DaySalesResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.addressLine, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS DIARIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Date, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: facturas emitidas, unidades vendidas, total bruto y el corte
// por modo de pago.
func summaryRow(report *dto.DaySalesResponse) core.Row {
	return row.New(17).Add(
		col.New(12).Add(
			text.New("RESUMEN DEL DÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Facturas: %d   |   Unidades: %d   |   Total: Rs.%s",
				report.BillCount, report.UnitsSold, formatAmount(report.GrossTotal),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(paymentBreakdown(report.ByPaymentMode),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// paymentBreakdown arma "Por pago: CASH Rs.296.50 | UPI Rs.120.00" en orden
// alfabético de modo, para que el PDF sea reproducible.
func paymentBreakdown(byMode map[string]decimal.Decimal) string {
	if len(byMode) == 0 {
		return "Por pago: —"
	}
	modes := make([]string, 0, len(byMode))
	for m := range byMode {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		parts = append(parts, fmt.Sprintf("%s Rs.%s", m, formatAmount(byMode[m])))
	}
	return "Por pago: " + strings.Join(parts, "   |   ")
}

// tableHeaderRow: cabecera de la tabla de facturas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Factura", 1, align.Center),
		h("Hora", 2, align.Center),
		h("Cliente", 3, align.Left),
		h("Pago", 1, align.Center),
		h("Caja", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// tableRows: una fila por factura del día.
func tableRows(rows []dto.DaySalesRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(r.BillNo,
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.Time,
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(nonEmpty(r.CustomerName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.PaymentMode,
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.Cashier,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("Rs."+formatAmount(r.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalRow: total del día alineado a la derecha.
func totalRow(report *dto.DaySalesResponse) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DEL DÍA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("Rs."+formatAmount(report.GrossTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount agrupa miles al estilo indio con dos decimales.
// Ej: 123456.7 → "1,23,456.70"
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return inPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
