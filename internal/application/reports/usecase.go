// Package reports implementa los reportes de gestión: ventas del día en JSON
// y su versión imprimible en PDF.
package reports

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

// DailyReportGenerator produce el PDF del reporte de ventas de un día.
type DailyReportGenerator interface {
	Generate(report *dto.DaySalesResponse) ([]byte, error)
}

var dateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// UseCase reportes de ventas. Solo manager y admin.
type UseCase struct {
	billRepo  repository.BillRepository
	generator DailyReportGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(billRepo repository.BillRepository, generator DailyReportGenerator, log *logger.Logger) *UseCase {
	return &UseCase{billRepo: billRepo, generator: generator, log: log}
}

// DaySales agrega las ventas de un día (fecha DD/MM/YYYY). Un día sin ventas
// devuelve el resumen en cero, no un error.
func (uc *UseCase) DaySales(ctx context.Context, date string) (*dto.DaySalesResponse, error) {
	if !dateRe.MatchString(date) {
		return nil, domain.ErrInvalidInput
	}

	bills, err := uc.billRepo.ListByDate(date)
	if err != nil {
		return nil, err
	}

	resp := &dto.DaySalesResponse{
		Date:          date,
		GrossTotal:    decimal.Zero,
		ByPaymentMode: make(map[string]decimal.Decimal),
		Rows:          make([]dto.DaySalesRow, 0, len(bills)),
	}
	for _, b := range bills {
		qty := 0
		for i := range b.Items {
			qty += b.Items[i].Qty
		}
		resp.Rows = append(resp.Rows, dto.DaySalesRow{
			BillNo:       b.BillNo,
			Time:         b.Time,
			CustomerName: b.CustomerName,
			PaymentMode:  b.PaymentMode,
			Cashier:      b.Cashier,
			Qty:          qty,
			Total:        b.Totals.Total,
		})
		resp.BillCount++
		resp.UnitsSold += qty
		resp.GrossTotal = resp.GrossTotal.Add(b.Totals.Total)
		resp.ByPaymentMode[b.PaymentMode] = resp.ByPaymentMode[b.PaymentMode].Add(b.Totals.Total)
	}
	return resp, nil
}

// DaySalesPDF genera el reporte del día como PDF imprimible.
func (uc *UseCase) DaySalesPDF(ctx context.Context, date string) ([]byte, string, error) {
	report, err := uc.DaySales(ctx, date)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.Generate(report)
	if err != nil {
		uc.log.Error().Err(err).Str("date", date).Msg("reporte diario no generado")
		return nil, "", err
	}

	// 15/08/2026 -> sales_15-08-2026.pdf
	filename := "sales_" + date[0:2] + "-" + date[3:5] + "-" + date[6:] + ".pdf"
	return pdf, filename, nil
}
