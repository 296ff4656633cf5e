package document

import (
	"encoding/json"
	"image/png"
	"os"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// qrPayload es lo que codifica el QR al pie de la factura: suficiente para
// verificar el documento contra el sistema.
type qrPayload struct {
	BillNo string `json:"bill_no"`
	Date   string `json:"date"`
	Total  string `json:"total"`
}

// buildQRImage genera el QR de la factura como PNG temporal y devuelve su
// ruta junto con la función de limpieza. Cualquier fallo devuelve ruta vacía:
// la factura sale sin QR, nunca deja de salir.
func buildQRImage(bill *entity.Bill) (path string, cleanup func()) {
	cleanup = func() {}

	payload, err := json.Marshal(qrPayload{
		BillNo: bill.BillNo,
		Date:   bill.Date,
		Total:  bill.Totals.Total.StringFixed(2),
	})
	if err != nil {
		return "", cleanup
	}

	code, err := qr.Encode(string(payload), qr.M, qr.Auto)
	if err != nil {
		return "", cleanup
	}
	scaled, err := barcode.Scale(code, 256, 256)
	if err != nil {
		return "", cleanup
	}

	f, err := os.CreateTemp("", "billqr-*.png")
	if err != nil {
		return "", cleanup
	}
	cleanup = func() { _ = os.Remove(f.Name()) }

	if err := png.Encode(f, scaled); err != nil {
		f.Close()
		cleanup()
		return "", func() {}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}
	}
	return f.Name(), cleanup
}
