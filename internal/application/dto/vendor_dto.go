package dto

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// VendorRequest alta/edición de proveedor.
type VendorRequest struct {
	Name       string `json:"name" validate:"required"`
	Mobile     string `json:"mobile"`
	GST        string `json:"gst"`
	Address    string `json:"address"`
	BankName   string `json:"bank_name"`
	BankAcNo   string `json:"bank_ac_no"`
	BankIFSC   string `json:"bank_ifsc"`
	BankBranch string `json:"bank_branch"`
}

// VendorResponse representación pública de un proveedor.
type VendorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	GST        string `json:"gst"`
	Address    string `json:"address"`
	BankName   string `json:"bank_name"`
	BankAcNo   string `json:"bank_ac_no"`
	BankIFSC   string `json:"bank_ifsc"`
	BankBranch string `json:"bank_branch"`
}

// ToVendorResponse mapea la entidad al DTO de salida.
func ToVendorResponse(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:         v.ID,
		Name:       v.Name,
		Mobile:     v.Mobile,
		GST:        v.GST,
		Address:    v.Address,
		BankName:   v.BankName,
		BankAcNo:   v.BankAcNo,
		BankIFSC:   v.BankIFSC,
		BankBranch: v.BankBranch,
	}
}
