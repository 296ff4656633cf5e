// Package catalog implementa la gestión del catálogo: ítems, valores de
// clasificación (categoría, subcategoría, marca) y proveedores.
package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

// UseCase operaciones de catálogo. Todas requieren rol manager o superior;
// el enforcement vive en el router.
type UseCase struct {
	itemRepo    repository.ItemRepository
	catalogRepo repository.CatalogRepository
	vendorRepo  repository.VendorRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	itemRepo repository.ItemRepository,
	catalogRepo repository.CatalogRepository,
	vendorRepo repository.VendorRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		itemRepo:    itemRepo,
		catalogRepo: catalogRepo,
		vendorRepo:  vendorRepo,
		log:         log,
	}
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// CreateItem da de alta un ítem. El código debe ser único.
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code <= 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rate.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	it := &entity.Item{
		Code:            in.Code,
		Name:            strings.TrimSpace(in.Name),
		Rate:            in.Rate,
		GSTPercent:      in.GSTPercent,
		DiscountPercent: in.DiscountPercent,
		Cost:            in.Cost,
		SOH:             in.SOH,
		Category:        in.Category,
		SubCategory:     in.SubCategory,
		Brand:           in.Brand,
		ExpiryDate:      in.ExpiryDate,
		StoreCode:       in.StoreCode,
		StoreName:       in.StoreName,
		VendorName:      in.VendorName,
		VendorGST:       in.VendorGST,
	}
	if err := uc.itemRepo.Create(it); err != nil {
		return nil, err
	}

	uc.log.Info().Int("code", it.Code).Str("name", it.Name).Msg("ítem creado")
	resp := dto.ToItemResponse(it)
	return &resp, nil
}

// GetItem devuelve un ítem por código.
func (uc *UseCase) GetItem(ctx context.Context, code int) (*dto.ItemResponse, error) {
	it, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToItemResponse(it)
	return &resp, nil
}

// SearchItems busca por código exacto o nombre parcial, para la caja.
func (uc *UseCase) SearchItems(ctx context.Context, query string, limit int) ([]dto.ItemResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	items, err := uc.itemRepo.FindByCodeOrName(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToItemResponse(it))
	}
	return out, nil
}

// ListItems lista el catálogo paginado.
func (uc *UseCase) ListItems(ctx context.Context, page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToItemResponse(it))
	}
	return out, nil
}

// UpdateItem edita un ítem existente; el código no cambia.
func (uc *UseCase) UpdateItem(ctx context.Context, code int, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Rate.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	it, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}

	it.Name = strings.TrimSpace(in.Name)
	it.Rate = in.Rate
	it.GSTPercent = in.GSTPercent
	it.DiscountPercent = in.DiscountPercent
	it.Cost = in.Cost
	it.SOH = in.SOH
	it.Category = in.Category
	it.SubCategory = in.SubCategory
	it.Brand = in.Brand
	it.ExpiryDate = in.ExpiryDate
	it.VendorName = in.VendorName
	it.VendorGST = in.VendorGST

	if err := uc.itemRepo.Update(it); err != nil {
		return nil, err
	}
	resp := dto.ToItemResponse(it)
	return &resp, nil
}

// DeleteItem elimina un ítem del catálogo. Las líneas de facturas históricas
// no se tocan: llevan copia de todos los datos.
func (uc *UseCase) DeleteItem(ctx context.Context, code int) error {
	if _, err := uc.itemRepo.GetByCode(code); err != nil {
		return err
	}
	return uc.itemRepo.Delete(code)
}

// AdjustSOH suma delta al stock de un ítem (recepción de mercadería o ajuste
// de conteo). Delta negativo descuenta; el stock resultante puede quedar
// negativo. Devuelve el SOH final.
func (uc *UseCase) AdjustSOH(ctx context.Context, code, delta int) (int, error) {
	if delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	soh, err := uc.itemRepo.AdjustSOH(code, delta)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("item_code", code).Int("delta", delta).Int("soh", soh).
		Msg("stock ajustado")
	return soh, nil
}

// ── Valores de clasificación ──────────────────────────────────────────────────

func (uc *UseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.catalogRepo.ListCategories()
}

func (uc *UseCase) ListSubCategories(ctx context.Context, category string) ([]string, error) {
	return uc.catalogRepo.ListSubCategories(category)
}

func (uc *UseCase) ListBrands(ctx context.Context) ([]string, error) {
	return uc.catalogRepo.ListBrands()
}

func (uc *UseCase) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.catalogRepo.AddCategory(name)
}

func (uc *UseCase) AddSubCategory(ctx context.Context, category, name string) error {
	category, name = strings.TrimSpace(category), strings.TrimSpace(name)
	if category == "" || name == "" {
		return domain.ErrInvalidInput
	}
	return uc.catalogRepo.AddSubCategory(category, name)
}

func (uc *UseCase) AddBrand(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.catalogRepo.AddBrand(name)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateVendor da de alta un proveedor.
func (uc *UseCase) CreateVendor(ctx context.Context, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	v := &entity.Vendor{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Mobile:     in.Mobile,
		GST:        in.GST,
		Address:    in.Address,
		BankName:   in.BankName,
		BankAcNo:   in.BankAcNo,
		BankIFSC:   in.BankIFSC,
		BankBranch: in.BankBranch,
	}
	if err := uc.vendorRepo.Create(v); err != nil {
		return nil, err
	}
	resp := dto.ToVendorResponse(v)
	return &resp, nil
}

// ListVendors lista proveedores paginados.
func (uc *UseCase) ListVendors(ctx context.Context, page dto.PageRequest) ([]dto.VendorResponse, error) {
	page.DefaultPage()
	vendors, err := uc.vendorRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, dto.ToVendorResponse(v))
	}
	return out, nil
}

// UpdateVendor edita un proveedor existente.
func (uc *UseCase) UpdateVendor(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	v.Name = strings.TrimSpace(in.Name)
	v.Mobile = in.Mobile
	v.GST = in.GST
	v.Address = in.Address
	v.BankName = in.BankName
	v.BankAcNo = in.BankAcNo
	v.BankIFSC = in.BankIFSC
	v.BankBranch = in.BankBranch

	if err := uc.vendorRepo.Update(v); err != nil {
		return nil, err
	}
	resp := dto.ToVendorResponse(v)
	return &resp, nil
}

// DeleteVendor elimina un proveedor.
func (uc *UseCase) DeleteVendor(ctx context.Context, id string) error {
	if _, err := uc.vendorRepo.GetByID(id); err != nil {
		return err
	}
	return uc.vendorRepo.Delete(id)
}
