package repository

// CatalogRepository define el puerto para los valores de clasificación del
// catálogo (categorías, subcategorías y marcas). Son listas planas de nombres:
// se alimentan de los ítems existentes y de altas manuales.
type CatalogRepository interface {
	ListCategories() ([]string, error)
	ListSubCategories(category string) ([]string, error)
	ListBrands() ([]string, error)

	AddCategory(name string) error
	AddSubCategory(category, name string) error
	AddBrand(name string) error
}
