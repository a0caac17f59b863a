package postgres

// Repositories agrupa los adaptadores de PostgreSQL atados a un mismo Querier (pool o tx).
type Repositories struct {
	Products      *ProductRepo
	Categories    *CategoryRepo
	Clients       *ClientRepo
	Suppliers     *SupplierRepo
	Catalogs      *CatalogRepo
	Notifications *NotificationRepo
	Sales         *SaleRepo
}

// NewRepositories construye todos los repositorios sobre q.
func NewRepositories(q Querier) Repositories {
	return Repositories{
		Products:      NewProductRepository(q),
		Categories:    NewCategoryRepository(q),
		Clients:       NewClientRepository(q),
		Suppliers:     NewSupplierRepository(q),
		Catalogs:      NewCatalogRepository(q),
		Notifications: NewNotificationRepository(q),
		Sales:         NewSaleRepository(q),
	}
}
