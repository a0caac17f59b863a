package memory

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository     = (*CategoryRepo)(nil)
	_ repository.ClientRepository       = (*ClientRepo)(nil)
	_ repository.SupplierRepository     = (*SupplierRepo)(nil)
	_ repository.CatalogRepository      = (*CatalogRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

// ── Categories ────────────────────────────────────────────────────────────────

// CategoryRepo categorías en memoria.
type CategoryRepo struct{ s *Store }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

func categoryLess(a, b *entity.Category) bool { return byName(a.Name, b.Name, a.ID, b.ID) }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.s.categories.insert(c.ID, *c)
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.s.categories.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	return paginate(r.s.categories.selectWhere(nil, categoryLess), limit, offset), nil
}

func (r *CategoryRepo) ListAll(_ context.Context) ([]*entity.Category, error) {
	return r.s.categories.selectWhere(nil, categoryLess), nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.s.categories.update(c.ID, *c)
}

// Delete borra la categoría y deja sin categoría a sus productos.
func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	return deleteDetaching(r.s.categories, r.s.products, id, func(p *entity.Product) bool {
		if p.CategoryID != id {
			return false
		}
		p.CategoryID = ""
		return true
	})
}

// ── Clients ───────────────────────────────────────────────────────────────────

// ClientRepo clientes en memoria.
type ClientRepo struct{ s *Store }

// Clients devuelve el repositorio de clientes.
func (s *Store) Clients() *ClientRepo { return &ClientRepo{s: s} }

func clientLess(a, b *entity.Client) bool { return byName(a.Name, b.Name, a.ID, b.ID) }

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	return r.s.clients.insert(c.ID, *c)
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.s.clients.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	return paginate(r.s.clients.selectWhere(nil, clientLess), limit, offset), nil
}

func (r *ClientRepo) ListAll(_ context.Context) ([]*entity.Client, error) {
	return r.s.clients.selectWhere(nil, clientLess), nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	return r.s.clients.update(c.ID, *c)
}

// Delete borra el cliente y desvincula sus ventas.
func (r *ClientRepo) Delete(_ context.Context, id string) error {
	return deleteDetaching(r.s.clients, r.s.sales, id, func(s *entity.Sale) bool {
		if s.ClientID != id {
			return false
		}
		s.ClientID = ""
		return true
	})
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ s *Store }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

func (r *SupplierRepo) Create(_ context.Context, v *entity.Supplier) error {
	return r.s.suppliers.insert(v.ID, *v)
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	v, ok := r.s.suppliers.get(id)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	list := r.s.suppliers.selectWhere(nil, func(a, b *entity.Supplier) bool { return byName(a.Name, b.Name, a.ID, b.ID) })
	return paginate(list, limit, offset), nil
}

func (r *SupplierRepo) Update(_ context.Context, v *entity.Supplier) error {
	return r.s.suppliers.update(v.ID, *v)
}

func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	return r.s.suppliers.delete(id)
}

// ── Catalogs ──────────────────────────────────────────────────────────────────

// CatalogRepo catálogos en memoria.
type CatalogRepo struct{ s *Store }

// Catalogs devuelve el repositorio de catálogos.
func (s *Store) Catalogs() *CatalogRepo { return &CatalogRepo{s: s} }

func (r *CatalogRepo) Create(_ context.Context, v *entity.Catalog) error {
	return r.s.catalogs.insert(v.ID, *v)
}

func (r *CatalogRepo) GetByID(_ context.Context, id string) (*entity.Catalog, error) {
	v, ok := r.s.catalogs.get(id)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *CatalogRepo) List(_ context.Context, limit, offset int) ([]*entity.Catalog, error) {
	list := r.s.catalogs.selectWhere(nil, func(a, b *entity.Catalog) bool { return byName(a.Name, b.Name, a.ID, b.ID) })
	return paginate(list, limit, offset), nil
}

func (r *CatalogRepo) Update(_ context.Context, v *entity.Catalog) error {
	return r.s.catalogs.update(v.ID, *v)
}

func (r *CatalogRepo) Delete(_ context.Context, id string) error {
	return r.s.catalogs.delete(id)
}

// ── Notifications ─────────────────────────────────────────────────────────────

// NotificationRepo notificaciones en memoria.
type NotificationRepo struct{ s *Store }

// Notifications devuelve el repositorio de notificaciones.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }

func (r *NotificationRepo) Create(_ context.Context, v *entity.Notification) error {
	return r.s.notifications.insert(v.ID, *v)
}

func (r *NotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	v, ok := r.s.notifications.get(id)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *NotificationRepo) List(_ context.Context, limit, offset int) ([]*entity.Notification, error) {
	list := r.s.notifications.selectWhere(nil, func(a, b *entity.Notification) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return paginate(list, limit, offset), nil
}

func (r *NotificationRepo) Update(_ context.Context, v *entity.Notification) error {
	return r.s.notifications.update(v.ID, *v)
}

func (r *NotificationRepo) Delete(_ context.Context, id string) error {
	return r.s.notifications.delete(id)
}
