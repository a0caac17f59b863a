package memory

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

func productLess(a, b *entity.Product) bool { return byName(a.Name, b.Name, a.ID, b.ID) }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.s.products.insert(p.ID, *p)
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return paginate(r.s.products.selectWhere(nil, productLess), limit, offset), nil
}

func (r *ProductRepo) Find(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	return r.s.products.selectWhere(func(p *entity.Product) bool {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			return false
		}
		if f.MaxStock != nil && p.Stock > *f.MaxStock {
			return false
		}
		return true
	}, productLess), nil
}

// ListWithCategory embebe la categoría de cada producto; nil si no tiene o no existe.
func (r *ProductRepo) ListWithCategory(ctx context.Context, f repository.ProductFilter) ([]*entity.ProductWithCategory, error) {
	list, _ := r.Find(ctx, f)
	out := make([]*entity.ProductWithCategory, 0, len(list))
	for _, p := range list {
		pc := &entity.ProductWithCategory{Product: *p}
		if c, ok := r.s.categories.get(p.CategoryID); ok {
			pc.Category = &c
		}
		out = append(out, pc)
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.s.products.update(p.ID, *p)
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.s.products.delete(id)
}
