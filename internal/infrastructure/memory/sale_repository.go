package memory

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct{ s *Store }

// Sales devuelve el repositorio de ventas.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.s.sales.insert(sale.ID, *sale)
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	sale, ok := r.s.sales.get(id)
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *SaleRepo) List(_ context.Context, f repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	list := r.s.sales.selectWhere(saleMatcher(f), func(a, b *entity.Sale) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	})
	return paginate(list, limit, offset), nil
}

func (r *SaleRepo) Find(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	return r.s.sales.selectWhere(saleMatcher(f), chronological), nil
}

func (r *SaleRepo) FindWithClient(ctx context.Context, f repository.SaleFilter) ([]*entity.SaleWithClient, error) {
	list, _ := r.Find(ctx, f)
	out := make([]*entity.SaleWithClient, 0, len(list))
	for _, sale := range list {
		sc := &entity.SaleWithClient{Sale: *sale}
		if c, ok := r.s.clients.get(sale.ClientID); ok {
			sc.Client = &c
		}
		out = append(out, sc)
	}
	return out, nil
}

func (r *SaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	return r.s.sales.update(sale.ID, *sale)
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	return r.s.sales.delete(id)
}

func chronological(a, b *entity.Sale) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.ID < b.ID
}

func saleMatcher(f repository.SaleFilter) func(*entity.Sale) bool {
	return func(s *entity.Sale) bool {
		if !f.From.IsZero() && s.Date.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && !s.Date.Before(f.To) {
			return false
		}
		if f.ClientID != "" && s.ClientID != f.ClientID {
			return false
		}
		if f.ProductID != "" {
			for _, it := range s.Items {
				if it.ProductID == f.ProductID {
					return true
				}
			}
			return false
		}
		return true
	}
}
