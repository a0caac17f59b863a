package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ProductFilter criterios de búsqueda de productos. Campos vacíos no filtran.
type ProductFilter struct {
	CategoryID string
	MaxStock   *int // stock <= MaxStock
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListWithCategory(ctx context.Context, filter ProductFilter) ([]*entity.ProductWithCategory, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
