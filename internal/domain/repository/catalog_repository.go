package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para Catalog.
type CatalogRepository interface {
	Create(ctx context.Context, catalog *entity.Catalog) error
	GetByID(ctx context.Context, id string) (*entity.Catalog, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Catalog, error)
	Update(ctx context.Context, catalog *entity.Catalog) error
	Delete(ctx context.Context, id string) error
}
