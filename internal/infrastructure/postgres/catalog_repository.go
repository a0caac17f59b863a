package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL. product_ids es un arreglo JSONB.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogos.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

var catalogSelect = psql.Select("id", "name", "description", "product_ids", "active", "created_at", "updated_at").
	From("catalogs").OrderBy("name", "id")

func scanCatalog(row scanner) (*entity.Catalog, error) {
	var (
		c   entity.Catalog
		raw []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &raw, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ProductIDs = []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.ProductIDs); err != nil {
			return nil, fmt.Errorf("decode product_ids: %w", err)
		}
	}
	return &c, nil
}

func productIDsJSON(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode product_ids: %w", err)
	}
	return string(b), nil
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	ids, err := productIDsJSON(c.ProductIDs)
	if err != nil {
		return err
	}
	b := psql.Insert("catalogs").
		Columns("id", "name", "description", "product_ids", "active", "created_at", "updated_at").
		Values(c.ID, c.Name, c.Description, sq.Expr("?::jsonb", ids), c.Active, c.CreatedAt, c.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	c, err := queryOne(ctx, r.q, catalogSelect.Where(sq.Eq{"id": id}), scanCatalog)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

func (r *CatalogRepo) List(ctx context.Context, limit, offset int) ([]*entity.Catalog, error) {
	list, err := queryAll(ctx, r.q, page(catalogSelect, limit, offset), scanCatalog)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return list, nil
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	ids, err := productIDsJSON(c.ProductIDs)
	if err != nil {
		return err
	}
	b := psql.Update("catalogs").SetMap(map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"product_ids": sq.Expr("?::jsonb", ids),
		"active":      c.Active,
		"updated_at":  c.UpdatedAt,
	}).Where(sq.Eq{"id": c.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("catalogs").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}
