package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func productColumns(alias string) []string {
	return []string{
		alias + ".id", alias + ".name", alias + ".description",
		"COALESCE(" + alias + ".category_id, '')",
		alias + ".purchase_price", alias + ".sale_price", alias + ".stock",
		alias + ".created_at", alias + ".updated_at",
	}
}

func scanProduct(row scanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID,
		&p.PurchasePrice, &p.SalePrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// productFindQuery SELECT de productos con los filtros de ProductFilter, ordenado por nombre.
func productFindQuery(f repository.ProductFilter) sq.SelectBuilder {
	b := psql.Select(productColumns("p")...).From("products p").OrderBy("p.name", "p.id")
	if f.CategoryID != "" {
		b = b.Where(sq.Eq{"p.category_id": f.CategoryID})
	}
	if f.MaxStock != nil {
		b = b.Where(sq.LtOrEq{"p.stock": *f.MaxStock})
	}
	return b
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	b := psql.Insert("products").
		Columns("id", "name", "description", "category_id", "purchase_price", "sale_price", "stock", "created_at", "updated_at").
		Values(p.ID, p.Name, p.Description, nullIfEmpty(p.CategoryID), p.PurchasePrice, p.SalePrice, p.Stock, p.CreatedAt, p.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	b := psql.Select(productColumns("p")...).From("products p").Where(sq.Eq{"p.id": id})
	p, err := queryOne(ctx, r.q, b, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	list, err := queryAll(ctx, r.q, page(productFindQuery(repository.ProductFilter{}), limit, offset), scanProduct)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Find devuelve todos los productos que cumplen el filtro.
func (r *ProductRepo) Find(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	list, err := queryAll(ctx, r.q, productFindQuery(f), scanProduct)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return list, nil
}

// ListWithCategory productos con su categoría embebida (LEFT JOIN).
func (r *ProductRepo) ListWithCategory(ctx context.Context, f repository.ProductFilter) ([]*entity.ProductWithCategory, error) {
	b := productFindQuery(f).
		Columns("c.id", "c.name", "c.description", "c.created_at", "c.updated_at").
		LeftJoin("categories c ON c.id = p.category_id")

	list, err := queryAll(ctx, r.q, b, func(row scanner) (*entity.ProductWithCategory, error) {
		var (
			out                   entity.ProductWithCategory
			catID, catName, catDs *string
			catCreated, catUpd    *time.Time
		)
		p := &out.Product
		if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID,
			&p.PurchasePrice, &p.SalePrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
			&catID, &catName, &catDs, &catCreated, &catUpd); err != nil {
			return nil, err
		}
		if catID != nil {
			out.Category = &entity.Category{ID: *catID, Name: *catName, Description: *catDs, CreatedAt: *catCreated, UpdatedAt: *catUpd}
		}
		return &out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list products with category: %w", err)
	}
	return list, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	b := psql.Update("products").SetMap(map[string]any{
		"name":           p.Name,
		"description":    p.Description,
		"category_id":    nullIfEmpty(p.CategoryID),
		"purchase_price": p.PurchasePrice,
		"sale_price":     p.SalePrice,
		"stock":          p.Stock,
		"updated_at":     p.UpdatedAt,
	}).Where(sq.Eq{"id": p.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("products").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
