package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

var categorySelect = psql.Select("id", "name", "description", "created_at", "updated_at").
	From("categories").OrderBy("name", "id")

func scanCategory(row scanner) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	b := psql.Insert("categories").
		Columns("id", "name", "description", "created_at", "updated_at").
		Values(c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := queryOne(ctx, r.q, categorySelect.Where(sq.Eq{"id": id}), scanCategory)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	list, err := queryAll(ctx, r.q, page(categorySelect, limit, offset), scanCategory)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	list, err := queryAll(ctx, r.q, categorySelect, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	b := psql.Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina la categoría; los productos que la referencian quedan sin categoría (ON DELETE SET NULL).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("categories").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
