package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

var supplierSelect = psql.Select("id", "name", "contact_name", "email", "phone", "address", "created_at", "updated_at").
	From("suppliers").OrderBy("name", "id")

func scanSupplier(row scanner) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	b := psql.Insert("suppliers").
		Columns("id", "name", "contact_name", "email", "phone", "address", "created_at", "updated_at").
		Values(s.ID, s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.CreatedAt, s.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := queryOne(ctx, r.q, supplierSelect.Where(sq.Eq{"id": id}), scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	list, err := queryAll(ctx, r.q, page(supplierSelect, limit, offset), scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	b := psql.Update("suppliers").SetMap(map[string]any{
		"name":         s.Name,
		"contact_name": s.ContactName,
		"email":        s.Email,
		"phone":        s.Phone,
		"address":      s.Address,
		"updated_at":   s.UpdatedAt,
	}).Where(sq.Eq{"id": s.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("suppliers").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
