package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func clientColumns(alias string) []string {
	cols := []string{"id", "name", "email", "phone", "address", "created_at", "updated_at"}
	if alias == "" {
		return cols
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

var clientSelect = psql.Select(clientColumns("")...).From("clients").OrderBy("name", "id")

func scanClient(row scanner) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	b := psql.Insert("clients").
		Columns(clientColumns("")...).
		Values(c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := queryOne(ctx, r.q, clientSelect.Where(sq.Eq{"id": id}), scanClient)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	list, err := queryAll(ctx, r.q, page(clientSelect, limit, offset), scanClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

func (r *ClientRepo) ListAll(ctx context.Context) ([]*entity.Client, error) {
	list, err := queryAll(ctx, r.q, clientSelect, scanClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	b := psql.Update("clients").SetMap(map[string]any{
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"address":    c.Address,
		"updated_at": c.UpdatedAt,
	}).Where(sq.Eq{"id": c.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("clients").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
