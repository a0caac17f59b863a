package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
// Las líneas se guardan embebidas en la columna items (JSONB).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

var saleColumns = []string{
	"s.id", "COALESCE(s.client_id, '')", "s.date", "s.items", "s.total", "s.created_at", "s.updated_at",
}

type saleDest struct {
	sale  entity.Sale
	items []byte
}

func (d *saleDest) targets() []any {
	s := &d.sale
	return []any{&s.ID, &s.ClientID, &s.Date, &d.items, &s.Total, &s.CreatedAt, &s.UpdatedAt}
}

func (d *saleDest) decode() (*entity.Sale, error) {
	d.sale.Items = []entity.SaleItem{}
	if len(d.items) > 0 {
		if err := json.Unmarshal(d.items, &d.sale.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	return &d.sale, nil
}

func scanSale(row scanner) (*entity.Sale, error) {
	var d saleDest
	if err := row.Scan(d.targets()...); err != nil {
		return nil, err
	}
	return d.decode()
}

func itemsJSON(items []entity.SaleItem) (string, error) {
	if items == nil {
		items = []entity.SaleItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(b), nil
}

// saleWhere aplica el filtro: rango semiabierto [From, To) y contención JSONB para el producto.
func saleWhere(b sq.SelectBuilder, f repository.SaleFilter) sq.SelectBuilder {
	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"s.date": f.From})
	}
	if !f.To.IsZero() {
		b = b.Where(sq.Lt{"s.date": f.To})
	}
	if f.ClientID != "" {
		b = b.Where(sq.Eq{"s.client_id": f.ClientID})
	}
	if f.ProductID != "" {
		probe, _ := json.Marshal([]map[string]string{{"product_id": f.ProductID}})
		b = b.Where("s.items @> ?::jsonb", string(probe))
	}
	return b
}

func saleListQuery(f repository.SaleFilter, limit, offset int) sq.SelectBuilder {
	b := psql.Select(saleColumns...).From("sales s").OrderBy("s.date DESC", "s.id")
	return page(saleWhere(b, f), limit, offset)
}

func saleFindQuery(f repository.SaleFilter) sq.SelectBuilder {
	return saleWhere(psql.Select(saleColumns...).From("sales s").OrderBy("s.date", "s.id"), f)
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := itemsJSON(s.Items)
	if err != nil {
		return err
	}
	b := psql.Insert("sales").
		Columns("id", "client_id", "date", "items", "total", "created_at", "updated_at").
		Values(s.ID, nullIfEmpty(s.ClientID), s.Date, sq.Expr("?::jsonb", items), s.Total, s.CreatedAt, s.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	b := psql.Select(saleColumns...).From("sales s").Where(sq.Eq{"s.id": id})
	s, err := queryOne(ctx, r.q, b, scanSale)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List página de ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	list, err := queryAll(ctx, r.q, saleListQuery(f, limit, offset), scanSale)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}

// Find todas las ventas del filtro, en orden cronológico.
func (r *SaleRepo) Find(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	list, err := queryAll(ctx, r.q, saleFindQuery(f), scanSale)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	return list, nil
}

// FindWithClient como Find, con el cliente embebido (LEFT JOIN).
func (r *SaleRepo) FindWithClient(ctx context.Context, f repository.SaleFilter) ([]*entity.SaleWithClient, error) {
	b := saleFindQuery(f).
		Columns("c.id", "c.name", "c.email", "c.phone", "c.address", "c.created_at", "c.updated_at").
		LeftJoin("clients c ON c.id = s.client_id")

	list, err := queryAll(ctx, r.q, b, func(row scanner) (*entity.SaleWithClient, error) {
		var (
			d                    saleDest
			id, name, email      *string
			phone, address       *string
			createdAt, updatedAt *time.Time
		)
		dest := append(d.targets(), &id, &name, &email, &phone, &address, &createdAt, &updatedAt)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		sale, err := d.decode()
		if err != nil {
			return nil, err
		}
		out := &entity.SaleWithClient{Sale: *sale}
		if id != nil {
			out.Client = &entity.Client{
				ID: *id, Name: *name, Email: *email, Phone: *phone, Address: *address,
				CreatedAt: *createdAt, UpdatedAt: *updatedAt,
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("find sales with client: %w", err)
	}
	return list, nil
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	items, err := itemsJSON(s.Items)
	if err != nil {
		return err
	}
	b := psql.Update("sales").SetMap(map[string]any{
		"client_id":  nullIfEmpty(s.ClientID),
		"date":       s.Date,
		"items":      sq.Expr("?::jsonb", items),
		"total":      s.Total,
		"updated_at": s.UpdatedAt,
	}).Where(sq.Eq{"id": s.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("sales").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
