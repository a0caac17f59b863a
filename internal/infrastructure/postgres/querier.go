package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repositorios aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builder de squirrel con placeholders $1, $2, ...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type scanner interface {
	Scan(dest ...any) error
}

// queryOne ejecuta la consulta y escanea una fila. Sin filas devuelve (nil, nil).
func queryOne[T any](ctx context.Context, q Querier, b sq.Sqlizer, scan func(scanner) (*T, error)) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("armar consulta: %w", err)
	}
	v, err := scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// queryAll ejecuta la consulta y escanea todas las filas.
func queryAll[T any](ctx context.Context, q Querier, b sq.Sqlizer, scan func(scanner) (*T, error)) ([]*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("armar consulta: %w", err)
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// insert ejecuta un INSERT; una clave repetida devuelve domain.ErrDuplicate y una
// referencia inexistente domain.ErrInvalidInput.
func insert(ctx context.Context, q Querier, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("armar consulta: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return err
	}
	return nil
}

// execOne ejecuta un UPDATE/DELETE por id; si no afecta filas devuelve domain.ErrNotFound.
func execOne(ctx context.Context, q Querier, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("armar consulta: %w", err)
	}
	cmd, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// page aplica LIMIT/OFFSET.
func page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	return b.Limit(uint64(limit)).Offset(uint64(offset))
}

// nullIfEmpty guarda "" como NULL (claves foráneas opcionales).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
