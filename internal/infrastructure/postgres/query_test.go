package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

func TestSaleListQuery_Filtros(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	f := repository.SaleFilter{From: from, To: to, ClientID: "cl1", ProductID: "p1"}

	query, args, err := saleListQuery(f, 10, 5).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM sales s")
	assert.Contains(t, query, "s.date >= $1")
	assert.Contains(t, query, "s.date < $2")
	assert.Contains(t, query, "s.client_id = $3")
	assert.Contains(t, query, "s.items @> $4::jsonb")
	assert.Contains(t, query, "ORDER BY s.date DESC, s.id")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 5")
	require.Len(t, args, 4)
	assert.Equal(t, `[{"product_id":"p1"}]`, args[3])
}

func TestSaleFindQuery_SinFiltro(t *testing.T) {
	query, args, err := saleFindQuery(repository.SaleFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY s.date, s.id")
	assert.Empty(t, args)
}

func TestProductFindQuery(t *testing.T) {
	maxStock := 10
	query, args, err := productFindQuery(repository.ProductFilter{CategoryID: "c1", MaxStock: &maxStock}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "COALESCE(p.category_id, '')")
	assert.Contains(t, query, "p.category_id = $1")
	assert.Contains(t, query, "p.stock <= $2")
	assert.Equal(t, []any{"c1", 10}, args)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "c1", nullIfEmpty("c1"))
}

func TestMigrationFilesEmbebidos(t *testing.T) {
	up, err := migrationFiles.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS sales")

	_, err = migrationFiles.ReadFile("migrations/000001_init.down.sql")
	require.NoError(t, err)
}
