//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("backoffice_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := postgres.NewMigrator(dsn, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Up(), "una segunda ejecución no tiene cambios")
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories_Postgres(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tx := postgres.NewTxRunner(pool)

	err := tx.Run(ctx, func(r postgres.Repositories) error {
		if err := r.Categories.Create(ctx, &entity.Category{ID: "c1", Name: "Bebidas", CreatedAt: now, UpdatedAt: now}); err != nil {
			return err
		}
		if err := r.Products.Create(ctx, &entity.Product{
			ID: "p1", Name: "Café", CategoryID: "c1",
			PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(15), Stock: 20,
			CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			return err
		}
		if err := r.Products.Create(ctx, &entity.Product{
			ID: "p2", Name: "Pan", PurchasePrice: decimal.NewFromInt(4), SalePrice: decimal.NewFromInt(4), Stock: 3,
			CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			return err
		}
		return r.Clients.Create(ctx, &entity.Client{ID: "cl1", Name: "Ana", Email: "ana@example.com", CreatedAt: now, UpdatedAt: now})
	})
	require.NoError(t, err)

	repos := postgres.NewRepositories(pool)

	t.Run("duplicado", func(t *testing.T) {
		err := repos.Clients.Create(ctx, &entity.Client{ID: "cl1", Name: "Otra", CreatedAt: now, UpdatedAt: now})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("categoria inexistente", func(t *testing.T) {
		err := repos.Products.Create(ctx, &entity.Product{ID: "px", Name: "X", CategoryID: "nope", CreatedAt: now, UpdatedAt: now})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("productos con categoria", func(t *testing.T) {
		list, err := repos.Products.ListWithCategory(ctx, repository.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Café", list[0].Name)
		require.NotNil(t, list[0].Category)
		assert.Equal(t, "Bebidas", list[0].Category.Name)
		assert.Nil(t, list[1].Category)

		maxStock := 5
		low, err := repos.Products.Find(ctx, repository.ProductFilter{MaxStock: &maxStock})
		require.NoError(t, err)
		require.Len(t, low, 1)
		assert.Equal(t, "p2", low[0].ID)
	})

	t.Run("ventas", func(t *testing.T) {
		sale := &entity.Sale{
			ID: "s1", ClientID: "cl1", Date: now.Add(-time.Hour),
			Items: []entity.SaleItem{{ProductID: "p1", ProductName: "Café", Quantity: 2, UnitPrice: decimal.NewFromInt(15), Total: decimal.NewFromInt(30)}},
			Total: decimal.NewFromInt(30), CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repos.Sales.Create(ctx, sale))

		got, err := repos.Sales.GetByID(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.True(t, got.Items[0].Total.Equal(decimal.NewFromInt(30)))

		byProduct, err := repos.Sales.Find(ctx, repository.SaleFilter{ProductID: "p1"})
		require.NoError(t, err)
		assert.Len(t, byProduct, 1)

		none, err := repos.Sales.Find(ctx, repository.SaleFilter{ProductID: "p2"})
		require.NoError(t, err)
		assert.Empty(t, none)

		withClient, err := repos.Sales.FindWithClient(ctx, repository.SaleFilter{From: now.Add(-24 * time.Hour), To: now})
		require.NoError(t, err)
		require.Len(t, withClient, 1)
		require.NotNil(t, withClient[0].Client)
		assert.Equal(t, "Ana", withClient[0].Client.Name)
	})

	t.Run("inexistentes", func(t *testing.T) {
		p, err := repos.Products.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, repos.Suppliers.Delete(ctx, "nope"), domain.ErrNotFound)
	})

	t.Run("catalogo", func(t *testing.T) {
		c := &entity.Catalog{ID: "k1", Name: "Verano", ProductIDs: []string{"p1", "p2"}, Active: true, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repos.Catalogs.Create(ctx, c))
		got, err := repos.Catalogs.GetByID(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, got.ProductIDs)
	})

	t.Run("borrar categoria deja productos sin categoria", func(t *testing.T) {
		require.NoError(t, repos.Categories.Delete(ctx, "c1"))
		p, err := repos.Products.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, p.CategoryID)
	})
}
