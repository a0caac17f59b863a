package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/memory"
)

func TestProductRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	products := memory.New().Products()

	p := &entity.Product{ID: "p1", Name: "Café", SalePrice: decimal.NewFromInt(10), Stock: 4}
	require.NoError(t, products.Create(ctx, p))
	assert.ErrorIs(t, products.Create(ctx, p), domain.ErrDuplicate)

	got, err := products.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Café", got.Name)

	missing, err := products.GetByID(ctx, "nope")
	assert.NoError(t, err, "no encontrado no es un error")
	assert.Nil(t, missing)

	got.Name = "Café molido"
	require.NoError(t, products.Update(ctx, got))
	again, _ := products.GetByID(ctx, "p1")
	assert.Equal(t, "Café molido", again.Name)

	assert.True(t, errors.Is(products.Update(ctx, &entity.Product{ID: "nope"}), domain.ErrNotFound))
	require.NoError(t, products.Delete(ctx, "p1"))
	assert.True(t, errors.Is(products.Delete(ctx, "p1"), domain.ErrNotFound))
}

func TestProductRepo_FindYJoin(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c1", Name: "Bebidas"}))
	for _, p := range []*entity.Product{
		{ID: "p1", Name: "Agua", CategoryID: "c1", Stock: 3},
		{ID: "p2", Name: "Jugo", CategoryID: "c1", Stock: 30},
		{ID: "p3", Name: "Pan", Stock: 5},
	} {
		require.NoError(t, store.Products().Create(ctx, p))
	}

	maxStock := 5
	low, err := store.Products().Find(ctx, repository.ProductFilter{MaxStock: &maxStock})
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "p1", low[0].ID)

	joined, err := store.Products().ListWithCategory(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, joined, 3)
	require.NotNil(t, joined[0].Category)
	assert.Equal(t, "Bebidas", joined[0].Category.Name)
	assert.Nil(t, joined[2].Category, "producto sin categoría")
}

func TestSaleRepo_FiltrosYCopias(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "c1", Name: "Ana"}))

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{
		{ID: "s1", ClientID: "c1", Date: base, Items: []entity.SaleItem{{ProductID: "p1", Quantity: 1}}},
		{ID: "s2", ClientID: "c2", Date: base.AddDate(0, 0, 1), Items: []entity.SaleItem{{ProductID: "p2", Quantity: 2}}},
		{ID: "s3", ClientID: "c1", Date: base.AddDate(0, 0, 2), Items: []entity.SaleItem{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 1}}},
	}
	for _, s := range sales {
		require.NoError(t, store.Sales().Create(ctx, s))
	}

	// [from, to) semiabierto
	window, err := store.Sales().Find(ctx, repository.SaleFilter{From: base, To: base.AddDate(0, 0, 2)})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	byProduct, _ := store.Sales().Find(ctx, repository.SaleFilter{ProductID: "p1"})
	assert.Len(t, byProduct, 2)

	byClient, _ := store.Sales().FindWithClient(ctx, repository.SaleFilter{ClientID: "c1"})
	require.Len(t, byClient, 2)
	assert.Equal(t, "Ana", byClient[0].Client.Name)

	other, _ := store.Sales().FindWithClient(ctx, repository.SaleFilter{ClientID: "c2"})
	require.Len(t, other, 1)
	assert.Nil(t, other[0].Client, "cliente inexistente")

	page, _ := store.Sales().List(ctx, repository.SaleFilter{}, 2, 0)
	require.Len(t, page, 2)
	assert.Equal(t, "s3", page[0].ID, "más recientes primero")

	// modificar el resultado no altera el almacén
	byProduct[0].Items[0].Quantity = 99
	s1, _ := store.Sales().GetByID(ctx, "s1")
	assert.Equal(t, 1, s1.Items[0].Quantity)
}

func TestNotificationRepo_RecientesPrimero(t *testing.T) {
	ctx := context.Background()
	repo := memory.New().Notifications()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n1", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n2", CreatedAt: t0.Add(time.Hour)}))

	list, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)

	empty, _ := repo.List(ctx, 20, 5)
	assert.Empty(t, empty)
}

func TestCategoryRepo_DeleteDesvinculaProductos(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c1", Name: "Bebidas"}))
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c2", Name: "Panadería"}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Agua", CategoryID: "c1"}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p2", Name: "Pan", CategoryID: "c2"}))

	require.NoError(t, store.Categories().Delete(ctx, "c1"))

	p1, _ := store.Products().GetByID(ctx, "p1")
	require.NotNil(t, p1)
	assert.Empty(t, p1.CategoryID, "el producto queda sin categoría")
	p2, _ := store.Products().GetByID(ctx, "p2")
	assert.Equal(t, "c2", p2.CategoryID, "otras categorías no cambian")

	assert.ErrorIs(t, store.Categories().Delete(ctx, "c1"), domain.ErrNotFound)
}

func TestClientRepo_DeleteDesvinculaVentas(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "cl1", Name: "Ana"}))
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "cl2", Name: "Luis"}))
	day := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s1", ClientID: "cl1", Date: day}))
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "s2", ClientID: "cl2", Date: day}))

	require.NoError(t, store.Clients().Delete(ctx, "cl2"))

	s2, _ := store.Sales().GetByID(ctx, "s2")
	require.NotNil(t, s2)
	assert.Empty(t, s2.ClientID, "la venta se conserva sin cliente")
	s1, _ := store.Sales().GetByID(ctx, "s1")
	assert.Equal(t, "cl1", s1.ClientID)

	byClient, err := store.Sales().Find(ctx, repository.SaleFilter{ClientID: "cl2"})
	require.NoError(t, err)
	assert.Empty(t, byClient)
}
