package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/memory"
)

func TestProductUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c1", Name: "Bebidas"}))
	uc := usecase.NewProductUseCase(store.Products(), store.Categories())

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:          "Café",
		CategoryID:    "c1",
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(15),
		Stock:         5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Café", got.Name)

	stock := 9
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, "Café", updated.Name, "los campos ausentes no cambian")

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 20, list.Page.Limit)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := usecase.NewProductUseCase(store.Products(), store.Categories())

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "X", SalePrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", CategoryID: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la categoría debe existir")

	name := "Y"
	_, err = uc.Update(ctx, "nope", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleUseCase_CompletaTotales(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "cl1", Name: "Ana"}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Café", SalePrice: decimal.NewFromInt(15)}))
	uc := usecase.NewSaleUseCase(store.Sales(), store.Clients(), store.Products())

	date := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	sale, err := uc.Create(ctx, dto.CreateSaleRequest{
		ClientID: "cl1",
		Date:     &date,
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(15)}},
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Café", sale.Items[0].ProductName)
	assert.Equal(t, "45", sale.Items[0].Total.String())
	assert.Equal(t, "45", sale.Total.String())

	p, err := store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock, "registrar una venta no modifica el stock")
}

func TestSaleUseCase_Rechazos(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "cl1", Name: "Ana"}))
	uc := usecase.NewSaleUseCase(store.Sales(), store.Clients(), store.Products())

	_, err := uc.Create(ctx, dto.CreateSaleRequest{
		ClientID: "nope",
		Items:    []dto.SaleItemRequest{{ProductID: "p1", ProductName: "Café", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente inexistente")

	_, err = uc.Create(ctx, dto.CreateSaleRequest{
		ClientID: "cl1",
		Items:    []dto.SaleItemRequest{{ProductID: "p9", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto inexistente")

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleUseCase_ListPorFechas(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for i, day := range []int{1, 10, 20} {
		require.NoError(t, store.Sales().Create(ctx, &entity.Sale{
			ID:       string(rune('a' + i)),
			ClientID: "cl1",
			Date:     time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(int64(day)),
		}))
	}
	uc := usecase.NewSaleUseCase(store.Sales(), store.Clients(), store.Products())

	got, err := uc.List(ctx, dto.SaleListRequest{StartDate: "2026-03-05", EndDate: "2026-03-20"})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "c", got.Items[0].ID, "más recientes primero")

	_, err = uc.List(ctx, dto.SaleListRequest{EndDate: "20-03-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
