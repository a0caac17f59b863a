package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un nuevo producto. La categoría, si viene, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := checkPrices(in.PurchasePrice, in.SalePrice); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if err := checkPrices(product.PurchasePrice, product.SalePrice); err != nil {
		return nil, err
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	c, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: la categoría %s no existe", domain.ErrInvalidInput, categoryID)
	}
	return nil
}

func checkPrices(purchase, sale decimal.Decimal) error {
	if purchase.IsNegative() || sale.IsNegative() {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
