package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para catálogos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create crea un catálogo; queda activo salvo que se indique lo contrario.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateCatalogRequest) (*dto.CatalogResponse, error) {
	now := time.Now()
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	c := &entity.Catalog{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ProductIDs:  nonNil(in.ProductIDs),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCatalogResponse(c), nil
}

// GetByID obtiene un catálogo.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCatalogResponse(c), nil
}

// Update actualiza un catálogo. ProductIDs, si viene, reemplaza la lista completa.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ProductIDs != nil {
		c.ProductIDs = in.ProductIDs
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCatalogResponse(c), nil
}

// List lista catálogos con paginación.
func (uc *CatalogUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CatalogListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCatalogResponse(c))
	}
	return &dto.CatalogListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete elimina un catálogo.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCatalogResponse(c *entity.Catalog) *dto.CatalogResponse {
	return &dto.CatalogResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ProductIDs:  nonNil(c.ProductIDs),
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
