package dto

import "time"

// CreateCatalogRequest entrada para crear un catálogo.
type CreateCatalogRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	ProductIDs  []string `json:"product_ids" validate:"omitempty,dive,required"`
	Active      *bool    `json:"active"` // por defecto true
}

// UpdateCatalogRequest entrada para actualizar un catálogo.
type UpdateCatalogRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	ProductIDs  []string `json:"product_ids" validate:"omitempty,dive,required"`
	Active      *bool    `json:"active"`
}

// CatalogResponse salida de un catálogo.
type CatalogResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProductIDs  []string  `json:"product_ids"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogListResponse lista paginada de catálogos.
type CatalogListResponse struct {
	Items []CatalogResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
