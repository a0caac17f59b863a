package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los precios deben ser >= 0.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	CategoryID    string          `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Stock         int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto; solo se modifican los campos presentes.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	CategoryID    *string          `json:"category_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
