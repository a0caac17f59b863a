package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta. Total se calcula como quantity × unit_price si no viene.
type SaleItemRequest struct {
	ProductID   string           `json:"product_id" validate:"required"`
	ProductName string           `json:"product_name" validate:"max=200"`
	Quantity    int              `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Total       *decimal.Decimal `json:"total"`
}

// CreateSaleRequest entrada para registrar una venta.
// Date por defecto es el momento actual; Total por defecto la suma de las líneas.
type CreateSaleRequest struct {
	ClientID string            `json:"client_id" validate:"required"`
	Date     *time.Time        `json:"date"`
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total    *decimal.Decimal  `json:"total"`
}

// UpdateSaleRequest entrada para corregir una venta. Si llegan Items se recalculan los totales faltantes.
type UpdateSaleRequest struct {
	ClientID *string           `json:"client_id" validate:"omitempty,min=1"`
	Date     *time.Time        `json:"date"`
	Items    []SaleItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Total    *decimal.Decimal  `json:"total"`
}

// SaleListRequest filtros del listado de ventas.
type SaleListRequest struct {
	Limit     int    `query:"limit" validate:"min=0,max=100"`
	Offset    int    `query:"offset" validate:"min=0"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	ClientID  string `query:"clientId"`
}

// Page devuelve la paginación con los valores por defecto aplicados.
func (r SaleListRequest) Page() PageRequest {
	p := PageRequest{Limit: r.Limit, Offset: r.Offset}
	p.DefaultPage()
	return p
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"client_id"`
	Date      time.Time          `json:"date"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
