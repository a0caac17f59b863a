package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de venta embebida en Sale. ProductName es una copia del nombre al momento de la venta.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Sale venta con sus líneas. Se asume Total = suma de Items[i].Total, pero no se exige.
type Sale struct {
	ID        string
	ClientID  string
	Date      time.Time
	Items     []SaleItem
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Units devuelve la cantidad total de unidades de la venta.
func (s *Sale) Units() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// SaleWithClient venta con su cliente embebido (join por client_id). Client es nil si no existe.
type SaleWithClient struct {
	Sale
	Client *Client
}
