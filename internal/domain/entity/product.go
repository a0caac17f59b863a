package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// PurchasePrice y SalePrice son independientes: el margen puede ser negativo.
type Product struct {
	ID            string
	Name          string
	Description   string
	CategoryID    string // vacío si no tiene categoría
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductWithCategory producto con su categoría embebida (join por category_id).
// Category es nil si el producto no tiene categoría o la referencia quedó huérfana.
type ProductWithCategory struct {
	Product
	Category *Category
}
