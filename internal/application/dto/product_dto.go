package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto en la tienda del principal.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"required,min=1,max=100"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	MaxSellPrice  decimal.Decimal `json:"max_sell_price"`
	Quantity      int64           `json:"quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// edita por aquí cuando hay ventas de por medio; NetProfit nunca se edita.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	MaxSellPrice  *decimal.Decimal `json:"max_sell_price"`
	Quantity      *int64           `json:"quantity" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	StoreID       string          `json:"store_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	MaxSellPrice  decimal.Decimal `json:"max_sell_price"`
	Quantity      int64           `json:"quantity"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
