package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta. user_id y store_id
// nunca vienen del body: salen del principal autenticado.
type RecordSaleRequest struct {
	ProductID string     `json:"product_id" validate:"required"`
	Quantity  int64      `json:"quantity" validate:"required,gt=0"`
	SoldAt    *time.Time `json:"sold_at"` // opcional, por defecto ahora
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	StoreID   string          `json:"store_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	SoldAt    time.Time       `json:"sold_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListSalesRequest filtros y paginación para listados de ventas.
type ListSalesRequest struct {
	ProductID string `query:"product_id"`
	UserID    string `query:"user_id"`
	PageRequest
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
