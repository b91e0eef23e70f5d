package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada contra el stock de un producto.
// Es inmutable una vez creada; solo un admin puede eliminarla y la
// eliminación revierte el stock del producto.
type Sale struct {
	ID        string
	ProductID string
	UserID    string // quien registró la venta
	StoreID   string
	Quantity  int64           // > 0
	UnitPrice decimal.Decimal // MaxSellPrice del producto al momento de la venta
	SoldAt    time.Time
	CreatedAt time.Time
}

// Total devuelve el valor de la venta (UnitPrice * Quantity).
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(s.Quantity))
}
