package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una tienda.
// Quantity es el stock disponible en unidades enteras y nunca baja de cero.
// NetProfit es un acumulador corrido: se incrementa en cada venta con
// (MaxSellPrice - PurchasePrice) * cantidad vendida; no se deriva de consultas.
type Product struct {
	ID            string
	StoreID       string
	Name          string
	Category      string
	PurchasePrice decimal.Decimal // precio de compra, > 0
	MaxSellPrice  decimal.Decimal // precio máximo de venta, > 0
	Quantity      int64           // stock disponible, >= 0
	NetProfit     decimal.Decimal // acumulador de ganancia neta
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UnitMargin devuelve la ganancia por unidad vendida.
func (p *Product) UnitMargin() decimal.Decimal {
	return p.MaxSellPrice.Sub(p.PurchasePrice)
}
