package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para el dashboard de la tienda.
// No participa en transacciones del ledger; son agregaciones puras.
type AnalyticsRepository interface {
	// CountProducts devuelve el total de productos del catálogo de la tienda.
	CountProducts(ctx context.Context, storeID string) (int64, error)
	// CountEmployees devuelve el total de usuarios con rol employee.
	CountEmployees(ctx context.Context, storeID string) (int64, error)
	// GetSalesTotals devuelve el valor total vendido (unit_price * quantity)
	// y las unidades vendidas de la tienda. Cero si no hay ventas.
	GetSalesTotals(ctx context.Context, storeID string) (value decimal.Decimal, units int64, err error)
}
