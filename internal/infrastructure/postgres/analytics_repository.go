package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de la tienda.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el total de productos del catálogo de la tienda.
func (r *AnalyticsRepo) CountProducts(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE store_id = $1`, storeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

// CountEmployees devuelve el total de usuarios con rol employee en la tienda.
func (r *AnalyticsRepo) CountEmployees(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE store_id = $1 AND role = $2`, storeID, entity.RoleEmployee,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountEmployees: %w", err)
	}
	return n, nil
}

// GetSalesTotals devuelve el valor total vendido y las unidades vendidas de la tienda.
// Usa COALESCE para devolver cero si no hay ventas.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, storeID string) (decimal.Decimal, int64, error) {
	const query = `
	SELECT
	    COALESCE(SUM(unit_price * quantity), 0) AS total_value,
	    COALESCE(SUM(quantity),              0) AS total_units
	FROM sales
	WHERE store_id = $1`

	var value decimal.Decimal
	var units int64
	err := r.pool.QueryRow(ctx, query, storeID).Scan(&value, &units)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return value, units, nil
}
