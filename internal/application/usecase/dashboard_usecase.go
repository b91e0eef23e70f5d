package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen agregado de la tienda para el admin.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetMetrics construye el DashboardMetricsDTO para la tienda indicada.
//
// Tres llamadas en paralelo:
//  1. CountProducts   → TotalProducts
//  2. GetSalesTotals  → TotalSalesValue + TotalUnitsSold
//  3. CountEmployees  → TotalEmployees
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, storeID string) (*dto.DashboardMetricsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type totalsResult struct {
		value decimal.Decimal
		units int64
		err   error
	}

	productsCh := make(chan countResult, 1)
	salesCh := make(chan totalsResult, 1)
	employeesCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx, storeID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		value, units, err := uc.analyticsRepo.GetSalesTotals(ctx, storeID)
		salesCh <- totalsResult{value, units, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountEmployees(ctx, storeID)
		employeesCh <- countResult{n, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	employees := <-employeesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: totales de ventas: %w", sales.err)
	}
	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: total de empleados: %w", employees.err)
	}

	return &dto.DashboardMetricsDTO{
		TotalProducts:   products.n,
		TotalSalesValue: sales.value.Round(2),
		TotalUnitsSold:  sales.units,
		TotalEmployees:  employees.n,
	}, nil
}
