package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO resumen agregado de la tienda para el dashboard del admin.
type DashboardMetricsDTO struct {
	TotalProducts   int64           `json:"total_products"`
	TotalSalesValue decimal.Decimal `json:"total_sales_value"`
	TotalUnitsSold  int64           `json:"total_units_sold"`
	TotalEmployees  int64           `json:"total_employees"`
}
