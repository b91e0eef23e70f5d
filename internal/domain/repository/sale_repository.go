package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleFilter filtros opcionales para listados de ventas.
type SaleFilter struct {
	ProductID string // vacío = todas
	UserID    string // vacío = todas
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son append-only salvo la eliminación administrativa.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByIDAndStore(id, storeID string) (*entity.Sale, error)
	ListByStore(storeID string, filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
}
