package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// ApplySale y RestoreStock existen porque el stock no se actualiza con un
// Update genérico: la resta de stock lleva un guard condicional contra
// oversell (quantity >= cantidad pedida) verificado por filas afectadas,
// dentro de la transacción del ledger de ventas.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndStore(id, storeID string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	Delete(id, storeID string) error

	// ApplySale descuenta stock y acumula la ganancia en una sola sentencia
	// condicional. Devuelve false si el stock disponible era insuficiente
	// (cero filas afectadas); en ese caso no hay ningún efecto.
	ApplySale(productID, storeID string, quantity int64) (bool, error)

	// RestoreStock devuelve unidades al stock al eliminar una venta.
	// Devuelve false si el producto ya no existe (restauración best-effort).
	RestoreStock(productID, storeID string, quantity int64) (bool, error)
}
