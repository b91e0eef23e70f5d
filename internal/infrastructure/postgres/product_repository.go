package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, store_id, name, category, purchase_price, max_sell_price, quantity, net_profit, created_at, updated_at`

// Create persiste un nuevo producto. NetProfit inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, name, category, purchase_price, max_sell_price, quantity, net_profit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.StoreID, product.Name, product.Category,
		product.PurchasePrice, product.MaxSellPrice, product.Quantity, product.NetProfit,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndStore obtiene un producto por ID dentro de una tienda.
// Un producto de otra tienda es indistinguible de uno inexistente.
func (r *ProductRepo) GetByIDAndStore(id, storeID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND store_id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id, storeID).Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Category, &p.PurchasePrice, &p.MaxSellPrice,
		&p.Quantity, &p.NetProfit, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. No toca NetProfit (solo lo mueve ApplySale).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, category = $4, purchase_price = $5, max_sell_price = $6, quantity = $7, updated_at = $8
		WHERE id = $1 AND store_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.StoreID, product.Name, product.Category,
		product.PurchasePrice, product.MaxSellPrice, product.Quantity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ApplySale descuenta stock y acumula la ganancia en una sola sentencia condicional.
// El guard quantity >= $3 en el WHERE evita oversell bajo concurrencia: si otra
// venta ganó la carrera, cero filas afectadas y el caller recibe false.
func (r *ProductRepo) ApplySale(productID, storeID string, quantity int64) (bool, error) {
	query := `
		UPDATE products
		SET quantity   = quantity - $3,
		    net_profit = net_profit + (max_sell_price - purchase_price) * $3,
		    updated_at = now()
		WHERE id = $1 AND store_id = $2 AND quantity >= $3`
	cmd, err := r.q.Exec(context.Background(), query, productID, storeID, quantity)
	if err != nil {
		return false, fmt.Errorf("apply sale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// RestoreStock devuelve unidades al stock al eliminar una venta.
// Cero filas afectadas significa que el producto ya no existe (best-effort).
func (r *ProductRepo) RestoreStock(productID, storeID string, quantity int64) (bool, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $3, updated_at = now()
		WHERE id = $1 AND store_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, storeID, quantity)
	if err != nil {
		return false, fmt.Errorf("restore stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByStore lista productos por tienda con paginación.
func (r *ProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Category, &p.PurchasePrice, &p.MaxSellPrice,
			&p.Quantity, &p.NetProfit, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto de una tienda.
func (r *ProductRepo) Delete(id, storeID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
