package auth

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner transacción para el registro tienda+admin: ambas filas se crean
// juntas o ninguna (una tienda sin admin quedaría inaccesible).
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		userRepo repository.UserRepository,
	) error) error
}
