package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByIDAndStore(id, storeID string) (*entity.User, error)
	Update(user *entity.User) error
	ListByStore(storeID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
