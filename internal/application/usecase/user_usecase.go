package usecase

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios de una tienda.
// El alta de empleados vive en auth.AuthUseCase (necesita bcrypt y rol fijo).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario de la tienda indicada.
func (uc *UserUseCase) GetByID(storeID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByIDAndStore(id, storeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista los usuarios de la tienda con paginación.
func (uc *UserUseCase) List(storeID string, limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre y estado de un usuario de la tienda. El rol y el
// password no se tocan por aquí.
func (uc *UserUseCase) Update(storeID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByIDAndStore(id, storeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario de la tienda. Un admin no puede eliminar su
// propia cuenta (dejaría la tienda sin administración).
func (uc *UserUseCase) Delete(principal entity.Principal, id string) error {
	if principal.UserID == id {
		return domain.ErrConflict
	}
	user, err := uc.repo.GetByIDAndStore(id, principal.StoreID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		StoreID:   u.StoreID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
