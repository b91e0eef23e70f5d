package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de tienda, alta de
// empleados y login por email (admin y employee por igual).
type AuthUseCase struct {
	txRunner  TxRunner
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner TxRunner, userRepo repository.UserRepository, storeRepo repository.StoreRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, storeRepo: storeRepo, jwtCfg: jwtCfg}
}

// RegisterStore crea la tienda y su admin inicial en una sola transacción.
// Devuelve ErrDuplicate si el nombre de tienda ya existe y
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterStore(ctx context.Context, in dto.RegisterStoreRequest) (*dto.RegisterStoreResponse, error) {
	existingStore, err := uc.storeRepo.GetByName(in.StoreName)
	if err != nil {
		return nil, err
	}
	if existingStore != nil {
		return nil, domain.ErrDuplicate
	}
	existingUser, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.StoreName,
		CreatedAt: now,
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      store.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		storeRepo repository.StoreRepository,
		userRepo repository.UserRepository,
	) error {
		if err := storeRepo.Create(store); err != nil {
			return err
		}
		return userRepo.Create(admin)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterStoreResponse{
		Store: dto.StoreResponse{ID: store.ID, Name: store.Name},
		Admin: *toUserResponse(admin),
	}, nil
}

// AddEmployee crea un empleado en la tienda del admin que lo agrega.
// El rol queda fijo en employee; el store_id sale del principal, nunca del body.
func (uc *AuthUseCase) AddEmployee(principal entity.Principal, in dto.AddEmployeeRequest) (*dto.UserResponse, error) {
	if principal.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      principal.StoreID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleEmployee,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(employee); err != nil {
		return nil, err
	}
	return toUserResponse(employee), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.StoreID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
