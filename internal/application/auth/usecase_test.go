package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/ventas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores map[string]*entity.Store // por id
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(s *entity.Store) error {
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	if s, ok := r.stores[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStoreRepo) GetByName(name string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDAndStore(id, storeID string) (*entity.User, error) {
	if u, ok := r.users[id]; ok && u.StoreID == storeID {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByStore(storeID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.StoreID == storeID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeRegistrationTx struct {
	stores *fakeStoreRepo
	users  *fakeUserRepo
}

func (tr *fakeRegistrationTx) RunRegistration(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(tr.stores, tr.users)
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ventas-pro-test"
)

func buildAuthUseCase(t *testing.T) (*auth.AuthUseCase, *fakeStoreRepo, *fakeUserRepo) {
	t.Helper()
	stores := newFakeStoreRepo()
	users := newFakeUserRepo()
	tr := &fakeRegistrationTx{stores: stores, users: users}
	uc := auth.NewAuthUseCase(tr, users, stores, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, stores, users
}

func registerTestStore(t *testing.T, uc *auth.AuthUseCase) *dto.RegisterStoreResponse {
	t.Helper()
	out, err := uc.RegisterStore(context.Background(), dto.RegisterStoreRequest{
		StoreName: "Tienda Centro",
		Email:     "admin@tienda.com",
		Password:  "secreto-muy-largo",
		Name:      "Ana Admin",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterStore
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterStore_CreaTiendaYAdmin(t *testing.T) {
	uc, stores, users := buildAuthUseCase(t)

	out := registerTestStore(t, uc)

	assert.Equal(t, "Tienda Centro", out.Store.Name)
	assert.Equal(t, entity.RoleAdmin, out.Admin.Role, "el primer usuario siempre es admin")
	assert.Equal(t, out.Store.ID, out.Admin.StoreID, "el admin pertenece a la tienda recién creada")

	st, err := stores.GetByID(out.Store.ID)
	require.NoError(t, err)
	require.NotNil(t, st)

	u, err := users.GetByEmail("admin@tienda.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "secreto-muy-largo", u.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegisterStore_NombreDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	registerTestStore(t, uc)

	_, err := uc.RegisterStore(context.Background(), dto.RegisterStoreRequest{
		StoreName: "Tienda Centro",
		Email:     "otra@tienda.com",
		Password:  "secreto-muy-largo",
		Name:      "Otro Admin",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterStore_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	registerTestStore(t, uc)

	_, err := uc.RegisterStore(context.Background(), dto.RegisterStoreRequest{
		StoreName: "Tienda Norte",
		Email:     "admin@tienda.com",
		Password:  "secreto-muy-largo",
		Name:      "Otro Admin",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestAddEmployee_RolFijoYTiendaDelAdmin(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	reg := registerTestStore(t, uc)

	principal := entity.Principal{
		UserID:  reg.Admin.ID,
		StoreID: reg.Store.ID,
		Role:    entity.RoleAdmin,
	}
	emp, err := uc.AddEmployee(principal, dto.AddEmployeeRequest{
		Email:    "empleado@tienda.com",
		Password: "otro-secreto-largo",
		Name:     "Eva Empleada",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEmployee, emp.Role, "el rol siempre queda en employee")
	assert.Equal(t, reg.Store.ID, emp.StoreID, "el store_id sale del principal, no del body")
}

func TestAddEmployee_EmpleadoNoPuedeAgregar(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	reg := registerTestStore(t, uc)

	principal := entity.Principal{
		UserID:  "otro-usuario",
		StoreID: reg.Store.ID,
		Role:    entity.RoleEmployee,
	}
	_, err := uc.AddEmployee(principal, dto.AddEmployeeRequest{
		Email:    "empleado@tienda.com",
		Password: "otro-secreto-largo",
		Name:     "Eva Empleada",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAddEmployee_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	reg := registerTestStore(t, uc)

	principal := entity.Principal{UserID: reg.Admin.ID, StoreID: reg.Store.ID, Role: entity.RoleAdmin}
	_, err := uc.AddEmployee(principal, dto.AddEmployeeRequest{
		Email:    "admin@tienda.com", // ya registrado como admin
		Password: "otro-secreto-largo",
		Name:     "Eva Empleada",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenLlevaClaimsDelUsuario(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	reg := registerTestStore(t, uc)

	out, err := uc.Login(dto.LoginRequest{
		Email:    "admin@tienda.com",
		Password: "secreto-muy-largo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, storeID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.Admin.ID, userID)
	assert.Equal(t, reg.Store.ID, storeID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)
	registerTestStore(t, uc)

	_, err := uc.Login(dto.LoginRequest{
		Email:    "admin@tienda.com",
		Password: "password-equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{
		Email:    "nadie@tienda.com",
		Password: "da-igual",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoForbidden(t *testing.T) {
	uc, _, users := buildAuthUseCase(t)
	registerTestStore(t, uc)

	u, err := users.GetByEmail("admin@tienda.com")
	require.NoError(t, err)
	u.Status = "inactive"
	require.NoError(t, users.Update(u))

	_, err = uc.Login(dto.LoginRequest{
		Email:    "admin@tienda.com",
		Password: "secreto-muy-largo",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
