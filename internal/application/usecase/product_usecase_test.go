package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// memProductRepo fake en memoria, sin concurrencia: estos tests son secuenciales.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByIDAndStore(id, storeID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.StoreID != storeID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.StoreID == storeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id, storeID string) error {
	if p, ok := r.products[id]; ok && p.StoreID == storeID {
		delete(r.products, id)
	}
	return nil
}

func (r *memProductRepo) ApplySale(productID, storeID string, quantity int64) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.StoreID != storeID || p.Quantity < quantity {
		return false, nil
	}
	p.Quantity -= quantity
	margin := p.MaxSellPrice.Sub(p.PurchasePrice)
	p.NetProfit = p.NetProfit.Add(margin.Mul(decimal.NewFromInt(quantity)))
	return true, nil
}

func (r *memProductRepo) RestoreStock(productID, storeID string, quantity int64) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.StoreID != storeID {
		return false, nil
	}
	p.Quantity += quantity
	return true, nil
}

const testStore = "00000000-0000-0000-0000-0000000000aa"

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Camisa básica",
		Category:      "ropa",
		PurchasePrice: decimal.NewFromInt(10),
		MaxSellPrice:  decimal.NewFromInt(20),
		Quantity:      5,
	}
}

func TestProductCreate_NetProfitIniciaEnCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(testStore, validCreateRequest())
	require.NoError(t, err)

	assert.True(t, out.NetProfit.Equal(decimal.Zero))
	assert.Equal(t, testStore, out.StoreID)
	assert.Equal(t, int64(5), out.Quantity)
}

func TestProductCreate_PreciosInvalidos(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	casos := []struct {
		nombre string
		mut    func(*dto.CreateProductRequest)
	}{
		{"precio de compra cero", func(r *dto.CreateProductRequest) { r.PurchasePrice = decimal.Zero }},
		{"precio de compra negativo", func(r *dto.CreateProductRequest) { r.PurchasePrice = decimal.NewFromInt(-1) }},
		{"precio de venta cero", func(r *dto.CreateProductRequest) { r.MaxSellPrice = decimal.Zero }},
		{"cantidad negativa", func(r *dto.CreateProductRequest) { r.Quantity = -1 }},
	}
	for _, tc := range casos {
		req := validCreateRequest()
		tc.mut(&req)
		_, err := uc.Create(testStore, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.nombre)
	}
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	created, err := uc.Create(testStore, validCreateRequest())
	require.NoError(t, err)

	nuevoNombre := "Camisa premium"
	nuevoPrecio := decimal.NewFromInt(25)
	out, err := uc.Update(testStore, created.ID, dto.UpdateProductRequest{
		Name:         &nuevoNombre,
		MaxSellPrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camisa premium", out.Name)
	assert.True(t, out.MaxSellPrice.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "ropa", out.Category, "los campos no enviados no cambian")
	assert.Equal(t, int64(5), out.Quantity)
}

func TestProductUpdate_PrecioInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	created, err := uc.Create(testStore, validCreateRequest())
	require.NoError(t, err)

	cero := decimal.Zero
	_, err = uc.Update(testStore, created.ID, dto.UpdateProductRequest{MaxSellPrice: &cero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un producto de otra tienda no es visible: GetByID/Update devuelven nil.
func TestProduct_CrossTenantInvisible(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	created, err := uc.Create(testStore, validCreateRequest())
	require.NoError(t, err)

	otraTienda := "00000000-0000-0000-0000-0000000000bb"
	got, err := uc.GetByID(otraTienda, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	nombre := "hackeado"
	upd, err := uc.Update(otraTienda, created.ID, dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, upd)

	err = uc.Delete(otraTienda, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	created, err := uc.Create(testStore, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(testStore, created.ID))

	got, err := uc.GetByID(testStore, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = uc.Delete(testStore, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
