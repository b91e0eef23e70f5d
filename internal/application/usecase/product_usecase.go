package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. NetProfit no se edita
// por aquí: solo lo mueve el ledger de ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto en la tienda indicada. NetProfit inicia en 0.
func (uc *ProductUseCase) Create(storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !in.PurchasePrice.GreaterThan(decimal.Zero) || !in.MaxSellPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		Name:          in.Name,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		MaxSellPrice:  in.MaxSellPrice,
		Quantity:      in.Quantity,
		NetProfit:     decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la tienda indicada.
func (uc *ProductUseCase) GetByID(storeID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndStore(id, storeID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No toca NetProfit; el stock solo se ajusta
// aquí por correcciones administrativas, nunca por ventas.
func (uc *ProductUseCase) Update(storeID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndStore(id, storeID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.PurchasePrice != nil {
		if !in.PurchasePrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.MaxSellPrice != nil {
		if !in.MaxSellPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MaxSellPrice = *in.MaxSellPrice
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la tienda con paginación.
func (uc *ProductUseCase) List(storeID string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto de la tienda. Las ventas históricas del producto
// se conservan; una eliminación posterior de esas ventas omite la restauración
// de stock (best-effort del ledger).
func (uc *ProductUseCase) Delete(storeID, id string) error {
	product, err := uc.repo.GetByIDAndStore(id, storeID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, storeID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		MaxSellPrice:  p.MaxSellPrice,
		Quantity:      p.Quantity,
		NetProfit:     p.NetProfit,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
