package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SaleUseCase es el ledger de ventas: registra ventas contra el stock de un
// producto y acumula la ganancia, de forma transaccional y aislada por tienda.
//
// Reglas que protege:
//   - Sin oversell: Sale.Quantity <= Product.Quantity al momento de registrar,
//     verificado con un UPDATE condicional (guard por filas afectadas) para
//     evitar lost-updates entre ventas concurrentes del mismo producto.
//   - Aislamiento de tenant: un producto de otra tienda es indistinguible de
//     uno inexistente (ErrNotFound, nunca ErrForbidden).
//   - Atomicidad: descuento de stock + acumulación de ganancia + insert de la
//     venta suceden en una sola transacción; cualquier fallo revierte todo.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo}
}

// requireRole verificación de capacidad única para las operaciones del ledger.
func requireRole(p entity.Principal, roles ...string) error {
	if !p.HasRole(roles...) {
		return domain.ErrForbidden
	}
	return nil
}

// RecordSale registra una venta: valida cantidad y rol, descuenta stock con el
// guard anti-oversell, acumula (max_sell_price - purchase_price) * cantidad en
// net_profit e inserta la fila de venta, todo en una transacción.
func (uc *SaleUseCase) RecordSale(ctx context.Context, principal entity.Principal, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if err := requireRole(principal, entity.RoleAdmin, entity.RoleEmployee); err != nil {
		return nil, err
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	soldAt := now
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}

	var out *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Lookup por (id, store_id): un producto de otra tienda no existe
		// desde la perspectiva del caller.
		product, err := productRepo.GetByIDAndStore(in.ProductID, principal.StoreID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		// Descuento condicional: quantity >= pedido verificado en la misma
		// sentencia. Cero filas afectadas = otra venta ganó la carrera.
		applied, err := productRepo.ApplySale(product.ID, principal.StoreID, in.Quantity)
		if err != nil {
			return err
		}
		if !applied {
			return domain.ErrInsufficientStock
		}

		sale := &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			UserID:    principal.UserID,
			StoreID:   principal.StoreID,
			Quantity:  in.Quantity,
			UnitPrice: product.MaxSellPrice,
			SoldAt:    soldAt,
			CreatedAt: now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		out = toSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSale elimina una venta (solo admin) y devuelve las unidades al stock
// del producto en la misma transacción. Si el producto fue eliminado de forma
// independiente, la restauración se omite pero la venta sí se elimina.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, principal entity.Principal, saleID string) error {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return err
	}
	if saleID == "" {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByIDAndStore(saleID, principal.StoreID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		// Restauración best-effort: cero filas afectadas = producto eliminado.
		if _, err := productRepo.RestoreStock(sale.ProductID, sale.StoreID, sale.Quantity); err != nil {
			return err
		}
		return saleRepo.Delete(sale.ID)
	})
}

// GetSale obtiene una venta de la tienda del principal.
func (uc *SaleUseCase) GetSale(principal entity.Principal, saleID string) (*dto.SaleResponse, error) {
	if err := requireRole(principal, entity.RoleAdmin, entity.RoleEmployee); err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByIDAndStore(saleID, principal.StoreID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListSales lista las ventas de la tienda del principal con filtros opcionales.
func (uc *SaleUseCase) ListSales(principal entity.Principal, in dto.ListSalesRequest) (*dto.SaleListResponse, error) {
	if err := requireRole(principal, entity.RoleAdmin, entity.RoleEmployee); err != nil {
		return nil, err
	}
	in.DefaultPage()
	filter := repository.SaleFilter{ProductID: in.ProductID, UserID: in.UserID}
	sales, err := uc.saleRepo.ListByStore(principal.StoreID, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		UserID:    s.UserID,
		StoreID:   s.StoreID,
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice,
		Total:     s.Total(),
		SoldAt:    s.SoldAt,
		CreatedAt: s.CreatedAt,
	}
}
