package commerce

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// ProductoUseCase casos de uso de inventario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. El SKU es único por tenant.
func (uc *ProductoUseCase) Create(ctx context.Context, tenantID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.SKU == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, tenantID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		SKU:         in.SKU,
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		Precio:      in.Precio,
		Costo:       in.Costo,
		Stock:       in.Stock,
		StockMinimo: in.StockMinimo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID devuelve un producto del tenant o ErrNotFound.
func (uc *ProductoUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// List lista el inventario del tenant.
func (uc *ProductoUseCase) List(ctx context.Context, tenantID string, limit, offset int) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Update PATCH parcial de un producto. El stock no se toca aquí: los
// movimientos pasan por AdjustStock.
func (uc *ProductoUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.Precio != nil {
		producto.Precio = *in.Precio
	}
	if in.Costo != nil {
		producto.Costo = *in.Costo
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimo = *in.StockMinimo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// AdjustStock aplica un delta con signo sobre el stock. Un delta que dejaría
// el stock negativo se rechaza con ErrConflict.
func (uc *ProductoUseCase) AdjustStock(ctx context.Context, tenantID, id string, in dto.AdjustStockRequest) (*dto.ProductoResponse, error) {
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.repo.AdjustStock(ctx, tenantID, id, in.Delta)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto del tenant.
func (uc *ProductoUseCase) Delete(ctx context.Context, tenantID, id string) error {
	producto, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Costo:       p.Costo,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
		BajoStock:   p.BajoStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
