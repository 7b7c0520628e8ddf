package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// PedidoRepository puerto de persistencia para pedidos.
type PedidoRepository interface {
	Create(ctx context.Context, p *entity.Pedido) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Pedido, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Pedido, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.Pedido, error)
	Update(ctx context.Context, p *entity.Pedido) error
	Delete(ctx context.Context, tenantID, id string) error
	// NextNumero devuelve el siguiente correlativo visible del tenant.
	NextNumero(ctx context.Context, tenantID string) (string, error)
}

// ProductoRepository puerto de persistencia para inventario.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Producto, error)
	GetBySKU(ctx context.Context, tenantID, sku string) (*entity.Producto, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	// AdjustStock suma delta (puede ser negativo) con bloqueo de fila.
	AdjustStock(ctx context.Context, tenantID, id string, delta int) (*entity.Producto, error)
	Delete(ctx context.Context, tenantID, id string) error
}
