package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y sus membresías
// por tenant (DIP). Los métodos Get devuelven (nil, nil) cuando no hay fila;
// el caso de uso decide si eso es ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.User, error)

	// Membresías: arista usuario↔tenant con rol.
	AddMembership(ctx context.Context, m *entity.Membership) error
	RemoveMembership(ctx context.Context, userID, tenantID string) error
	GetMembership(ctx context.Context, userID, tenantID string) (*entity.Membership, error)
	ListMemberships(ctx context.Context, userID string) ([]*entity.Membership, error)
}
