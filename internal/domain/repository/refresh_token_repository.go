package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// RefreshTokenRepository persiste credenciales de refresco. Los tokens se
// buscan siempre por hash; el valor opaco nunca toca la base de datos.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	// MarkUsed sella el token rotado apuntando a su sucesor.
	MarkUsed(ctx context.Context, id, replacedBy string) error
	// Revoke es idempotente: revocar un token ya revocado no es error.
	Revoke(ctx context.Context, id string) error
	// RevokeChain revoca el token y todos sus sucesores por ReplacedBy.
	RevokeChain(ctx context.Context, id string) error
	// ListRecentByUser devuelve las últimas sesiones del usuario (actividad de perfil).
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.RefreshToken, error)
}
