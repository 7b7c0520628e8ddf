package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)

// RefreshTokenRepo implementación del puerto RefreshTokenRepository sobre PostgreSQL.
type RefreshTokenRepo struct {
	pool *pgxpool.Pool
}

// NewRefreshTokenRepository construye el adaptador de persistencia para refresh tokens.
func NewRefreshTokenRepository(pool *pgxpool.Pool) *RefreshTokenRepo {
	return &RefreshTokenRepo{pool: pool}
}

const refreshColumns = `id, user_id, tenant_id, token_hash, expires_at, created_at, revoked_at, used_at, replaced_by`

// Create persiste un nuevo refresh token.
func (r *RefreshTokenRepo) Create(ctx context.Context, token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, tenant_id, token_hash, expires_at, created_at, revoked_at, used_at, replaced_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		token.ID, token.UserID, token.TenantID, token.TokenHash, token.ExpiresAt,
		token.CreatedAt, token.RevokedAt, token.UsedAt, nullIfEmpty(token.ReplacedBy),
	)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// GetByHash busca un token por su hash, (nil, nil) si no existe.
func (r *RefreshTokenRepo) GetByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var t entity.RefreshToken
	var replacedBy *string
	err := r.pool.QueryRow(ctx,
		`SELECT `+refreshColumns+` FROM refresh_tokens WHERE token_hash = $1`, tokenHash,
	).Scan(&t.ID, &t.UserID, &t.TenantID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt, &t.UsedAt, &replacedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	if replacedBy != nil {
		t.ReplacedBy = *replacedBy
	}
	return &t, nil
}

// MarkUsed sella el token rotado apuntando a su sucesor.
func (r *RefreshTokenRepo) MarkUsed(ctx context.Context, id, replacedBy string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE refresh_tokens SET used_at = now(), replaced_by = $2 WHERE id = $1 AND used_at IS NULL`,
		id, replacedBy)
	if err != nil {
		return fmt.Errorf("mark refresh token used: %w", err)
	}
	return nil
}

// Revoke revoca un token. Idempotente: un token ya revocado conserva su revoked_at.
func (r *RefreshTokenRepo) Revoke(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeChain revoca el token y todos sus sucesores siguiendo replaced_by.
func (r *RefreshTokenRepo) RevokeChain(ctx context.Context, id string) error {
	query := `
		WITH RECURSIVE cadena AS (
			SELECT id, replaced_by FROM refresh_tokens WHERE id = $1
			UNION ALL
			SELECT rt.id, rt.replaced_by
			FROM refresh_tokens rt
			JOIN cadena c ON rt.id = c.replaced_by
		)
		UPDATE refresh_tokens SET revoked_at = now()
		WHERE id IN (SELECT id FROM cadena) AND revoked_at IS NULL`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("revoke refresh token chain: %w", err)
	}
	return nil
}

// ListRecentByUser devuelve las últimas sesiones del usuario, más reciente primero.
func (r *RefreshTokenRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.RefreshToken, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+refreshColumns+` FROM refresh_tokens WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list refresh tokens: %w", err)
	}
	defer rows.Close()
	var list []*entity.RefreshToken
	for rows.Next() {
		var t entity.RefreshToken
		var replacedBy *string
		if err := rows.Scan(&t.ID, &t.UserID, &t.TenantID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt, &t.UsedAt, &replacedBy); err != nil {
			return nil, fmt.Errorf("scan refresh token: %w", err)
		}
		if replacedBy != nil {
			t.ReplacedBy = *replacedBy
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
