package entity

import "time"

// RefreshToken es la credencial de larga vida. El valor opaco nunca se
// persiste: solo su hash SHA-256. Máquina de estados: issued → revoked;
// la revocación es terminal. UsedAt y ReplacedBy soportan la rotación:
// el reuso de un token ya rotado revoca la cadena completa.
type RefreshToken struct {
	ID         string
	UserID     string
	TenantID   string
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
	UsedAt     *time.Time
	ReplacedBy string // id del token emitido al rotar este
}

// Revoked informa si el token fue revocado.
func (t *RefreshToken) Revoked() bool { return t.RevokedAt != nil }

// Expired informa si el token venció respecto de now.
func (t *RefreshToken) Expired(now time.Time) bool { return now.After(t.ExpiresAt) }

// Usable informa si el token puede canjearse por un access token.
func (t *RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked() && !t.Expired(now) && t.UsedAt == nil
}
