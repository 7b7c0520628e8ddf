package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
	"github.com/arteideas/backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
}

// dummyHash se compara cuando el usuario no existe, para que el tiempo de
// respuesta no revele si el username está registrado.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthUseCase casos de uso de autenticación: login, refresh, revoke y
// operaciones de credenciales del propio usuario.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	tokenRepo  repository.RefreshTokenRepository
	jwtCfg     JWTConfig
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, tokenRepo repository.RefreshTokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		tokenRepo:  tokenRepo,
		jwtCfg:     jwtCfg,
		now:        time.Now,
	}
}

// Login verifica username/password y emite el par access/refresh.
// El fallo por usuario inexistente y por password incorrecto es el mismo
// error, con una comparación bcrypt en ambos caminos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrForbidden
	}

	tenantID, roles, err := uc.resolveTenant(ctx, user.ID, in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant, err := uc.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, err
	} else if tenant == nil || !tenant.IsActive() {
		return nil, domain.ErrTenantSuspended
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, tenantID, roles, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.issueRefresh(ctx, user.ID, tenantID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Access:  access,
		Refresh: refresh,
		User: dto.UserResponse{
			ID: user.ID, Username: user.Username, Email: user.Email,
			Name: user.Name, Status: user.Status,
			CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

// Refresh canjea un refresh token por un nuevo access token, rotando el
// refresh. El reuso de un token ya rotado revoca la cadena completa.
func (uc *AuthUseCase) Refresh(ctx context.Context, raw string) (*dto.RefreshResponse, error) {
	if raw == "" {
		return nil, domain.ErrInvalidToken
	}
	stored, err := uc.tokenRepo.GetByHash(ctx, hashToken(raw))
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked() || stored.Expired(uc.now()) {
		return nil, domain.ErrInvalidToken
	}
	if stored.UsedAt != nil {
		// Reuso detectado: toda la cadena queda revocada.
		if err := uc.tokenRepo.RevokeChain(ctx, stored.ID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive() {
		return nil, domain.ErrInvalidToken
	}
	roles, err := uc.rolesFor(ctx, user.ID, stored.TenantID)
	if err != nil {
		return nil, err
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, stored.TenantID, roles, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	next, nextEntity, err := uc.mintRefresh(stored.UserID, stored.TenantID)
	if err != nil {
		return nil, err
	}
	if err := uc.tokenRepo.Create(ctx, nextEntity); err != nil {
		return nil, err
	}
	if err := uc.tokenRepo.MarkUsed(ctx, stored.ID, nextEntity.ID); err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access, Refresh: next}, nil
}

// Revoke revoca un refresh token. Idempotente: revocar un token desconocido
// o ya revocado no es error; tras retornar, ningún Refresh con él prospera.
func (uc *AuthUseCase) Revoke(ctx context.Context, raw string) error {
	stored, err := uc.tokenRepo.GetByHash(ctx, hashToken(raw))
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}
	return uc.tokenRepo.Revoke(ctx, stored.ID)
}

// ChangePassword verifica la contraseña actual y fija la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

// ChangeEmail verifica la contraseña y fija el nuevo email si está libre.
func (uc *AuthUseCase) ChangeEmail(ctx context.Context, userID string, in dto.ChangeEmailRequest) error {
	if in.NewEmail == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.NewEmail)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != userID {
		return domain.ErrEmailAlreadyExists
	}
	user.Email = in.NewEmail
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

// resolveTenant elige el tenant del token: el pedido explícitamente (si hay
// membresía o el usuario es super admin) o la primera membresía.
func (uc *AuthUseCase) resolveTenant(ctx context.Context, userID, requested string) (string, []string, error) {
	memberships, err := uc.userRepo.ListMemberships(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if len(memberships) == 0 {
		return "", nil, domain.ErrForbidden
	}
	super := false
	for _, m := range memberships {
		if m.Role == entity.RoleSuperAdmin {
			super = true
		}
	}
	tenantID := requested
	if tenantID == "" {
		tenantID = memberships[0].TenantID
	}
	roles := rolesIn(memberships, tenantID)
	if super && !contains(roles, entity.RoleSuperAdmin) {
		roles = append(roles, entity.RoleSuperAdmin)
	}
	if len(roles) == 0 {
		// Tenant pedido sin membresía y sin super admin.
		return "", nil, domain.ErrForbidden
	}
	return tenantID, roles, nil
}

func (uc *AuthUseCase) rolesFor(ctx context.Context, userID, tenantID string) ([]string, error) {
	memberships, err := uc.userRepo.ListMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles := rolesIn(memberships, tenantID)
	for _, m := range memberships {
		if m.Role == entity.RoleSuperAdmin && !contains(roles, entity.RoleSuperAdmin) {
			roles = append(roles, entity.RoleSuperAdmin)
		}
	}
	if len(roles) == 0 {
		return nil, domain.ErrInvalidToken
	}
	return roles, nil
}

// issueRefresh acuña y persiste un refresh token para el usuario.
func (uc *AuthUseCase) issueRefresh(ctx context.Context, userID, tenantID string) (string, error) {
	raw, tok, err := uc.mintRefresh(userID, tenantID)
	if err != nil {
		return "", err
	}
	if err := uc.tokenRepo.Create(ctx, tok); err != nil {
		return "", err
	}
	return raw, nil
}

// mintRefresh genera el valor opaco (256 bits) y su entidad con hash.
func (uc *AuthUseCase) mintRefresh(userID, tenantID string) (string, *entity.RefreshToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, err
	}
	raw := base64.RawURLEncoding.EncodeToString(buf)
	now := uc.now()
	tok := &entity.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TenantID:  tenantID,
		TokenHash: hashToken(raw),
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.RefreshDays) * 24 * time.Hour),
		CreatedAt: now,
	}
	return raw, tok, nil
}

// hashToken devuelve el SHA-256 hex del valor opaco.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func rolesIn(memberships []*entity.Membership, tenantID string) []string {
	var roles []string
	for _, m := range memberships {
		if m.TenantID == tenantID {
			roles = append(roles, m.Role)
		}
	}
	return roles
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
