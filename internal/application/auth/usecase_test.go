package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users       map[string]*entity.User // por id
	memberships []*entity.Membership
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) AddMembership(ctx context.Context, m *entity.Membership) error {
	f.memberships = append(f.memberships, m)
	return nil
}

func (f *fakeUserRepo) RemoveMembership(ctx context.Context, userID, tenantID string) error {
	return nil
}

func (f *fakeUserRepo) GetMembership(ctx context.Context, userID, tenantID string) (*entity.Membership, error) {
	for _, m := range f.memberships {
		if m.UserID == userID && m.TenantID == tenantID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListMemberships(ctx context.Context, userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: make(map[string]*entity.Tenant)}
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenantRepo) Update(ctx context.Context, t *entity.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*entity.RefreshToken // por id
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (f *fakeTokenRepo) Create(ctx context.Context, t *entity.RefreshToken) error {
	cp := *t
	f.tokens[t.ID] = &cp
	return nil
}

func (f *fakeTokenRepo) GetByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	for _, t := range f.tokens {
		if t.TokenHash == hash {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) MarkUsed(ctx context.Context, id, replacedBy string) error {
	if t, okID := f.tokens[id]; okID && t.UsedAt == nil {
		now := time.Now()
		t.UsedAt = &now
		t.ReplacedBy = replacedBy
	}
	return nil
}

func (f *fakeTokenRepo) Revoke(ctx context.Context, id string) error {
	if t, okID := f.tokens[id]; okID && t.RevokedAt == nil {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}

func (f *fakeTokenRepo) RevokeChain(ctx context.Context, id string) error {
	for id != "" {
		t, okID := f.tokens[id]
		if !okID {
			break
		}
		if t.RevokedAt == nil {
			now := time.Now()
			t.RevokedAt = &now
		}
		id = t.ReplacedBy
	}
	return nil
}

func (f *fakeTokenRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.RefreshToken, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "contraseña-larga"
	testTenantID = "00000000-0000-0000-0000-0000000000aa"
	testUserID   = "00000000-0000-0000-0000-000000000001"
)

func buildAuth(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()
	users := newFakeUserRepo()
	tenants := newFakeTenantRepo()
	tokens := newFakeTokenRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: testUserID, Username: "lucia", Email: "lucia@arteideas.pe",
		PasswordHash: string(hash), Status: entity.UserStatusActive,
	}))
	require.NoError(t, users.AddMembership(context.Background(), &entity.Membership{
		UserID: testUserID, TenantID: testTenantID, Role: entity.RoleStaff,
	}))
	require.NoError(t, tenants.Create(context.Background(), &entity.Tenant{
		ID: testTenantID, Name: "Arte Ideas", Status: entity.TenantStatusActive,
	}))

	uc := auth.NewAuthUseCase(users, tenants, tokens, auth.JWTConfig{
		Secret:        testSecret,
		AccessMinutes: 15,
		RefreshDays:   7,
		Issuer:        "arteideas-test",
	})
	return uc, users, tokens
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmitePar(t *testing.T) {
	uc, _, _ := buildAuth(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)
	assert.Equal(t, "lucia", out.User.Username)
}

// El error por usuario inexistente y por password incorrecto debe ser el
// mismo valor: la respuesta no puede revelar cuál de los dos falló.
func TestLogin_FalloIndistinguible(t *testing.T) {
	uc, _, _ := buildAuth(t)

	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: testPassword})
	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: "otra"})

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errBadPass)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users, _ := buildAuth(t)
	u, _ := users.GetByID(context.Background(), testUserID)
	u.Status = entity.UserStatusInactive

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefresh_RotaElToken(t *testing.T) {
	uc, _, _ := buildAuth(t)
	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: testPassword})
	require.NoError(t, err)

	out, err := uc.Refresh(context.Background(), login.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)
	assert.NotEqual(t, login.Refresh, out.Refresh, "el refresh debe rotar")

	// El token original ya fue canjeado: no puede canjearse otra vez.
	_, err = uc.Refresh(context.Background(), login.Refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// El reuso de un token ya rotado revoca la cadena completa: también el
// sucesor deja de servir.
func TestRefresh_ReusoRevocaLaCadena(t *testing.T) {
	uc, _, _ := buildAuth(t)
	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: testPassword})
	require.NoError(t, err)

	rotated, err := uc.Refresh(context.Background(), login.Refresh)
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), login.Refresh)
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = uc.Refresh(context.Background(), rotated.Refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "el sucesor debe quedar revocado tras el reuso")
}

func TestRevoke_Idempotente(t *testing.T) {
	uc, _, _ := buildAuth(t)
	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, uc.Revoke(context.Background(), login.Refresh))
	require.NoError(t, uc.Revoke(context.Background(), login.Refresh), "revocar dos veces no es error")
	require.NoError(t, uc.Revoke(context.Background(), "token-desconocido"), "revocar un token desconocido no es error")

	_, err = uc.Refresh(context.Background(), login.Refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "tras revocar, el canje debe fallar")
}

func TestChangePassword(t *testing.T) {
	uc, _, _ := buildAuth(t)

	err := uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta", NewPassword: "nueva-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: "corta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: "nueva-contraseña",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "lucia", Password: "nueva-contraseña"})
	assert.NoError(t, err)
}
