package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/arteideas/backend/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testTenant = "00000000-0000-0000-0000-000000000002"
	testIssuer = "arteideas-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, []string{"staff"}, testIssuer, 15)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, claims.UserID)
	assert.Equal(t, testUser, claims.Subject)
	assert.Equal(t, testTenant, claims.TenantID)
	assert.Equal(t, []string{"staff"}, claims.Roles)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "jti debe ser un nonce no vacío")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, nil, testIssuer, 15)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace muerto incluso con la tolerancia
	// de reloj de 30s.
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, nil, testIssuer, -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser, testTenant, nil, testIssuer, 15)
	assert.Error(t, err)
}

func TestClaims_HasRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, []string{"staff", "tenant_admin"}, testIssuer, 15)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.True(t, claims.HasRole("staff"))
	assert.True(t, claims.HasRole("tenant_admin"))
	assert.False(t, claims.HasRole("super_admin"))
}
