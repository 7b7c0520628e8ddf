package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/authz"
	"github.com/arteideas/backend/internal/application/commerce"
	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/operations"
	"github.com/arteideas/backend/internal/application/usecase"
	"github.com/arteideas/backend/internal/domain/entity"
	apphttp "github.com/arteideas/backend/internal/interfaces/http"
	pkgjwt "github.com/arteideas/backend/pkg/jwt"
)

// ── Fakes en memoria: solo lo que el árbol de rutas bajo test ejercita ──────

type fakePedidoRepo struct {
	pedidos []*entity.Pedido
}

func (f *fakePedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	f.pedidos = append(f.pedidos, p)
	return nil
}

func (f *fakePedidoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Pedido, error) {
	for _, p := range f.pedidos {
		if p.TenantID == tenantID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePedidoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, nil
}

func (f *fakePedidoRepo) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.TenantID == tenantID && p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) Update(ctx context.Context, p *entity.Pedido) error { return nil }

func (f *fakePedidoRepo) Delete(ctx context.Context, tenantID, id string) error { return nil }

func (f *fakePedidoRepo) NextNumero(ctx context.Context, tenantID string) (string, error) {
	return "PED-000001", nil
}

type fakeProductoRepo struct {
	productos []*entity.Producto
}

func (f *fakeProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	f.productos = append(f.productos, p)
	return nil
}

func (f *fakeProductoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.TenantID == tenantID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductoRepo) GetBySKU(ctx context.Context, tenantID, sku string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.TenantID == tenantID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) Update(ctx context.Context, p *entity.Producto) error { return nil }

func (f *fakeProductoRepo) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*entity.Producto, error) {
	return f.GetByID(ctx, tenantID, id)
}

func (f *fakeProductoRepo) Delete(ctx context.Context, tenantID, id string) error { return nil }

type fakeProduccionRepo struct {
	ordenes []*entity.OrdenProduccion
}

func (f *fakeProduccionRepo) Create(ctx context.Context, o *entity.OrdenProduccion) error {
	f.ordenes = append(f.ordenes, o)
	return nil
}

func (f *fakeProduccionRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.OrdenProduccion, error) {
	for _, o := range f.ordenes {
		if o.TenantID == tenantID && o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeProduccionRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.OrdenProduccion, error) {
	var out []*entity.OrdenProduccion
	for _, o := range f.ordenes {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeProduccionRepo) Update(ctx context.Context, o *entity.OrdenProduccion) error { return nil }

func (f *fakeProduccionRepo) Delete(ctx context.Context, tenantID, id string) error { return nil }

type fakePermRepo struct {
	overrides map[string][]string // tenant_id + "/" + role
}

func (f *fakePermRepo) GetRolePermissions(ctx context.Context, tenantID, role string) ([]string, bool, error) {
	perms, ok := f.overrides[tenantID+"/"+role]
	return perms, ok, nil
}

func (f *fakePermRepo) SetRolePermissions(ctx context.Context, tenantID, role string, permissions []string) error {
	f.overrides[tenantID+"/"+role] = permissions
	return nil
}

type fakeTokenRepo struct {
	revoked map[string]bool
}

func (f *fakeTokenRepo) Create(ctx context.Context, t *entity.RefreshToken) error { return nil }

func (f *fakeTokenRepo) GetByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	tok := &entity.RefreshToken{ID: hash, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour)}
	if f.revoked[hash] {
		now := time.Now()
		tok.RevokedAt = &now
	}
	return tok, nil
}

func (f *fakeTokenRepo) MarkUsed(ctx context.Context, id, replacedBy string) error { return nil }

func (f *fakeTokenRepo) Revoke(ctx context.Context, id string) error {
	f.revoked[id] = true
	return nil
}

func (f *fakeTokenRepo) RevokeChain(ctx context.Context, id string) error {
	f.revoked[id] = true
	return nil
}

func (f *fakeTokenRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.RefreshToken, error) {
	return nil, nil
}

// ── Armado de la app ────────────────────────────────────────────────────────

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testIssuer  = "arteideas-test"
	testUserID  = "00000000-0000-0000-0000-000000000001"
	tenantA     = "00000000-0000-0000-0000-0000000000aa"
	tenantB     = "00000000-0000-0000-0000-0000000000bb"
	pedidoEnA   = "10000000-0000-0000-0000-000000000001"
	pedidoEnB   = "10000000-0000-0000-0000-000000000002"
	clienteEnA  = "20000000-0000-0000-0000-000000000001"
	clienteEnB  = "20000000-0000-0000-0000-000000000002"
	productoEnA = "30000000-0000-0000-0000-000000000001"
	ordenEnA    = "40000000-0000-0000-0000-000000000001"
)

func buildApp(t *testing.T) (*fiber.App, *fakePermRepo) {
	t.Helper()

	pedidos := &fakePedidoRepo{pedidos: []*entity.Pedido{
		{ID: pedidoEnA, TenantID: tenantA, Numero: "PED-000001", ClienteID: clienteEnA,
			Descripcion: "Anuario promoción", Estado: entity.PedidoPendiente},
		{ID: pedidoEnB, TenantID: tenantB, Numero: "PED-000001", ClienteID: clienteEnB,
			Descripcion: "Marcos", Estado: entity.PedidoPendiente},
	}}
	productos := &fakeProductoRepo{productos: []*entity.Producto{
		{ID: productoEnA, TenantID: tenantA, SKU: "MARCO-20X30", Nombre: "Marco 20x30", Stock: 12},
	}}
	ordenes := &fakeProduccionRepo{ordenes: []*entity.OrdenProduccion{
		{ID: ordenEnA, TenantID: tenantA, ClienteID: clienteEnA,
			Descripcion: "Impresión de anuarios", Estado: "pendiente"},
	}}
	permRepo := &fakePermRepo{overrides: map[string][]string{}}

	app := fiber.New(fiber.Config{
		StrictRouting: true,
		ErrorHandler:  apphttp.ErrorHandler,
	})
	app.Use(apphttp.CorrelationMiddleware())
	app.Use(apphttp.TrailingSlashRedirect())

	authUC := auth.NewAuthUseCase(nil, nil, &fakeTokenRepo{revoked: map[string]bool{}}, auth.JWTConfig{
		Secret: testSecret, AccessMinutes: 15, RefreshDays: 7, Issuer: testIssuer,
	})

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		AgendaUC:     crm.NewAgendaUseCase(nil),
		PedidoUC:     commerce.NewPedidoUseCase(pedidos, nil, nil),
		ProductoUC:   commerce.NewProductoUseCase(productos),
		ProduccionUC: operations.NewProduccionUseCase(ordenes, pedidos, nil),
		Permissions:  usecase.NewConfigUseCase(nil, nil, permRepo),
		JWTSecret:    testSecret,
	})
	return app, permRepo
}

func tokenFor(t *testing.T, tenantID string, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, testUserID, tenantID, roles, testIssuer, 15)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

// ── Rutas públicas ──────────────────────────────────────────────────────────

func TestHealth_SinCredenciales(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/core/health/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string            `json:"status"`
		Message string            `json:"message"`
		Modules map[string]string `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "Arte Ideas Core App funcionando correctamente", body.Message)
	assert.Contains(t, body.Modules, "profile")
	assert.Contains(t, body.Modules, "configuration")
}

func TestAgendaDemo_HTMLPublico(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/crm/agenda/demo/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, string(readBody(t, resp)), "Próximos Eventos")
}

func TestAgendaDemoProximos_JSONPublico(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/crm/agenda/proximos-eventos-demo/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Contains(t, body, "eventos")
}

func TestAgendaEventos_SinCredenciales(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/crm/agenda/eventos/", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Reglas del árbol de rutas ───────────────────────────────────────────────

func TestTrailingSlash_Redirige308(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/commerce/pedidos", tokenFor(t, tenantA, entity.RoleStaff))
	require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	assert.Equal(t, "/api/commerce/pedidos/", resp.Header.Get("Location"))
}

func TestMetodoNoPermitido_405ConAllow(t *testing.T) {
	app, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/core/health/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Allow"), "GET")

	var body struct {
		Status string `json:"status"`
		Error  struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
}

func TestRutaDesconocida_404(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/no-existe/", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "error", body.Status)
}

// Cada alias deprecado debe producir exactamente el mismo cuerpo que su ruta
// canónica, distinguiéndose solo por la cabecera Deprecation.
func TestAlias_CuerpoIdentico(t *testing.T) {
	cases := []struct {
		name      string
		canonical string
		alias     string
	}{
		{"pedidos", "/api/commerce/pedidos/", "/api/commerce/orders/"},
		{"inventario", "/api/commerce/inventario/", "/api/commerce/inventory/"},
		{"produccion", "/api/operations/produccion/", "/api/operations/"},
	}
	app, _ := buildApp(t)
	token := tokenFor(t, tenantA, entity.RoleStaff)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			canonical := doGet(t, app, tc.canonical, token)
			alias := doGet(t, app, tc.alias, token)

			require.Equal(t, http.StatusOK, canonical.StatusCode)
			require.Equal(t, canonical.StatusCode, alias.StatusCode)
			assert.Empty(t, canonical.Header.Get("Deprecation"))
			assert.Equal(t, "true", alias.Header.Get("Deprecation"))
			assert.Equal(t, readBody(t, canonical), readBody(t, alias))
		})
	}
}

func TestLegacyOperations_MontajeRaiz(t *testing.T) {
	app, _ := buildApp(t)

	// El montaje legacy exige credenciales igual que el canónico; sin
	// token responde 401, no 404.
	resp := doGet(t, app, "/api/operations/", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Aislamiento por tenant ──────────────────────────────────────────────────

func TestPedidos_FiltradoPorTenant(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/commerce/pedidos/", tokenFor(t, tenantA, entity.RoleStaff))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, pedidoEnA, body.Data[0].ID)
}

// Un id de otro tenant responde 404, no 403: el recurso ajeno debe ser
// indistinguible de uno inexistente.
func TestPedidos_CrossTenant404(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/commerce/pedidos/"+pedidoEnB+"/", tokenFor(t, tenantA, entity.RoleStaff))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPedidos_ClaveLegadaEnRespuesta(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/commerce/pedidos/"+pedidoEnA+"/", tokenFor(t, tenantA, entity.RoleStaff))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Contains(t, body.Data, "cliente_id")
	assert.Contains(t, body.Data, "client_id")
	assert.JSONEq(t, string(body.Data["cliente_id"]), string(body.Data["client_id"]))
}

// X-Tenant solo surte efecto para super admin; para staff se ignora y el
// claim del token manda.
func TestXTenant_SoloSuperAdmin(t *testing.T) {
	app, _ := buildApp(t)

	get := func(authHeader string) []struct {
		ID string `json:"id"`
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/commerce/pedidos/", nil)
		req.Header.Set("Authorization", authHeader)
		req.Header.Set(apphttp.HeaderTenant, tenantB)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
		return body.Data
	}

	super := get(tokenFor(t, tenantA, entity.RoleSuperAdmin))
	require.Len(t, super, 1)
	assert.Equal(t, pedidoEnB, super[0].ID, "el super admin opera sobre el tenant de X-Tenant")

	staff := get(tokenFor(t, tenantA, entity.RoleStaff))
	require.Len(t, staff, 1)
	assert.Equal(t, pedidoEnA, staff[0].ID, "para staff la cabecera se ignora")
}

// ── Permisos por rol ────────────────────────────────────────────────────────

func postJSON(t *testing.T, app *fiber.App, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Por defecto staff tiene commerce de solo lectura: el gate de permiso corta
// la escritura antes de parsear el cuerpo.
func TestPermisos_EscrituraCommercePorDefecto(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/api/commerce/pedidos/", tokenFor(t, tenantA, entity.RoleStaff), `{}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "FORBIDDEN", body.Error.Code)

	// El tenant_admin pasa el gate y cae en la validación del cuerpo.
	resp = postJSON(t, app, "/api/commerce/pedidos/", tokenFor(t, tenantA, entity.RoleTenantAdmin), `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Un override guardado vía config/permissions sí se consulta en el gate, y
// solo aplica al tenant que lo guardó.
func TestPermisos_OverrideDelTenant(t *testing.T) {
	app, permRepo := buildApp(t)

	perms := append([]string{}, authz.DefaultPermissions[entity.RoleStaff]...)
	perms = append(perms, authz.PermCommerceWrite)
	require.NoError(t, permRepo.SetRolePermissions(context.Background(), tenantA, entity.RoleStaff, perms))

	// Con el override, staff pasa el gate; el 400 es de la validación.
	resp := postJSON(t, app, "/api/commerce/pedidos/", tokenFor(t, tenantA, entity.RoleStaff), `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// En otro tenant el override no existe y rige el conjunto por defecto.
	resp = postJSON(t, app, "/api/commerce/pedidos/", tokenFor(t, tenantB, entity.RoleStaff), `{}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPermisos_FinanceVedadoParaStaff(t *testing.T) {
	app, _ := buildApp(t)

	resp := doGet(t, app, "/api/finance/presupuestos/", tokenFor(t, tenantA, entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_Escenarios(t *testing.T) {
	app, _ := buildApp(t)
	token := tokenFor(t, tenantA, entity.RoleStaff)

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/core/auth/logout/", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	// Campo vacío: 400.
	resp := post(`{"refresh_token":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Token presente: 200, y repetir la revocación sigue siendo 200.
	resp = post(`{"refresh_token":"algun-refresh-opaco"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = post(`{"refresh_token":"algun-refresh-opaco"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Sin credenciales el logout no está disponible.
	req := httptest.NewRequest(http.MethodPost, "/api/core/auth/logout/", strings.NewReader(`{"refresh_token":"x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	noAuth, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, noAuth.StatusCode)
}
