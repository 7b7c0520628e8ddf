package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/analytics"
	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/authz"
	"github.com/arteideas/backend/internal/application/commerce"
	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/finance"
	"github.com/arteideas/backend/internal/application/operations"
	"github.com/arteideas/backend/internal/application/usecase"
	"github.com/arteideas/backend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProfileUC      *usecase.ProfileUseCase
	ConfigUC       *usecase.ConfigUseCase
	ClienteUC      *crm.ClienteUseCase
	ContratoUC     *crm.ContratoUseCase
	AgendaUC       *crm.AgendaUseCase
	ActivoUC       *crm.ActivoUseCase
	PedidoUC       *commerce.PedidoUseCase
	ProductoUC     *commerce.ProductoUseCase
	ProduccionUC   *operations.ProduccionUseCase
	ActivoFisicoUC *operations.ActivoFisicoUseCase
	FinanceUC      *finance.FinanceUseCase
	DashboardUC    *analytics.DashboardUseCase
	// Permissions resuelve los permisos efectivos por tenant; en producción
	// es el ConfigUC, que aplica los overrides de config/permissions.
	Permissions PermissionSource
	JWTSecret   string
}

// Router registra el árbol canónico de rutas bajo /api/ más los alias
// deprecados. Las barras finales son canónicas (StrictRouting va activo en la
// app); el middleware de redirección convierte las variantes sin barra en 308.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret)
	tenantMW := TenantMiddleware()
	staff := RequireRole(entity.RoleStaff)
	admin := RequireRole(entity.RoleTenantAdmin)
	super := RequireRole(entity.RoleSuperAdmin)
	perm := func(p string) fiber.Handler { return RequirePermission(deps.Permissions, p) }

	api := app.Group("/api")

	// --- core ---
	core := api.Group("/core")
	core.Get("/health/", Health)

	authHandler := NewAuthHandler(deps.AuthUC)
	core.Post("/auth/login/", authHandler.Login)
	core.Post("/auth/refresh/", authHandler.Refresh)
	core.Post("/auth/logout/", authMW, authHandler.Logout)

	profileHandler := NewProfileHandler(deps.ProfileUC, deps.AuthUC)
	users := core.Group("/users", authMW, tenantMW, staff, perm(authz.PermProfileManage))
	users.Get("/profile/", profileHandler.Get)
	users.Patch("/profile/", profileHandler.Update)
	users.Get("/profile/statistics/", profileHandler.Statistics)
	users.Get("/profile/completion/", profileHandler.Completion)
	users.Get("/profile/activity/", profileHandler.Activity)
	users.Post("/change-password/", profileHandler.ChangePassword)
	users.Post("/change-email/", profileHandler.ChangeEmail)

	configHandler := NewConfigHandler(deps.ConfigUC)
	cfg := core.Group("/config", authMW)
	// Subárboles con ámbito de tenant; /tenants queda fuera del resolver.
	cfgBusiness := cfg.Group("/business", tenantMW, admin, perm(authz.PermBusinessConfig))
	cfgBusiness.Get("/", configHandler.GetBusiness)
	cfgBusiness.Put("/", configHandler.PutBusiness)
	cfgUsers := cfg.Group("/users", tenantMW, admin, perm(authz.PermUsersManage))
	cfgUsers.Get("/", configHandler.ListUsers)
	cfgUsers.Post("/", configHandler.CreateUser)
	cfgUsers.Get("/:user_id/", configHandler.GetUser)
	cfgUsers.Patch("/:user_id/", configHandler.UpdateUser)
	cfgUsers.Delete("/:user_id/", configHandler.DeactivateUser)
	cfg.Get("/roles/", tenantMW, admin, perm(authz.PermRolesManage), configHandler.ListRoles)
	cfgPerms := cfg.Group("/permissions", tenantMW, admin, perm(authz.PermRolesManage))
	cfgPerms.Get("/", configHandler.ListPermissions)
	cfgPerms.Get("/:role/", configHandler.GetRolePermissions)
	cfgPerms.Put("/:role/", configHandler.SetRolePermissions)

	// Administración de tenants: el tenant objetivo viene en el path, no
	// del claim, así que no pasa por el resolver de tenant.
	cfgSuper := cfg.Group("/tenants", super)
	cfgSuper.Get("/", configHandler.ListTenants)
	cfgSuper.Post("/", configHandler.CreateTenant)
	cfgSuper.Get("/:tenant_id/users/", configHandler.ListTenantUsers)

	// --- crm ---
	crmGroup := api.Group("/crm")

	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	crmGroup.Get("/agenda/demo/", agendaHandler.Demo)
	crmGroup.Get("/agenda/proximos-eventos-demo/", agendaHandler.DemoProximos)
	crmRead := perm(authz.PermCRMRead)
	crmWrite := perm(authz.PermCRMWrite)
	agenda := crmGroup.Group("/agenda", authMW, tenantMW, staff)
	agenda.Get("/eventos/", crmRead, agendaHandler.List)
	agenda.Post("/eventos/", crmWrite, agendaHandler.Create)
	agenda.Get("/eventos/:id/", crmRead, agendaHandler.GetByID)
	agenda.Patch("/eventos/:id/", crmWrite, agendaHandler.Update)
	agenda.Delete("/eventos/:id/", crmWrite, agendaHandler.Delete)
	agenda.Get("/proximos/", crmRead, agendaHandler.Proximos)

	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes := crmGroup.Group("/clientes", authMW, tenantMW, staff)
	clientes.Get("/", crmRead, clienteHandler.List)
	clientes.Post("/", crmWrite, clienteHandler.Create)
	clientes.Get("/:id/", crmRead, clienteHandler.GetByID)
	clientes.Patch("/:id/", crmWrite, clienteHandler.Update)
	clientes.Delete("/:id/", crmWrite, clienteHandler.Delete)

	contratoHandler := NewContratoHandler(deps.ContratoUC)
	contratos := crmGroup.Group("/contratos", authMW, tenantMW, staff)
	contratos.Get("/", crmRead, contratoHandler.List)
	contratos.Post("/", crmWrite, contratoHandler.Create)
	contratos.Get("/:id/", crmRead, contratoHandler.GetByID)
	contratos.Patch("/:id/", crmWrite, contratoHandler.Update)
	contratos.Delete("/:id/", crmWrite, contratoHandler.Delete)
	contratos.Get("/:id/pdf/", crmRead, contratoHandler.PDF)

	activoHandler := NewActivoDigitalHandler(deps.ActivoUC)
	activos := crmGroup.Group("/activos", authMW, tenantMW, staff)
	activos.Get("/", crmRead, activoHandler.List)
	activos.Post("/", crmWrite, activoHandler.Create)
	activos.Get("/:id/", crmRead, activoHandler.GetByID)
	activos.Delete("/:id/", crmWrite, activoHandler.Delete)

	// --- commerce ---
	commerceGroup := api.Group("/commerce")

	comRead := perm(authz.PermCommerceRead)
	comWrite := perm(authz.PermCommerceWrite)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	registerPedidos := func(r fiber.Router) {
		r.Get("/", comRead, pedidoHandler.List)
		r.Post("/", comWrite, pedidoHandler.Create)
		r.Get("/:id/", comRead, pedidoHandler.GetByID)
		r.Patch("/:id/", comWrite, pedidoHandler.Update)
		r.Delete("/:id/", comWrite, pedidoHandler.Delete)
	}
	registerPedidos(commerceGroup.Group("/pedidos", authMW, tenantMW, staff))
	registerPedidos(commerceGroup.Group("/orders",
		Deprecated("commerce/orders/", "commerce/pedidos/"), authMW, tenantMW, staff))

	productoHandler := NewProductoHandler(deps.ProductoUC)
	registerInventario := func(r fiber.Router) {
		r.Get("/", comRead, productoHandler.List)
		r.Post("/", comWrite, productoHandler.Create)
		r.Get("/:id/", comRead, productoHandler.GetByID)
		r.Patch("/:id/", comWrite, productoHandler.Update)
		r.Delete("/:id/", comWrite, productoHandler.Delete)
		r.Post("/:id/ajuste/", comWrite, productoHandler.AdjustStock)
	}
	registerInventario(commerceGroup.Group("/inventario", authMW, tenantMW, staff))
	registerInventario(commerceGroup.Group("/inventory",
		Deprecated("commerce/inventory/", "commerce/inventario/"), authMW, tenantMW, staff))

	// --- operations ---
	opsGroup := api.Group("/operations")

	opsRead := perm(authz.PermOperationsRead)
	opsWrite := perm(authz.PermOperationsWrite)
	produccionHandler := NewProduccionHandler(deps.ProduccionUC)
	registerProduccion := func(r fiber.Router) {
		r.Get("/", opsRead, produccionHandler.List)
		r.Post("/", opsWrite, produccionHandler.Create)
		r.Get("/:id/", opsRead, produccionHandler.GetByID)
		r.Patch("/:id/", opsWrite, produccionHandler.Update)
		r.Delete("/:id/", opsWrite, produccionHandler.Delete)
	}
	registerProduccion(opsGroup.Group("/produccion", authMW, tenantMW, staff))

	activoFisicoHandler := NewActivoFisicoHandler(deps.ActivoFisicoUC)
	opsActivos := opsGroup.Group("/activos", authMW, tenantMW, staff)
	opsActivos.Get("/", opsRead, activoFisicoHandler.List)
	opsActivos.Post("/", opsWrite, activoFisicoHandler.Create)
	opsActivos.Get("/:id/", opsRead, activoFisicoHandler.GetByID)
	opsActivos.Patch("/:id/", opsWrite, activoFisicoHandler.Update)
	opsActivos.Delete("/:id/", opsWrite, activoFisicoHandler.Delete)
	opsActivos.Get("/:id/mantenimientos/", opsRead, activoFisicoHandler.ListMantenimientos)
	opsActivos.Post("/:id/mantenimientos/", opsWrite, activoFisicoHandler.CreateMantenimiento)

	repuestos := opsGroup.Group("/repuestos", authMW, tenantMW, staff)
	repuestos.Get("/", opsRead, activoFisicoHandler.ListRepuestos)
	repuestos.Post("/", opsWrite, activoFisicoHandler.CreateRepuesto)

	financiamientos := opsGroup.Group("/financiamientos", authMW, tenantMW, staff)
	financiamientos.Get("/", opsRead, activoFisicoHandler.ListFinanciamientos)
	financiamientos.Post("/", opsWrite, activoFisicoHandler.CreateFinanciamiento)

	// Montaje legacy de producción en la raíz de operations. Las rutas se
	// registran al final y ruta a ruta (no como middleware de grupo, que
	// por prefijo marcaría deprecadas también las canónicas) para que
	// /activos/, /repuestos/ y /financiamientos/ resuelvan antes que :id.
	opsLegacy := Deprecated("operations/", "operations/produccion/")
	opsGroup.Get("/", opsLegacy, authMW, tenantMW, staff, opsRead, produccionHandler.List)
	opsGroup.Post("/", opsLegacy, authMW, tenantMW, staff, opsWrite, produccionHandler.Create)
	opsGroup.Get("/:id/", opsLegacy, authMW, tenantMW, staff, opsRead, produccionHandler.GetByID)
	opsGroup.Patch("/:id/", opsLegacy, authMW, tenantMW, staff, opsWrite, produccionHandler.Update)
	opsGroup.Delete("/:id/", opsLegacy, authMW, tenantMW, staff, opsWrite, produccionHandler.Delete)

	// --- finance ---
	finRead := perm(authz.PermFinanceRead)
	finWrite := perm(authz.PermFinanceWrite)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	fin := api.Group("/finance", authMW, tenantMW, staff)
	fin.Get("/categorias-gasto/", finRead, financeHandler.ListCategorias)
	fin.Post("/categorias-gasto/", finWrite, financeHandler.CreateCategoria)
	fin.Delete("/categorias-gasto/:id/", finWrite, financeHandler.DeleteCategoria)
	fin.Get("/gastos-personal/", finRead, financeHandler.ListGastosPersonal)
	fin.Post("/gastos-personal/", finWrite, financeHandler.CreateGastoPersonal)
	fin.Delete("/gastos-personal/:id/", finWrite, financeHandler.DeleteGastoPersonal)
	fin.Get("/gastos-servicios/", finRead, financeHandler.ListGastosServicio)
	fin.Post("/gastos-servicios/", finWrite, financeHandler.CreateGastoServicio)
	fin.Delete("/gastos-servicios/:id/", finWrite, financeHandler.DeleteGastoServicio)
	fin.Get("/presupuestos/", finRead, financeHandler.ListPresupuestos)
	fin.Post("/presupuestos/", finWrite, financeHandler.CreatePresupuesto)
	fin.Delete("/presupuestos/:id/", finWrite, financeHandler.DeletePresupuesto)

	// --- analytics ---
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	api.Get("/analytics/dashboard/", authMW, tenantMW, staff, perm(authz.PermAnalyticsRead), analyticsHandler.Dashboard)
}
