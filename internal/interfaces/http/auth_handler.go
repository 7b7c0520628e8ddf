package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/dto"
)

// loginLimiter limita los intentos de login por IP de origen para frenar
// fuerza bruta de credenciales. El mapa no se poda: el universo de IPs que
// ven un backend interno es acotado.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newLoginLimiter(rps rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	lim, okIP := l.limiters[ip]
	if !okIP {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// AuthHandler maneja login, refresh y logout.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	limiter *loginLimiter
}

// NewAuthHandler construye el handler de auth con su limitador de login.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, limiter: newLoginLimiter(rate.Limit(1), 5)}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, tenant_id opcional"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/core/auth/login/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if !h.limiter.allow(c.IP()) {
		return fail(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiados intentos, espere un momento")
	}
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return failFields(c, "username y password son requeridos", map[string]string{
			"username": "requerido",
			"password": "requerido",
		})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Refresh godoc
// @Summary      Canjear refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refresh"
// @Success      200   {object}  dto.RefreshResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/core/auth/refresh/ [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Refresh == "" {
		return failFields(c, "refresh es requerido", map[string]string{"refresh": "requerido"})
	}
	out, err := h.uc.Refresh(c.Context(), in.Refresh)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el refresh token)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogoutRequest  true  "refresh_token"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/core/auth/logout/ [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.LogoutRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	// El campo es obligatorio; revocar dos veces el mismo token no lo es.
	if in.RefreshToken == "" {
		return failFields(c, "refresh_token es requerido", map[string]string{"refresh_token": "requerido"})
	}
	if err := h.uc.Revoke(c.Context(), in.RefreshToken); err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"revoked": true})
}
