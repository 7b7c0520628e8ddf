package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Peticiones HTTP atendidas, por método, ruta y código de estado.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	deprecatedRouteHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deprecated_route_hits_total",
		Help: "Peticiones recibidas por alias de rutas deprecadas.",
	}, []string{"alias", "canonical"})
)

// MetricsMiddleware observa cada petición con su ruta registrada (no el path
// crudo, para acotar la cardinalidad de las series).
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := c.Response().StatusCode()
		httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Deprecated marca un subárbol alias: añade la cabecera Deprecation y cuenta
// el uso para poder retirar el alias con datos. El cuerpo de la respuesta es
// el del handler canónico, byte a byte.
func Deprecated(alias, canonical string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Deprecation", "true")
		deprecatedRouteHits.WithLabelValues(alias, canonical).Inc()
		return c.Next()
	}
}

// MetricsHandler expone el registro de Prometheus vía el adaptor de Fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	}))
}
