package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arteideas/backend/pkg/logger"
)

func TestNewWithWriter_NivelConfigurado(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "warn"}, &buf)

	require.Equal(t, zerolog.WarnLevel, l.Level())

	l.Info().Msg("descartado")
	l.Warn().Msg("registrado")

	out := buf.String()
	assert.NotContains(t, out, "descartado")
	assert.Contains(t, out, "registrado")
}

func TestNewWithWriter_NivelInvalidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "verbose"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, l.Level())

	l = logger.NewWithWriter(logger.Config{Env: "production", Level: ""}, &buf)
	assert.Equal(t, zerolog.InfoLevel, l.Level())
}

func TestNewWithWriter_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)

	l.Info().Str("modulo", "commerce").Msg("arranque")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"), "en producción la salida es JSON: %q", line)
	assert.Contains(t, line, `"modulo":"commerce"`)
	assert.Contains(t, line, `"level":"info"`)
}

func TestNewWithWriter_SubloggerConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)

	sub := l.With().Str("tenant_id", "t1").Logger()
	sub.Info().Msg("con contexto")

	assert.Contains(t, buf.String(), `"tenant_id":"t1"`)
}
