package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-api/pkg/logger"
)

func TestNew_NivelWarnSuprimeInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("mensaje info")
	assert.Empty(t, buf.String(), "info debe suprimirse con nivel warn")

	l.Warn().Msg("mensaje warn")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "mensaje warn")
}

func TestNew_NivelPorDefectoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "", Out: &buf})

	l.Debug().Msg("mensaje debug")
	assert.Empty(t, buf.String(), "debug debe suprimirse con el nivel por defecto")

	l.Info().Msg("mensaje info")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	l.Info().Str("app", "ventas-pro").Msg("iniciando")

	out := buf.String()
	assert.Contains(t, out, `"app":"ventas-pro"`)
	assert.Contains(t, out, `"message":"iniciando"`)
}

func TestNew_DevelopmentUsaConsola(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "development", Level: "info", Out: &buf})

	l.Info().Msg("iniciando")

	// ConsoleWriter no emite JSON: el mensaje aparece plano, sin clave "message".
	out := buf.String()
	assert.Contains(t, out, "iniciando")
	assert.NotContains(t, out, `"message"`)
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &buf})

	l.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
