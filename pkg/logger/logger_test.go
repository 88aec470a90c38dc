package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func TestComponentFields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "debug", Service: "tienda-pos"}, &buf)

	comp := l.Component("checkout")
	comp.Info().Str("sale_id", "s-1").Msg("venta registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "tienda-pos", line["service"])
	assert.Equal(t, "checkout", line["component"])
	assert.Equal(t, "s-1", line["sale_id"])
	assert.Equal(t, "info", line["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "warn"}, &buf)
	l.Info().Msg("no aparece")
	assert.Zero(t, buf.Len())
	l.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verbose"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
}
