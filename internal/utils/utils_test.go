package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEpley1RM(t *testing.T) {
	assert.Equal(t, 0.0, CalculateEpley1RM(100, 0))
	assert.Equal(t, 0.0, CalculateEpley1RM(0, 5))
	assert.InDelta(t, 116.67, CalculateEpley1RM(100, 5), 0.01)
	assert.InDelta(t, 103.33, CalculateEpley1RM(100, 1), 0.01)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "22/08/2025", FormatDate("2025-08-22"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}

func TestFormatSaoPaulo(t *testing.T) {
	ts := time.Date(2025, 8, 22, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "22/08/2025 12:00", FormatSaoPaulo(ts))
}

func TestParseTemplatesFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	content := `
[[template]]
id = "full"
name = "Treino D - Full Body"
description = "Corpo inteiro"
duration = "50 min"

  [[template.exercise]]
  name = "Agachamento"
  sets = 3
  reps = "8-10"
  rest = "120s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	templates, err := ParseTemplatesFromTOML(path)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "full", templates[0].ID)
	require.Len(t, templates[0].Exercises, 1)
	assert.Equal(t, 3, templates[0].Exercises[0].Sets)
}

func TestSetupLoggerLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	var buf bytes.Buffer
	SetupLoggerTo(&buf, "debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	SetupLoggerTo(&buf, "bogus")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
