package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"creditwise/config"
)

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CACHE_BACKEND", "")

	var out bytes.Buffer
	app := newApp(&out)
	err := app.Run(context.Background(), append([]string{"creditwise", "--log-level", "error"}, args...))
	return &out, err
}

func TestScoreCommand_Defaults(t *testing.T) {
	out, err := run(t, "score")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, float64(810), report["score"])
	assert.Equal(t, "Exceptional", report["band"])
}

func TestScoreCommand_Flags(t *testing.T) {
	out, err := run(t, "score", "--card-balance", "200000", "--missed", "1", "--inquiries", "3")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	// 500 + 60 + 40 + 55 + 40 - 10
	assert.Equal(t, float64(685), report["score"])
	assert.Equal(t, "Good", report["band"])
}

func TestScoreCommand_InvalidAmount(t *testing.T) {
	_, err := run(t, "score", "--card-limit", "lots")
	assert.ErrorContains(t, err, "invalid --card-limit")

	_, err = run(t, "score", "--missed=-1")
	assert.ErrorContains(t, err, "missed_payments must be at least 0")
}

func TestSimulateCommand(t *testing.T) {
	out, err := run(t, "simulate", "--pay-card", "30000")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, float64(810), result["baseline_score"])
	assert.Equal(t, float64(785), result["projected_score"])
	assert.Equal(t, float64(-25), result["delta"])
}

func TestSimulateCommand_Alias(t *testing.T) {
	out, err := run(t, "what-if", "--age-inquiries")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, float64(10), result["delta"])
}

func TestFactorsCommand_YAML(t *testing.T) {
	out, err := run(t, "--format", "yaml", "factors")
	require.NoError(t, err)

	var body struct {
		BaseScore int `yaml:"base_score"`
		Factors   []struct {
			Name   string `yaml:"name"`
			Weight int    `yaml:"weight"`
		} `yaml:"factors"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, 500, body.BaseScore)
	require.Len(t, body.Factors, 5)
	assert.Equal(t, "payment_history", body.Factors[0].Name)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "factors")
	assert.ErrorContains(t, err, "unsupported output format")
}
