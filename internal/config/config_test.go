package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transformgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
max_arity: 3
file_suffix: _gen.go
generate_comments: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxArity)
	assert.Equal(t, "_gen.go", cfg.FileSuffix)
	assert.False(t, cfg.GenerateComments)
	assert.Equal(t, "transform:union", cfg.Directive)
	assert.Equal(t, "info", cfg.LogLevel)

	gc := cfg.GeneratorConfig()
	assert.Equal(t, "_gen.go", gc.FileSuffix)
	assert.False(t, gc.GenerateComments)

	ao := cfg.AnalyzerOptions([]string{"Expr"})
	assert.Equal(t, 3, ao.Schema.MaxArity)
	assert.Equal(t, []string{"Expr"}, ao.Types)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "max_arity: 3\n")
	t.Setenv("TRANSFORMGEN_MAX_ARITY", "5")
	t.Setenv("TRANSFORMGEN_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxArity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"zero arity", "max_arity: 0\n"},
		{"suffix", "file_suffix: _gen.txt\n"},
		{"directive", "directive: \"transform union\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
