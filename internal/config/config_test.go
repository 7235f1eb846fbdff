package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	body := `
logger:
  active: true
  level: debug
  encoding: console
  mode: stdout
table:
  addrBits: 32
  strides: [8, 8, 8, 8]
  compressed: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.Table.AddrBits)
	assert.True(t, cfg.Table.Compressed)
}

func TestValidateRejectsStrideMismatch(t *testing.T) {
	cfg := &Config{
		Logger: LoggerConfig{Level: "info", Encoding: "console", Mode: "stdout"},
		Table:  TableConfig{AddrBits: 32, Strides: []int{8, 8, 8}},
	}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := &Config{Logger: LoggerConfig{Level: "info", Encoding: "console", Mode: "stdout"}, Table: DefaultIPv4()}
	t.Setenv("ART_PROFILE", "ipv6")
	t.Setenv("ART_COMPRESSED", "true")
	t.Setenv("ART_LOGGER_LEVEL", "debug")

	cfg.ApplyEnvOverrides()
	assert.Equal(t, 128, cfg.Table.AddrBits)
	assert.True(t, cfg.Table.Compressed)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestDefaultSchedulesValidate(t *testing.T) {
	for _, tc := range []TableConfig{DefaultIPv4(), DefaultIPv6()} {
		cfg := &Config{Logger: LoggerConfig{Level: "info", Encoding: "console", Mode: "stdout"}, Table: tc}
		assert.NoError(t, cfg.Validate())
	}
}
