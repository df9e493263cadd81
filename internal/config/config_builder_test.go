package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Env: ModeDevelopment, Version: "N/A", LogLevel: "debug"},
		Server:  Server{Port: 3000, RequestTimeout: 30 * time.Second, ShutdownTimeout: 10 * time.Second},
		Storage: Storage{DB: DB{Driver: DriverPostgres}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config is
// rejected: there is no default port without the env source.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Server: Server{Port: 4000}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, ModeDevelopment, cfg.App.Env)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

// ── withFlags / withJSON ─────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"env": "production"},
		"server": map[string]any{"port": 4500},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	b.withFlags([]string{"-c", path}).withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, cfg.App.Env)
	assert.Equal(t, 4500, cfg.Server.Port)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}

// ── full chain ───────────────────────────────────────────────────────────────

func TestBuilder_EnvFlagsJSONPriority(t *testing.T) {
	t.Setenv("SERVER_PORT", "3100")
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")

	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-p", "3200", "-config", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 3200, cfg.Server.Port, "flag overrides env")
	assert.Equal(t, "json-version", cfg.App.Version, "json overrides env")
	assert.Equal(t, ModeDevelopment, cfg.App.Env)
}
