package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sub-merger/internal/merger"
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

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// config filled with defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3002", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Adapter.RetryCount)
	assert.Equal(t, int64(10<<20), cfg.Adapter.MaxBodyBytes)
	assert.Equal(t, "go-sub-merger", cfg.Adapter.UserAgent)
	assert.False(t, cfg.Adapter.AllowComments)
	assert.Equal(t, merger.DefaultSelectorTags, cfg.Merge.SelectorTags)
	assert.Equal(t, "debug", cfg.App.LogLevel)
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

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:8080"}},
		&StructuredConfig{Adapter: Adapter{RetryCount: 2}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
}

// TestBuild_LaterSourceWins verifies that a later non-zero value overrides
// an earlier one and that zero values do not erase earlier ones.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server: Server{HTTPAddress: "127.0.0.1:8080", RequestTimeout: time.Second},
			Merge:  Merge{SelectorTags: []string{"env"}},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: "127.0.0.1:9090"},
			Merge:  Merge{SelectorTags: []string{"json-a", "json-b"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"json-a", "json-b"}, cfg.Merge.SelectorTags)
}

// TestBuild_ValidationErrors verifies that invalid merged configs are rejected.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown log level",
			cfg:     StructuredConfig{App: App{LogLevel: "loud"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative request timeout",
			cfg:     StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative fetch timeout",
			cfg:     StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative retry count",
			cfg:     StructuredConfig{Adapter: Adapter{RetryCount: -1}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative body limit",
			cfg:     StructuredConfig{Adapter: Adapter{MaxBodyBytes: -1}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty selector tag",
			cfg:     StructuredConfig{Merge: Merge{SelectorTags: []string{"proxy", ""}}},
			wantErr: ErrInvalidMergeConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")
	t.Setenv("ADAPTER_USER_AGENT", "env-agent")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:7000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "env-agent", b.configs[0].Adapter.UserAgent)
}

// TestWithEnv_SetsErrorOnInvalidValue verifies that a malformed variable
// is accumulated into b.err.
func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	t.Setenv("ADAPTER_RETRY_COUNT", "twice")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedConfig verifies that parsed flags are appended.
func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-fetch-retries", "1"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 1, b.configs[0].Adapter.RetryCount)
}

// TestWithFlags_SetsErrorOnInvalidFlag verifies that parse errors are kept.
func TestWithFlags_SetsErrorOnInvalidFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.UserAgent = "json-agent"
	payload.Merge.SelectorTags = []string{"json-tag"}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-agent", b.configs[1].Adapter.UserAgent)
	assert.Equal(t, []string{"json-tag"}, b.configs[1].Merge.SelectorTags)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Adapter.UserAgent = "first"
	last := StructuredJSONConfig{}
	last.Adapter.UserAgent = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Adapter.UserAgent)
}

// TestBuilder_JSONOverridesFlags verifies the full chain priority.
func TestBuilder_JSONOverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.UserAgent = "from-json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-user-agent", "from-flags", "-fetch-retries", "2", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Adapter.UserAgent)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
}
