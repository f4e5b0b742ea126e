package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	CommonConfig `yaml:",inline"`
	HTTP         HTTPServerConfig `yaml:"http"`
	Metrics      MetricsConfig    `yaml:"metrics"`

	APIKey   string        `env:"API_KEY" yaml:"api_key" required:"true"`
	Debug    bool          `env:"DEBUG" yaml:"debug" default:"false"`
	Features []string      `env:"FEATURES" yaml:"features"`
	Timeout  time.Duration `env:"TIMEOUT" yaml:"timeout" default:"30s"`
}

func (c testConfig) Validate() error {
	if err := c.CommonConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}

// clearEnv blanks every variable the test config reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "HTTP_PORT", "HTTP_READ_TIMEOUT_SECONDS", "HTTP_WRITE_TIMEOUT_SECONDS",
		"HTTP_IDLE_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS", "HTTP_MAX_REQUEST_BYTES", "METRICS_ENABLED",
		"METRICS_PORT", "API_KEY", "DEBUG", "FEATURES", "TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func defaultHTTP() HTTPServerConfig {
	return HTTPServerConfig{
		Port:                8080,
		ReadTimeoutSeconds:  15,
		WriteTimeoutSeconds: 60,
		IdleTimeoutSeconds:  60,
		CORSAllowedOrigins:  []string{"http://localhost:8501"},
		MaxRequestBytes:     1048576,
	}
}

func TestGetConfigFromEnvVars(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
		want    testConfig
		wantErr bool
	}{
		{
			name:    "All defaults, except required field",
			envVars: map[string]string{"API_KEY": "test-key"},
			want: testConfig{
				CommonConfig: CommonConfig{LogLevel: "info", LogFormat: "json"},
				HTTP:         defaultHTTP(),
				Metrics:      MetricsConfig{Enabled: true},
				APIKey:       "test-key",
				Timeout:      30 * time.Second,
			},
		},
		{
			name: "Override with environment variables",
			envVars: map[string]string{
				"LOG_LEVEL":       "debug",
				"HTTP_PORT":       "3000",
				"API_KEY":         "env-key",
				"DEBUG":           "true",
				"FEATURES":        "feature1, feature2,feature3",
				"TIMEOUT":         "2m",
				"METRICS_ENABLED": "false",
			},
			want: func() testConfig {
				h := defaultHTTP()
				h.Port = 3000
				return testConfig{
					CommonConfig: CommonConfig{LogLevel: "debug", LogFormat: "json"},
					HTTP:         h,
					Metrics:      MetricsConfig{Enabled: false},
					APIKey:       "env-key",
					Debug:        true,
					Features:     []string{"feature1", "feature2", "feature3"},
					Timeout:      2 * time.Minute,
				}
			}(),
		},
		{
			name:    "Missing required field",
			envVars: map[string]string{},
			wantErr: true,
		},
		{
			name:    "Invalid port number",
			envVars: map[string]string{"API_KEY": "test-key", "HTTP_PORT": "99999"},
			wantErr: true,
		},
		{
			name:    "Unparseable duration",
			envVars: map[string]string{"API_KEY": "test-key", "TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			var got testConfig
			err := GetConfigFromEnvVars(&got)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHTTPServerConfigHelpers(t *testing.T) {
	cfg := HTTPServerConfig{
		ReadTimeoutSeconds:  30,
		WriteTimeoutSeconds: 60,
		IdleTimeoutSeconds:  120,
	}

	assert.Equal(t, "30s", cfg.ReadTimeout().String())
	assert.Equal(t, "1m0s", cfg.WriteTimeout().String())
	assert.Equal(t, "2m0s", cfg.IdleTimeout().String())
}

func TestGetConfigWithEnvInterpolation(t *testing.T) {
	clearEnv(t)
	yamlContent := `
log_level: warn
api_key: ${TEST_API_KEY}
debug: ${TEST_DEBUG}
features:
  - ${TEST_FEATURE_1}
  - feature2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	t.Setenv("TEST_API_KEY", "secret-from-env")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_FEATURE_1", "dynamic-feature")

	var cfg testConfig
	require.NoError(t, GetConfig(&cfg, path, false))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "secret-from-env", cfg.APIKey)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"dynamic-feature", "feature2"}, cfg.Features)
}

func TestGetConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: from-file\nlog_level: debug\n"), 0o600))
	t.Setenv("API_KEY", "from-env")

	var cfg testConfig
	require.NoError(t, GetConfig(&cfg, path, false))

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetConfigWithEnvInterpolationUnsetVar(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: ${UNSET_VAR_FOR_TEST}\n"), 0o600))

	var cfg testConfig
	// api_key is required and expands to empty
	assert.Error(t, GetConfig(&cfg, path, false))
}

func TestGetConfigMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "k")
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	var strict testConfig
	assert.Error(t, GetConfig(&strict, missing, false))

	var lenient testConfig
	require.NoError(t, GetConfig(&lenient, missing, true))
	assert.Equal(t, "k", lenient.APIKey)
}

func TestCommonConfigValidation(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     CommonConfig
		wantErr bool
	}{
		{"Valid debug", CommonConfig{LogLevel: "debug", LogFormat: "json"}, false},
		{"Case insensitive", CommonConfig{LogLevel: "DEBUG", LogFormat: "text"}, false},
		{"Invalid level", CommonConfig{LogLevel: "invalid", LogFormat: "json"}, true},
		{"Invalid format", CommonConfig{LogLevel: "info", LogFormat: "xml"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
