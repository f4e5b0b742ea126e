package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	pkgconfig "github.com/lewisedginton/agentcore_mcp/pkg/config"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// Token verification modes applied to cached bearer tokens.
const (
	VerifyNone   = "none"
	VerifyExpiry = "expiry"
	VerifyRemote = "remote"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Service configuration
	ServiceName string `env:"SERVICE_NAME" yaml:"service_name" default:"agentcore-mcp"`
	Version     string `env:"VERSION" yaml:"version" default:"dev"`
	Environment string `env:"ENVIRONMENT" yaml:"environment" default:"development"`

	pkgconfig.CommonConfig `yaml:",inline"`

	HTTP    pkgconfig.HTTPServerConfig `yaml:"http"`
	Metrics pkgconfig.MetricsConfig    `yaml:"metrics"`
	Health  HealthConfig               `yaml:"health"`

	// ProjectConfigPath points at the deployment's config.json
	ProjectConfigPath string `env:"PROJECT_CONFIG_PATH" yaml:"project_config_path" default:"config.json"`

	AWS         AWSConfig         `yaml:"aws"`
	Credentials CredentialsConfig `yaml:"credentials"`
	MCP         MCPConfig         `yaml:"mcp"`
}

// AWSConfig overrides what the default AWS credential chain would pick.
type AWSConfig struct {
	// Region overrides config.json's region when set
	Region         string        `env:"AWS_REGION_OVERRIDE" yaml:"region"`
	Profile        string        `env:"AWS_PROFILE" yaml:"profile"`
	RequestTimeout time.Duration `env:"AWS_REQUEST_TIMEOUT" yaml:"request_timeout" default:"30s"`
}

// CredentialsConfig controls how cached bearer tokens are trusted.
type CredentialsConfig struct {
	VerificationMode string `env:"TOKEN_VERIFICATION_MODE" yaml:"verification_mode" default:"expiry"`
	// ExpirySkew treats tokens this close to expiry as already expired
	ExpirySkew time.Duration `env:"TOKEN_EXPIRY_SKEW" yaml:"expiry_skew" default:"30s"`
}

// Validate validates the configuration and returns an error if invalid
func (c AppConfig) Validate() error {
	var result error

	if err := c.CommonConfig.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.HTTP.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Metrics.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.MCP.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if strings.TrimSpace(c.ProjectConfigPath) == "" {
		result = multierror.Append(result, fmt.Errorf("project_config_path must not be empty"))
	}

	switch c.Credentials.VerificationMode {
	case VerifyNone, VerifyExpiry, VerifyRemote:
	default:
		result = multierror.Append(result, fmt.Errorf("verification_mode must be one of [none, expiry, remote], got %q", c.Credentials.VerificationMode))
	}
	if c.Credentials.ExpirySkew < 0 {
		result = multierror.Append(result, fmt.Errorf("expiry_skew cannot be negative"))
	}
	if c.AWS.RequestTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("aws request_timeout must be greater than 0"))
	}

	return result
}

// GetLogLevel returns the parsed logger level
func (c AppConfig) GetLogLevel() logger.Level {
	return logger.ParseLevel(c.LogLevel)
}

// IsProduction returns true if running in production environment
func (c AppConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == "production"
}

// NewLogger builds the service logger from the logging settings.
func (c AppConfig) NewLogger() logger.Logger {
	return logger.NewLogger(logger.Config{
		Level:   c.GetLogLevel(),
		Format:  c.LogFormat,
		Service: c.ServiceName,
	})
}

// LogConfig logs the current configuration (without sensitive data)
func (c AppConfig) LogConfig(log logger.Logger) {
	log.Info("Application configuration loaded",
		logger.StringField("service_name", c.ServiceName),
		logger.StringField("version", c.Version),
		logger.StringField("environment", c.Environment),
		logger.IntField("http_port", c.HTTP.Port),
		logger.StringField("log_level", c.LogLevel),
		logger.StringField("project_config_path", c.ProjectConfigPath),
		logger.StringField("verification_mode", c.Credentials.VerificationMode),
		logger.StringField("user_config_backend", c.MCP.UserConfig.Backend),
		logger.BoolField("metrics_enabled", c.Metrics.Enabled),
	)
}
