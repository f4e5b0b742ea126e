package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
)

// MCPConfig holds settings for the MCP servers this service can hand out.
type MCPConfig struct {
	// PythonCommand launches the local basic server
	PythonCommand string `env:"MCP_PYTHON_COMMAND" yaml:"python_command" default:"python"`
	// WorkDir holds the local server scripts; empty means the process working directory
	WorkDir     string `env:"MCP_WORKDIR" yaml:"workdir"`
	BasicScript string `env:"MCP_BASIC_SCRIPT" yaml:"basic_script" default:"mcp_server_basic.py"`

	// DockerURL is where docker-hosted servers listen
	DockerURL string `env:"MCP_DOCKER_URL" yaml:"docker_url" default:"http://127.0.0.1:8000/mcp"`

	// EnabledServers restricts the selectable server names; empty allows all
	EnabledServers []string `env:"MCP_ENABLED_SERVERS" yaml:"enabled_servers"`

	ProbeTimeout time.Duration `env:"MCP_PROBE_TIMEOUT" yaml:"probe_timeout" default:"30s"`

	UserConfig UserConfigStorage `yaml:"user_config"`
}

// UserConfigStorage selects where user_defined_mcp.json lives.
type UserConfigStorage struct {
	Backend  string `env:"USER_CONFIG_BACKEND" yaml:"backend" default:"local"` // "local" or "s3"
	LocalDir string `env:"USER_CONFIG_LOCAL_DIR" yaml:"local_dir" default:"."`
	FileName string `env:"USER_CONFIG_FILE" yaml:"file_name" default:"user_defined_mcp.json"`
	S3Bucket string `env:"USER_CONFIG_S3_BUCKET" yaml:"s3_bucket"`
	S3Prefix string `env:"USER_CONFIG_S3_PREFIX" yaml:"s3_prefix"`
}

// Validate checks the MCP settings.
func (m MCPConfig) Validate() error {
	var result error

	if m.PythonCommand == "" {
		result = multierror.Append(result, fmt.Errorf("python_command must not be empty"))
	}
	if m.BasicScript == "" {
		result = multierror.Append(result, fmt.Errorf("basic_script must not be empty"))
	}
	if u, err := url.Parse(m.DockerURL); err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("docker_url must be an absolute URL, got %q", m.DockerURL))
	}
	if m.ProbeTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("probe_timeout must be greater than 0"))
	}
	if err := m.UserConfig.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

// Validate checks the user config backend settings.
func (s UserConfigStorage) Validate() error {
	var result error
	switch s.Backend {
	case "local":
		if s.LocalDir == "" {
			result = multierror.Append(result, fmt.Errorf("user_config local_dir is required for the local backend"))
		}
	case "s3":
		if s.S3Bucket == "" {
			result = multierror.Append(result, fmt.Errorf("user_config s3_bucket is required for the s3 backend"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("user_config backend must be one of [local, s3], got %q", s.Backend))
	}
	if s.FileName == "" {
		result = multierror.Append(result, fmt.Errorf("user_config file_name must not be empty"))
	}
	return result
}

// ServerEnabled reports whether name may be resolved.
func (m MCPConfig) ServerEnabled(name string) bool {
	if len(m.EnabledServers) == 0 {
		return true
	}
	for _, s := range m.EnabledServers {
		if s == name {
			return true
		}
	}
	return false
}
