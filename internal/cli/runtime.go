package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/awsclients"
	appconfig "github.com/lewisedginton/agentcore_mcp/internal/config"
	"github.com/lewisedginton/agentcore_mcp/internal/controlplane"
	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/internal/storage_manager"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	pkgconfig "github.com/lewisedginton/agentcore_mcp/pkg/config"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

// loadConfig reads the YAML file named by --config-file, overlays the
// environment and applies command-line overrides.
func loadConfig(ctx *cli.Context) (*appconfig.AppConfig, error) {
	cfg := &appconfig.AppConfig{}
	if err := pkgconfig.GetConfig(cfg, ctx.String("config-file"), false); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if ctx.IsSet("project-config") {
		cfg.ProjectConfigPath = ctx.String("project-config")
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}
	return cfg, nil
}

// runtime is the object graph every command works against. The AWS-backed
// members are nil when no region, or no checked credentials, could be found.
type runtime struct {
	cfg     *appconfig.AppConfig
	log     logger.Logger
	metrics *metrics.Metrics

	project    *projectconfig.Store
	userConfig *userconfig.Store

	aws     *awsclients.Clients
	cognito *credentials.CognitoIdentityProvider
	tokens  *credentials.Provider
	control *controlplane.Client

	resolver *resolver.Resolver
}

// newRuntime wires the object graph. checkCredentials makes AWS count as
// unavailable when no credentials resolve; commands that only touch local
// servers skip the check so the SDK credential chain is never walked.
func newRuntime(ctx *cli.Context, checkCredentials bool) (*runtime, error) {
	log := getLogger(ctx)
	cfg, err := loadConfig(ctx)
	if err != nil {
		log.Error("Failed to load config", logger.ErrorField(err))
		return nil, err
	}

	rt := &runtime{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewMetrics(log),
		project: projectconfig.NewStore(cfg.ProjectConfigPath, log),
	}

	rt.aws = rt.loadAWS(ctx, checkCredentials)
	if rt.aws != nil {
		mode, err := credentials.ParseVerificationMode(cfg.Credentials.VerificationMode)
		if err != nil {
			return nil, err
		}
		rt.cognito = credentials.NewCognitoIdentityProvider(rt.aws.Cognito)
		rt.tokens = credentials.NewProvider(
			credentials.NewAWSSecretStore(rt.aws.SecretsManager),
			rt.cognito,
			log,
			credentials.WithVerificationMode(mode),
			credentials.WithExpirySkew(cfg.Credentials.ExpirySkew),
			credentials.WithDiscoveryRecorder(rt.project),
			credentials.WithMetrics(rt.metrics),
		)
		rt.control = controlplane.NewClient(rt.aws.AgentCore, rt.metrics, log)
	}

	files, err := rt.userConfigFiles()
	if err != nil {
		return nil, err
	}
	rt.userConfig = userconfig.NewStore(files, cfg.MCP.UserConfig.FileName, log)

	deps := resolver.Deps{
		Project: rt.project,
		User:    rt.userConfig,
		Metrics: rt.metrics,
		Log:     log,
	}
	if rt.aws != nil {
		deps.Tokens = rt.tokens
		deps.Control = rt.control
	}
	rt.resolver = resolver.New(resolver.Options{
		PythonCommand: cfg.MCP.PythonCommand,
		WorkDir:       cfg.MCP.WorkDir,
		BasicScript:   cfg.MCP.BasicScript,
		DockerURL:     cfg.MCP.DockerURL,
		Enabled:       cfg.MCP.ServerEnabled,
	}, deps)

	return rt, nil
}

// loadAWS builds the AWS clients. The region comes from the app config, then
// config.json, then the SDK's own chain. Without a region, or without
// credentials when checkCredentials is set, nil is returned.
func (rt *runtime) loadAWS(ctx *cli.Context, checkCredentials bool) *awsclients.Clients {
	region := rt.cfg.AWS.Region
	if region == "" {
		if p, err := rt.project.Load(); err == nil {
			region = p.Region
		} else {
			rt.log.Debug("Could not read region from project config", logger.ErrorField(err))
		}
	}

	clients, err := awsclients.Load(ctx.Context, awsclients.Config{
		Region:  region,
		Profile: rt.cfg.AWS.Profile,
		Timeout: rt.cfg.AWS.RequestTimeout,
	})
	if err != nil {
		rt.log.Warn("AWS unavailable, authenticated servers will be omitted", logger.ErrorField(err))
		return nil
	}
	if clients.Config.Region == "" {
		rt.log.Warn("No AWS region configured, authenticated servers will be omitted")
		return nil
	}
	if !checkCredentials {
		return clients
	}
	if clients.Config.Credentials == nil {
		rt.log.Warn("No AWS credentials found, authenticated servers will be omitted")
		return nil
	}
	if _, err := clients.Config.Credentials.Retrieve(ctx.Context); err != nil {
		rt.log.Warn("No AWS credentials found, authenticated servers will be omitted", logger.ErrorField(err))
		return nil
	}
	rt.log.Debug("AWS clients ready", logger.StringField("region", clients.Config.Region))
	return clients
}

func (rt *runtime) userConfigFiles() (storage_manager.FileProvider, error) {
	uc := rt.cfg.MCP.UserConfig
	sm := storage_manager.Config{
		Backend:  storage_manager.BackendType(uc.Backend),
		LocalDir: uc.LocalDir,
		S3Bucket: uc.S3Bucket,
		S3Prefix: uc.S3Prefix,
	}
	if rt.aws != nil {
		sm.S3Client = rt.aws.S3
	}
	files, err := storage_manager.New(sm)
	if err != nil {
		return nil, fmt.Errorf("failed to set up user config storage: %w", err)
	}
	return files, nil
}

// region is the effective AWS region, or "" without AWS.
func (rt *runtime) region() string {
	if rt.aws == nil {
		return ""
	}
	return rt.aws.Config.Region
}
