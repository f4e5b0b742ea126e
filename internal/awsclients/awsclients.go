// Package awsclients loads the shared AWS configuration and builds the
// service clients the rest of the module talks to.
package awsclients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Config selects the region and shared-config profile.
type Config struct {
	Region  string
	Profile string
	// Timeout bounds each HTTP request to AWS; zero keeps the SDK default
	Timeout time.Duration
}

// Clients holds one client per service, all built from the same aws.Config.
type Clients struct {
	Config aws.Config

	SecretsManager *secretsmanager.Client
	Cognito        *cognitoidentityprovider.Client
	AgentCore      *bedrockagentcorecontrol.Client
	S3             *s3.Client
	STS            *sts.Client
}

// Load resolves credentials the standard SDK way (env, shared config, IMDS)
// and builds the clients. It does not contact AWS.
func Load(ctx context.Context, cfg Config) (*Clients, error) {
	configOptions := []func(*awsconfig.LoadOptions) error{}
	if cfg.Profile != "" {
		configOptions = append(configOptions, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		configOptions = append(configOptions, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Timeout > 0 {
		configOptions = append(configOptions,
			awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.Timeout)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return FromConfig(awsCfg), nil
}

// FromConfig builds the clients from an existing configuration.
func FromConfig(awsCfg aws.Config) *Clients {
	return &Clients{
		Config:         awsCfg,
		SecretsManager: secretsmanager.NewFromConfig(awsCfg),
		Cognito:        cognitoidentityprovider.NewFromConfig(awsCfg),
		AgentCore:      bedrockagentcorecontrol.NewFromConfig(awsCfg),
		S3:             s3.NewFromConfig(awsCfg),
		STS:            sts.NewFromConfig(awsCfg),
	}
}

// STSAPI is the subset of the STS client we call.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AccountResolver looks up the caller's account ID.
type AccountResolver struct {
	client STSAPI
}

// NewAccountResolver wraps an STS client.
func NewAccountResolver(client STSAPI) *AccountResolver {
	return &AccountResolver{client: client}
}

// AccountID returns the 12-digit account of the current credentials.
func (a *AccountResolver) AccountID(ctx context.Context) (string, error) {
	out, err := a.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("sts get caller identity: %w", err)
	}
	id := aws.ToString(out.Account)
	if id == "" {
		return "", errors.New("sts get caller identity: no account in response")
	}
	return id, nil
}
