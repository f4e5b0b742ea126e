// Package controlplane looks up Bedrock AgentCore runtimes and gateways.
package controlplane

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

// ErrNotFound is returned when a runtime or gateway cannot be located.
var ErrNotFound = errors.New("control plane resource not found")

const pageSize int32 = 100

// API is the subset of the AgentCore control plane client we call.
type API interface {
	ListAgentRuntimes(ctx context.Context, in *bedrockagentcorecontrol.ListAgentRuntimesInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListAgentRuntimesOutput, error)
	ListGateways(ctx context.Context, in *bedrockagentcorecontrol.ListGatewaysInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewaysOutput, error)
	GetGateway(ctx context.Context, in *bedrockagentcorecontrol.GetGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetGatewayOutput, error)
}

// Client wraps the control plane API with name-based lookups.
type Client struct {
	api     API
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewClient wraps api. m may be nil.
func NewClient(api API, m *metrics.Metrics, log logger.Logger) *Client {
	return &Client{api: api, metrics: m, log: log}
}

// RuntimeName is the agent runtime name for a tool: both parts lower-cased,
// dashes replaced with underscores, joined with an underscore.
func RuntimeName(projectName, tool string) string {
	clean := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "-", "_")
	}
	return clean(projectName) + "_" + clean(tool)
}

// RuntimeInvocationURL is the data-plane MCP endpoint of a runtime. The ARN
// is a single path segment, so both ':' and '/' are escaped.
func RuntimeInvocationURL(region, runtimeARN string) string {
	return fmt.Sprintf("https://bedrock-agentcore.%s.amazonaws.com/runtimes/%s/invocations?qualifier=DEFAULT",
		region, url.QueryEscape(runtimeARN))
}

// FindAgentRuntimeARN returns the ARN of the runtime named name.
func (c *Client) FindAgentRuntimeARN(ctx context.Context, name string) (arn string, found bool, err error) {
	defer func() { c.metrics.ObserveLookup("agent_runtime", err) }()

	var next *string
	for {
		out, err := c.api.ListAgentRuntimes(ctx, &bedrockagentcorecontrol.ListAgentRuntimesInput{
			MaxResults: aws.Int32(pageSize),
			NextToken:  next,
		})
		if err != nil {
			return "", false, fmt.Errorf("list agent runtimes: %w", err)
		}
		for _, rt := range out.AgentRuntimes {
			if aws.ToString(rt.AgentRuntimeName) == name {
				c.log.Debug("Found agent runtime",
					logger.StringField("runtime_name", name),
					logger.StringField("runtime_id", aws.ToString(rt.AgentRuntimeId)))
				return aws.ToString(rt.AgentRuntimeArn), true, nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return "", false, nil
		}
		next = out.NextToken
	}
}

// FindGatewayID returns the ID of the gateway named name.
func (c *Client) FindGatewayID(ctx context.Context, name string) (id string, found bool, err error) {
	defer func() { c.metrics.ObserveLookup("gateway_id", err) }()

	var next *string
	for {
		out, err := c.api.ListGateways(ctx, &bedrockagentcorecontrol.ListGatewaysInput{
			MaxResults: aws.Int32(pageSize),
			NextToken:  next,
		})
		if err != nil {
			return "", false, fmt.Errorf("list gateways: %w", err)
		}
		for _, gw := range out.Items {
			if aws.ToString(gw.Name) == name {
				return aws.ToString(gw.GatewayId), true, nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return "", false, nil
		}
		next = out.NextToken
	}
}

// GatewayURL returns the MCP endpoint of a gateway.
func (c *Client) GatewayURL(ctx context.Context, gatewayID string) (gatewayURL string, err error) {
	defer func() { c.metrics.ObserveLookup("gateway_url", err) }()

	out, err := c.api.GetGateway(ctx, &bedrockagentcorecontrol.GetGatewayInput{
		GatewayIdentifier: aws.String(gatewayID),
	})
	if err != nil {
		return "", fmt.Errorf("get gateway %s: %w", gatewayID, err)
	}
	if aws.ToString(out.GatewayUrl) == "" {
		return "", fmt.Errorf("gateway %s has no URL: %w", gatewayID, ErrNotFound)
	}
	return aws.ToString(out.GatewayUrl), nil
}
