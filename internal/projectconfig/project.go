// Package projectconfig reads and writes the deployment's config.json.
//
// The file is shared with the provisioning scripts, so keys this package does
// not know about are carried through every load and save untouched.
package projectconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
)

const (
	DefaultRegion      = "us-west-2"
	DefaultProjectName = "mcp"

	defaultTestPassword = "TestPassword123!"
)

// ErrConfigurationMissing is returned when a key needed for an operation is absent.
var ErrConfigurationMissing = errors.New("configuration missing")

// MissingKeyError names the absent config.json key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("configuration missing: %q is not set in config.json", e.Key)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrConfigurationMissing
}

// Cognito is the nested "cognito" object.
type Cognito struct {
	UserPoolName     string `json:"user_pool_name,omitempty"`
	UserPoolID       string `json:"user_pool_id,omitempty"`
	ClientName       string `json:"client_name,omitempty"`
	ClientID         string `json:"client_id,omitempty"`
	IdentityPoolName string `json:"identity_pool_name,omitempty"`
	IdentityPoolID   string `json:"identity_pool_id,omitempty"`
	TestUsername     string `json:"test_username,omitempty"`
	TestPassword     string `json:"test_password,omitempty"`
	DiscoveryURL     string `json:"discovery_url,omitempty"`

	extra map[string]json.RawMessage
}

// Project is config.json.
type Project struct {
	Region           string   `json:"region,omitempty"`
	ProjectName      string   `json:"projectName,omitempty"`
	AccountID        string   `json:"accountId,omitempty"`
	AgentRuntimeRole string   `json:"agent_runtime_role,omitempty"`
	SecretName       string   `json:"secret_name,omitempty"`
	AgentRuntimeARN  string   `json:"agent_runtime_arn,omitempty"`
	GatewayID        string   `json:"gateway_id,omitempty"`
	GatewayName      string   `json:"gateway_name,omitempty"`
	KnowledgeBaseID  string   `json:"knowledge_base_id,omitempty"`
	Cognito          *Cognito `json:"cognito,omitempty"`

	extra map[string]json.RawMessage
}

type cognitoFields Cognito
type projectFields Project

// UnmarshalJSON keeps unknown keys for the next save.
func (c *Cognito) UnmarshalJSON(data []byte) error {
	var known cognitoFields
	extra, err := splitKnown(data, &known)
	if err != nil {
		return err
	}
	*c = Cognito(known)
	c.extra = extra
	return nil
}

// MarshalJSON writes the known fields over any preserved unknown keys.
func (c Cognito) MarshalJSON() ([]byte, error) {
	return joinKnown(cognitoFields(c), c.extra)
}

// UnmarshalJSON keeps unknown keys for the next save.
func (p *Project) UnmarshalJSON(data []byte) error {
	var known projectFields
	extra, err := splitKnown(data, &known)
	if err != nil {
		return err
	}
	*p = Project(known)
	p.extra = extra
	return nil
}

// MarshalJSON writes the known fields over any preserved unknown keys.
func (p Project) MarshalJSON() ([]byte, error) {
	return joinKnown(projectFields(p), p.extra)
}

// splitKnown decodes data into known and returns the keys known did not claim.
func splitKnown(data []byte, known any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, key := range jsonKeys(reflect.TypeOf(known).Elem()) {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func joinKnown(known any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// jsonKeys lists the json names of t's exported fields, including ones
// omitempty would drop.
func jsonKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// Extra returns a preserved unknown top-level key.
func (p *Project) Extra(key string) (json.RawMessage, bool) {
	v, ok := p.extra[key]
	return v, ok
}

func (p *Project) applyDefaults() {
	if p.Region == "" {
		p.Region = DefaultRegion
	}
	if p.ProjectName == "" {
		p.ProjectName = DefaultProjectName
	}
}

func (p *Project) cognito() *Cognito {
	if p.Cognito == nil {
		p.Cognito = &Cognito{}
	}
	return p.Cognito
}

// Require returns a MissingKeyError when value is empty.
func Require(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return &MissingKeyError{Key: key}
	}
	return nil
}

// DefaultSecretName is the secret used when secret_name is absent.
func DefaultSecretName(projectName string) string {
	return strings.ToLower(projectName) + "/credentials"
}

// DefaultUserPoolName etc. follow the provisioning scripts' naming convention.
func DefaultUserPoolName(projectName string) string { return projectName + "-agentcore-user-pool" }

func DefaultClientName(projectName string) string { return projectName + "-agentcore-client" }

func DefaultIdentityPoolName(projectName string) string {
	return projectName + "-agentcore-identity-pool"
}

func DefaultTestUsername(projectName string) string {
	return projectName + "-test-user@example.com"
}

// DiscoveryURL is the OpenID configuration URL of a user pool.
func DiscoveryURL(region, userPoolID string) string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/openid-configuration", region, userPoolID)
}

// EffectiveGatewayName falls back to the project name.
func (p *Project) EffectiveGatewayName() string {
	if p.GatewayName != "" {
		return p.GatewayName
	}
	return p.ProjectName
}

// CredentialContext gathers what the credential provider needs. SecretName is
// taken verbatim; callers that want the default use WithDefaultSecret.
func (p *Project) CredentialContext() credentials.CredentialContext {
	cc := credentials.CredentialContext{
		Region:      p.Region,
		ProjectName: p.ProjectName,
		SecretName:  p.SecretName,
	}
	if c := p.Cognito; c != nil {
		cc.UserPoolID = c.UserPoolID
		cc.UserPoolName = c.UserPoolName
		cc.ClientID = c.ClientID
		cc.ClientName = c.ClientName
		cc.Username = c.TestUsername
		cc.Password = c.TestPassword
	}
	if cc.UserPoolName == "" {
		cc.UserPoolName = DefaultUserPoolName(p.ProjectName)
	}
	if cc.ClientName == "" {
		cc.ClientName = DefaultClientName(p.ProjectName)
	}
	return cc
}

// WithDefaultSecret returns cc with SecretName defaulted from the project name.
func WithDefaultSecret(cc credentials.CredentialContext) credentials.CredentialContext {
	if cc.SecretName == "" {
		cc.SecretName = DefaultSecretName(cc.ProjectName)
	}
	return cc
}
