package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

// VerificationMode controls how much a cached token is trusted.
type VerificationMode string

const (
	// VerifyNone returns any cached token as-is.
	VerifyNone VerificationMode = "none"
	// VerifyExpiry rejects JWTs whose exp has passed. Opaque tokens pass.
	VerifyExpiry VerificationMode = "expiry"
	// VerifyRemote applies the expiry check then asks the identity provider.
	VerifyRemote VerificationMode = "remote"
)

// ParseVerificationMode validates s.
func ParseVerificationMode(s string) (VerificationMode, error) {
	switch m := VerificationMode(s); m {
	case VerifyNone, VerifyExpiry, VerifyRemote:
		return m, nil
	case "":
		return VerifyExpiry, nil
	default:
		return "", fmt.Errorf("unknown verification mode %q", s)
	}
}

// DiscoveryRecorder persists Cognito IDs found by naming convention.
type DiscoveryRecorder interface {
	RecordCognitoIDs(ctx context.Context, userPoolID, clientID string) error
}

// Provider hands out bearer tokens, preferring the copy cached in the secret
// store and falling back to a direct sign-in.
type Provider struct {
	secrets  SecretStore
	idp      IdentityProvider
	recorder DiscoveryRecorder
	metrics  *metrics.Metrics
	log      logger.Logger

	mode VerificationMode
	skew time.Duration
	now  func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithVerificationMode sets the cached-token check. Default VerifyExpiry.
func WithVerificationMode(m VerificationMode) Option {
	return func(p *Provider) { p.mode = m }
}

// WithExpirySkew treats tokens expiring within d as expired.
func WithExpirySkew(d time.Duration) Option {
	return func(p *Provider) { p.skew = d }
}

// WithDiscoveryRecorder persists discovered Cognito IDs.
func WithDiscoveryRecorder(r DiscoveryRecorder) Option {
	return func(p *Provider) { p.recorder = r }
}

// WithMetrics records token sources and write failures.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

func withClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// NewProvider builds a Provider. Either dependency may be nil when AWS is not
// configured; GetToken then reports ErrCredentialUnavailable.
func NewProvider(secrets SecretStore, idp IdentityProvider, log logger.Logger, opts ...Option) *Provider {
	p := &Provider{
		secrets: secrets,
		idp:     idp,
		log:     log,
		mode:    VerifyExpiry,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetToken returns a bearer token without the "Bearer " prefix.
func (p *Provider) GetToken(ctx context.Context, cc CredentialContext) (string, error) {
	log := p.log.WithFields(logger.SecretNameField(cc.SecretName))

	fields, token, readOK := p.cached(ctx, log, cc.SecretName)
	if token != "" {
		err := p.verify(ctx, token)
		if err == nil {
			log.Debug("Using cached bearer token", logger.MaskedField("token", token))
			p.metrics.ObserveToken(metrics.TokenSourceCache)
			return token, nil
		}
		log.Info("Cached bearer token rejected, signing in", logger.ErrorField(err))
	}

	return p.mint(ctx, log, cc, fields, readOK)
}

// Refresh skips the cache and signs in again, replacing the cached token.
func (p *Provider) Refresh(ctx context.Context, cc CredentialContext) (string, error) {
	log := p.log.WithFields(logger.SecretNameField(cc.SecretName))
	fields, _, readOK := p.cached(ctx, log, cc.SecretName)
	return p.mint(ctx, log, cc, fields, readOK)
}

// cached reads the secret. Read failures are logged and treated as a miss;
// readOK is false only when the read itself failed, so the stored fields are
// unknown.
func (p *Provider) cached(ctx context.Context, log logger.Logger, name string) (fields map[string]any, token string, readOK bool) {
	if p.secrets == nil || name == "" {
		return nil, "", true
	}
	raw, found, err := p.secrets.GetSecret(ctx, name)
	if err != nil {
		log.Warn("Failed to read cached bearer token", logger.ErrorField(err))
		return nil, "", false
	}
	if !found {
		log.Debug("No cached bearer token")
		return nil, "", true
	}
	token, fields = parseSecret(raw)
	return fields, token, true
}

func (p *Provider) verify(ctx context.Context, token string) error {
	if p.mode == VerifyNone {
		return nil
	}
	if tokenExpired(token, p.now(), p.skew) {
		return errors.New("token expired")
	}
	if p.mode == VerifyRemote {
		if p.idp == nil {
			return errors.New("no identity provider to verify against")
		}
		return p.idp.VerifyToken(ctx, token)
	}
	return nil
}

func (p *Provider) mint(ctx context.Context, log logger.Logger, cc CredentialContext, fields map[string]any, readOK bool) (string, error) {
	token, err := p.authenticate(ctx, log, cc)
	if err != nil {
		p.metrics.ObserveToken(metrics.TokenSourceFailed)
		log.Error("Failed to obtain bearer token", logger.ErrorField(err))
		return "", fmt.Errorf("%w: %w", ErrCredentialUnavailable, err)
	}
	p.metrics.ObserveToken(metrics.TokenSourceIdentity)
	log.Info("Obtained bearer token from identity provider", logger.MaskedField("token", token))

	p.persist(ctx, log, cc, fields, readOK, token)
	return token, nil
}

func (p *Provider) authenticate(ctx context.Context, log logger.Logger, cc CredentialContext) (string, error) {
	if p.idp == nil {
		return "", errors.New("identity provider not configured")
	}
	if cc.Username == "" || cc.Password == "" {
		return "", errors.New("cognito test_username and test_password are required to sign in")
	}

	clientID := cc.ClientID
	if clientID == "" {
		var err error
		if clientID, err = p.discoverClientID(ctx, log, cc); err != nil {
			return "", err
		}
	}

	token, err := p.idp.Authenticate(ctx, clientID, cc.Username, cc.Password)
	if err != nil {
		return "", err
	}
	return NormalizeToken(token), nil
}

func (p *Provider) discoverClientID(ctx context.Context, log logger.Logger, cc CredentialContext) (string, error) {
	poolID := cc.UserPoolID
	if poolID == "" {
		id, found, err := p.idp.FindUserPoolID(ctx, cc.UserPoolName)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("user pool %q not found", cc.UserPoolName)
		}
		poolID = id
	}

	clientID, found, err := p.idp.FindClientID(ctx, poolID, cc.ClientName)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("user pool client %q not found in %s", cc.ClientName, poolID)
	}

	log.Info("Discovered Cognito client",
		logger.StringField("user_pool_id", poolID),
		logger.StringField("client_id", clientID))
	if p.recorder != nil {
		if err := p.recorder.RecordCognitoIDs(ctx, poolID, clientID); err != nil {
			log.Warn("Failed to persist discovered Cognito IDs", logger.ErrorField(err))
		}
	}
	return clientID, nil
}

// persist writes token back to the secret store, keeping the secret's other
// keys. When the earlier read failed the secret is read again first, and the
// write is skipped if that read fails too. Failures are logged and counted;
// the caller still gets the token.
func (p *Provider) persist(ctx context.Context, log logger.Logger, cc CredentialContext, fields map[string]any, readOK bool, token string) {
	if p.secrets == nil || cc.SecretName == "" {
		return
	}

	fail := func(err error) {
		p.metrics.ObserveSecretWriteFailure()
		log.Warn("Failed to cache bearer token", logger.ErrorField(err))
	}

	if !readOK {
		raw, found, err := p.secrets.GetSecret(ctx, cc.SecretName)
		if err != nil {
			fail(fmt.Errorf("secret unreadable, not overwriting: %w", err))
			return
		}
		if found {
			_, fields = parseSecret(raw)
		}
	}

	value, err := encodeSecret(fields, token)
	if err != nil {
		fail(err)
		return
	}
	exists, err := p.secrets.SecretExists(ctx, cc.SecretName)
	if err != nil {
		fail(err)
		return
	}
	if exists {
		err = p.secrets.PutSecret(ctx, cc.SecretName, value)
	} else {
		err = p.secrets.CreateSecret(ctx, cc.SecretName, value,
			fmt.Sprintf("Bearer token for %s MCP servers", cc.ProjectName))
	}
	if err != nil {
		fail(err)
		return
	}
	log.Debug("Cached bearer token", logger.BoolField("created", !exists))
}
