package projectconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// Discoverer finds Cognito resources by name.
type Discoverer interface {
	FindUserPoolID(ctx context.Context, poolName string) (string, bool, error)
	FindClientID(ctx context.Context, userPoolID, clientName string) (string, bool, error)
}

// AccountResolver returns the caller's AWS account ID.
type AccountResolver interface {
	AccountID(ctx context.Context) (string, error)
}

// EnsureDefaults fills in everything the provisioning scripts would have
// written: naming-convention defaults, the test user, secret_name and, when
// the lookups are supplied, the discovered pool, client and account IDs.
// Lookup failures are collected and returned after whatever could be filled in
// is saved. It returns the keys it changed.
func (s *Store) EnsureDefaults(ctx context.Context, disc Discoverer, acct AccountResolver) ([]string, error) {
	var changed []string
	var lookupErrs error

	set := func(key string, dst *string, value string) {
		if *dst == "" && value != "" {
			*dst = value
			changed = append(changed, key)
		}
	}

	_, err := s.Update(func(p *Project) error {
		c := p.cognito()
		set("secret_name", &p.SecretName, DefaultSecretName(p.ProjectName))
		set("cognito.user_pool_name", &c.UserPoolName, DefaultUserPoolName(p.ProjectName))
		set("cognito.client_name", &c.ClientName, DefaultClientName(p.ProjectName))
		set("cognito.identity_pool_name", &c.IdentityPoolName, DefaultIdentityPoolName(p.ProjectName))
		set("cognito.test_username", &c.TestUsername, DefaultTestUsername(p.ProjectName))
		set("cognito.test_password", &c.TestPassword, defaultTestPassword)

		if disc != nil && c.UserPoolID == "" {
			id, found, err := disc.FindUserPoolID(ctx, c.UserPoolName)
			switch {
			case err != nil:
				lookupErrs = multierror.Append(lookupErrs, fmt.Errorf("user pool lookup: %w", err))
			case !found:
				s.log.Warn("Cognito user pool not found", logger.StringField("user_pool_name", c.UserPoolName))
			default:
				set("cognito.user_pool_id", &c.UserPoolID, id)
			}
		}
		if disc != nil && c.UserPoolID != "" && c.ClientID == "" {
			id, found, err := disc.FindClientID(ctx, c.UserPoolID, c.ClientName)
			switch {
			case err != nil:
				lookupErrs = multierror.Append(lookupErrs, fmt.Errorf("user pool client lookup: %w", err))
			case !found:
				s.log.Warn("Cognito user pool client not found", logger.StringField("client_name", c.ClientName))
			default:
				set("cognito.client_id", &c.ClientID, id)
			}
		}
		if c.UserPoolID != "" {
			set("cognito.discovery_url", &c.DiscoveryURL, DiscoveryURL(p.Region, c.UserPoolID))
		}

		if acct != nil && p.AccountID == "" {
			id, err := acct.AccountID(ctx)
			if err != nil {
				lookupErrs = multierror.Append(lookupErrs, fmt.Errorf("account lookup: %w", err))
			} else {
				set("accountId", &p.AccountID, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		s.log.Info("Project config defaults written", logger.StringsField("keys", changed))
	}
	return changed, lookupErrs
}
