package projectconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscoverer struct {
	pools      map[string]string
	clients    map[string]string
	err        error
	clientCall int
}

func (f *fakeDiscoverer) FindUserPoolID(_ context.Context, name string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	id, ok := f.pools[name]
	return id, ok, nil
}

func (f *fakeDiscoverer) FindClientID(_ context.Context, _, name string) (string, bool, error) {
	f.clientCall++
	id, ok := f.clients[name]
	return id, ok, nil
}

type fakeAccount struct {
	id  string
	err error
}

func (f fakeAccount) AccountID(context.Context) (string, error) { return f.id, f.err }

func TestEnsureDefaultsFillsNamingConvention(t *testing.T) {
	s := writeConfig(t, `{"region": "us-west-2", "projectName": "demo"}`)

	changed, err := s.EnsureDefaults(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Contains(t, changed, "secret_name")
	assert.Contains(t, changed, "cognito.test_password")

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "demo/credentials", p.SecretName)
	assert.Equal(t, "demo-agentcore-user-pool", p.Cognito.UserPoolName)
	assert.Equal(t, "demo-agentcore-client", p.Cognito.ClientName)
	assert.Equal(t, "demo-agentcore-identity-pool", p.Cognito.IdentityPoolName)
	assert.Equal(t, "demo-test-user@example.com", p.Cognito.TestUsername)
	assert.Equal(t, "TestPassword123!", p.Cognito.TestPassword)
	assert.Empty(t, p.Cognito.UserPoolID)
}

func TestEnsureDefaultsDiscoversIDs(t *testing.T) {
	s := writeConfig(t, `{"region": "us-west-2", "projectName": "demo"}`)
	disc := &fakeDiscoverer{
		pools:   map[string]string{"demo-agentcore-user-pool": "us-west-2_pool"},
		clients: map[string]string{"demo-agentcore-client": "client-1"},
	}

	changed, err := s.EnsureDefaults(context.Background(), disc, fakeAccount{id: "123456789012"})
	require.NoError(t, err)
	assert.Contains(t, changed, "cognito.user_pool_id")
	assert.Contains(t, changed, "accountId")

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "us-west-2_pool", p.Cognito.UserPoolID)
	assert.Equal(t, "client-1", p.Cognito.ClientID)
	assert.Equal(t, "123456789012", p.AccountID)
	assert.Equal(t, DiscoveryURL("us-west-2", "us-west-2_pool"), p.Cognito.DiscoveryURL)

	// second run changes nothing
	changed, err = s.EnsureDefaults(context.Background(), disc, fakeAccount{id: "123456789012"})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, 1, disc.clientCall)
}

func TestEnsureDefaultsKeepsExistingValues(t *testing.T) {
	s := writeConfig(t, `{"projectName": "demo", "secret_name": "team/creds",
		"cognito": {"test_username": "me@example.com"}}`)

	_, err := s.EnsureDefaults(context.Background(), nil, nil)
	require.NoError(t, err)

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "team/creds", p.SecretName)
	assert.Equal(t, "me@example.com", p.Cognito.TestUsername)
}

func TestEnsureDefaultsReportsLookupErrorsButSaves(t *testing.T) {
	s := writeConfig(t, `{"projectName": "demo"}`)
	disc := &fakeDiscoverer{err: errors.New("AccessDenied")}

	_, err := s.EnsureDefaults(context.Background(), disc, fakeAccount{err: errors.New("no creds")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user pool lookup")
	assert.Contains(t, err.Error(), "account lookup")

	p, loadErr := s.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, "demo/credentials", p.SecretName)
}
