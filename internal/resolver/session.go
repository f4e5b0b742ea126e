package resolver

import (
	"context"

	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
)

// Session caches lookups for the lifetime of one caller, typically one chat
// session or one HTTP request. It is not safe for concurrent use.
type Session struct {
	gatewayURL string
	tokens     map[string]string
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{tokens: make(map[string]string)}
}

// Forget drops cached tokens, e.g. after the server rejected one.
func (s *Session) Forget() {
	s.tokens = make(map[string]string)
}

func (s *Session) token(ctx context.Context, src TokenSource, cc credentials.CredentialContext) (string, bool, error) {
	if t, ok := s.tokens[cc.SecretName]; ok {
		return t, true, nil
	}
	t, err := src.GetToken(ctx, cc)
	if err != nil {
		return "", false, err
	}
	t = credentials.NormalizeToken(t)
	s.tokens[cc.SecretName] = t
	return t, false, nil
}
