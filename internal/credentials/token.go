// Package credentials resolves Cognito bearer tokens for remote MCP servers,
// caching them in AWS Secrets Manager.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// Secret JSON keys, in lookup precedence order.
const (
	KeyBearerToken = "bearer_token"
	KeyAccessToken = "access_token"
	KeyIDToken     = "id_token"
	KeyBearerKey   = "bearer_key"
)

var tokenKeys = []string{KeyBearerToken, KeyAccessToken, KeyIDToken}

// ErrCredentialUnavailable means no usable token could be produced.
var ErrCredentialUnavailable = errors.New("credential unavailable")

// CredentialContext is everything needed to fetch or mint a token.
type CredentialContext struct {
	Region       string
	ProjectName  string
	UserPoolID   string
	UserPoolName string
	ClientID     string
	ClientName   string
	Username     string
	Password     string
	SecretName   string
}

// NormalizeToken strips whitespace and any "Bearer " prefix.
func NormalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	return token
}

// AuthorizationValue renders the Authorization header value for token.
func AuthorizationValue(token string) string {
	return bearerPrefix + NormalizeToken(token)
}

// AuthHeaders returns the headers sent to authenticated MCP endpoints.
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": AuthorizationValue(token),
		"Content-Type":  "application/json",
	}
}

// parseSecret extracts a token from a secret payload. JSON objects are
// searched by key precedence; anything else is taken as the raw token.
func parseSecret(payload string) (string, map[string]any) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return "", nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return NormalizeToken(trimmed), nil
	}
	for _, key := range tokenKeys {
		if v, ok := fields[key].(string); ok && strings.TrimSpace(v) != "" {
			return NormalizeToken(v), fields
		}
	}
	return "", fields
}

// encodeSecret writes token into fields, keeping every other key.
func encodeSecret(fields map[string]any, token string) (string, error) {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[KeyBearerToken] = NormalizeToken(token)
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode secret: %w", err)
	}
	return string(data), nil
}

// tokenExpired reports whether a JWT's exp claim is at or before now+skew.
// Signatures are not checked. Tokens that are not JWTs, or carry no exp, are
// treated as unexpired.
func tokenExpired(token string, now time.Time, skew time.Duration) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(now.Add(skew))
}
