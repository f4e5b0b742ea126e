package credentials

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// SecretStore reads and writes named secrets. Absence is reported through the
// found/exists results rather than an error.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (value string, found bool, err error)
	SecretExists(ctx context.Context, name string) (bool, error)
	PutSecret(ctx context.Context, name, value string) error
	CreateSecret(ctx context.Context, name, value, description string) error
}

// SecretsManagerAPI is the subset of the Secrets Manager client we call.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	DescribeSecret(ctx context.Context, in *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error)
	PutSecretValue(ctx context.Context, in *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	CreateSecret(ctx context.Context, in *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

// AWSSecretStore is a SecretStore backed by AWS Secrets Manager.
type AWSSecretStore struct {
	client SecretsManagerAPI
}

// NewAWSSecretStore wraps a Secrets Manager client.
func NewAWSSecretStore(client SecretsManagerAPI) *AWSSecretStore {
	return &AWSSecretStore{client: client}
}

func isNotFound(err error) bool {
	var nf *types.ResourceNotFoundException
	return errors.As(err, &nf)
}

// GetSecret returns the secret string, or the base64 of a binary secret.
func (s *AWSSecretStore) GetSecret(ctx context.Context, name string) (string, bool, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if isNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("secrets manager get %q: %w", name, err)
	}

	if out.SecretString != nil {
		return *out.SecretString, true, nil
	}
	if out.SecretBinary != nil {
		return base64.StdEncoding.EncodeToString(out.SecretBinary), true, nil
	}
	return "", true, nil
}

// SecretExists checks for the secret without reading its value.
func (s *AWSSecretStore) SecretExists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.DescribeSecret(ctx, &secretsmanager.DescribeSecretInput{
		SecretId: aws.String(name),
	})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("secrets manager describe %q: %w", name, err)
	}
	return true, nil
}

// PutSecret stores a new version of an existing secret.
func (s *AWSSecretStore) PutSecret(ctx context.Context, name, value string) error {
	_, err := s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(value),
	})
	if err != nil {
		return fmt.Errorf("secrets manager put %q: %w", name, err)
	}
	return nil
}

// CreateSecret creates the secret with its first value.
func (s *AWSSecretStore) CreateSecret(ctx context.Context, name, value, description string) error {
	_, err := s.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(value),
		Description:  aws.String(description),
	})
	if err != nil {
		return fmt.Errorf("secrets manager create %q: %w", name, err)
	}
	return nil
}
