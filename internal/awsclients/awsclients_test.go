package awsclients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTS struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func TestAccountID(t *testing.T) {
	ctx := context.Background()

	id, err := NewAccountResolver(fakeSTS{out: &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}}).AccountID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id)

	_, err = NewAccountResolver(fakeSTS{out: &sts.GetCallerIdentityOutput{}}).AccountID(ctx)
	assert.Error(t, err)

	_, err = NewAccountResolver(fakeSTS{err: errors.New("ExpiredToken")}).AccountID(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ExpiredToken")
}

func TestLoadUsesRegion(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	c, err := Load(context.Background(), Config{Region: "eu-central-1", Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", c.Config.Region)
	assert.NotNil(t, c.SecretsManager)
	assert.NotNil(t, c.Cognito)
	assert.NotNil(t, c.AgentCore)
	assert.NotNil(t, c.S3)
	assert.NotNil(t, c.STS)
	assert.NotNil(t, c.Config.HTTPClient)
}
