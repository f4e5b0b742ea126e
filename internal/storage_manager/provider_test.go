package storage_manager //nolint:revive // var-naming: using underscores for domain clarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileProvider(t *testing.T) {
	ctx := context.Background()
	p := NewLocalFileProvider(t.TempDir())

	_, err := p.Read(ctx, "user_defined_mcp.json")
	assert.True(t, errors.Is(err, ErrNotFound))

	exists, err := p.Exists(ctx, "user_defined_mcp.json")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, p.Write(ctx, "nested/user_defined_mcp.json", []byte(`{"mcpServers":{}}`)))
	data, err := p.Read(ctx, "nested/user_defined_mcp.json")
	require.NoError(t, err)
	assert.Equal(t, `{"mcpServers":{}}`, string(data))

	require.NoError(t, p.Write(ctx, "nested/user_defined_mcp.json", []byte(`{}`)))
	data, err = p.Read(ctx, "nested/user_defined_mcp.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	require.NoError(t, p.Delete(ctx, "nested/user_defined_mcp.json"))
	require.NoError(t, p.Delete(ctx, "nested/user_defined_mcp.json"), "deleting twice is fine")
	exists, err = p.Exists(ctx, "nested/user_defined_mcp.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNew(t *testing.T) {
	p, err := New(Config{Backend: BackendLocal, LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalFileProvider{}, p)

	_, err = New(Config{Backend: BackendLocal})
	assert.Error(t, err)

	_, err = New(Config{Backend: BackendS3, S3Bucket: "b"})
	assert.ErrorContains(t, err, "s3 client is required")

	p, err = New(Config{Backend: BackendS3, S3Bucket: "b", S3Prefix: "team", S3Client: newFakeS3()})
	require.NoError(t, err)
	assert.Equal(t, "s3://b/team/user_defined_mcp.json", p.Describe("user_defined_mcp.json"))

	_, err = New(Config{Backend: "git"})
	assert.ErrorContains(t, err, "unsupported backend")
}
