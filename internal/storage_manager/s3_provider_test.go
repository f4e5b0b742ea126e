package storage_manager //nolint:revive // var-naming: using underscores for domain clarity

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	headErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3FileProvider(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	p := NewS3FileProvider("configs", "team-a", client)

	_, err := p.Read(ctx, "user_defined_mcp.json")
	assert.True(t, errors.Is(err, ErrNotFound))

	exists, err := p.Exists(ctx, "user_defined_mcp.json")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, p.Write(ctx, "user_defined_mcp.json", []byte(`{"mcpServers":{}}`)))
	assert.Contains(t, client.objects, "team-a/user_defined_mcp.json")

	data, err := p.Read(ctx, "user_defined_mcp.json")
	require.NoError(t, err)
	assert.Equal(t, `{"mcpServers":{}}`, string(data))

	exists, err = p.Exists(ctx, "user_defined_mcp.json")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, p.Delete(ctx, "user_defined_mcp.json"))
	assert.Empty(t, client.objects)
}

func TestS3FileProviderExistsPropagatesRealErrors(t *testing.T) {
	client := newFakeS3()
	client.headErr = &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	p := NewS3FileProvider("configs", "", client)

	exists, err := p.Exists(context.Background(), "user_defined_mcp.json")
	assert.False(t, exists)
	assert.ErrorContains(t, err, "AccessDenied")
}
