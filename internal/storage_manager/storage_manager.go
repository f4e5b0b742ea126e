package storage_manager //nolint:revive // var-naming: using underscores for domain clarity

import (
	"fmt"
)

// BackendType represents the type of storage backend.
type BackendType string

const (
	// BackendLocal uses the local filesystem for storage.
	BackendLocal BackendType = "local"
	// BackendS3 uses AWS S3 for storage.
	BackendS3 BackendType = "s3"
)

// Config selects and configures a backend.
type Config struct {
	Backend BackendType

	// LocalDir is the root directory for the local backend.
	LocalDir string

	// S3 settings. Client must be set for the s3 backend.
	S3Bucket string
	S3Prefix string
	S3Client S3API
}

// New returns the FileProvider for cfg.
func New(cfg Config) (FileProvider, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		if cfg.LocalDir == "" {
			return nil, fmt.Errorf("base directory is required for local backend")
		}
		return NewLocalFileProvider(cfg.LocalDir), nil

	case BackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("bucket is required for s3 backend")
		}
		if cfg.S3Client == nil {
			return nil, fmt.Errorf("s3 client is required for s3 backend")
		}
		return NewS3FileProvider(cfg.S3Bucket, cfg.S3Prefix, cfg.S3Client), nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
	}
}
