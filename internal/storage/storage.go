package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded images end up (local disk in development,
// an S3-compatible bucket in production).
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the file.
	GetURL(path string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for s3
	Region    string // for s3
	AccessKey string // for s3
	SecretKey string // for s3
	Endpoint  string // for s3-compatible providers (R2 etc)
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
