package service

import (
	"context"
	"io"
)

// ImageUploadResult is the opaque url/key pair echoed back to clients and
// persisted on property records.
type ImageUploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type ImageUploadService interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string) (*ImageUploadResult, error)
	DeleteImage(ctx context.Context, key string) error
	Close() error
}
