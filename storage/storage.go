package storage

import (
	"bytes"
	"context"
	"fmt"

	"staywise/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service uploads staff avatar images and returns their public URL.
type Service interface {
	UploadAvatar(ctx context.Context, fileName string, data []byte) (string, error)
}

// CloudinaryStorage implements Service using Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a CloudinaryStorage from the app configuration.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadAvatar uploads the image into the avatars folder and returns the
// permanent secure URL.
func (s *CloudinaryStorage) UploadAvatar(ctx context.Context, fileName string, data []byte) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   "avatars",
		PublicID: fileName,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for avatar upload")
	}
	return result.SecureURL, nil
}
