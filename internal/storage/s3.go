package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"ayoo/internal/config"
	"ayoo/internal/logger"
)

// S3ObjectStorage implements ObjectStorage using the AWS S3 SDK v2. It works
// against any S3-compatible backend (AWS S3, MinIO, RustFS).
type S3ObjectStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	log       *zap.Logger
}

var _ ObjectStorage = (*S3ObjectStorage)(nil)

// NewS3ObjectStorage creates an S3ObjectStorage from configuration.
func NewS3ObjectStorage(cfg *config.StorageConfig) (*S3ObjectStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid storage endpoint: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		o.BaseEndpoint = aws.String(endpoint)
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = endpoint + "/" + cfg.Bucket
	}

	return &S3ObjectStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       logger.Get(),
	}, nil
}

// Upload stores the content under key and returns its public URL.
func (s *S3ObjectStorage) Upload(ctx context.Context, key, contentType string, content []byte) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("object upload failed",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes a previously uploaded object by its public URL.
func (s *S3ObjectStorage) Delete(ctx context.Context, fileURL string) error {
	key := strings.TrimPrefix(fileURL, s.publicURL+"/")
	// A foreign URL leaves the prefix intact; fall back to its path.
	if key == fileURL {
		u, err := url.Parse(fileURL)
		if err != nil {
			return fmt.Errorf("unrecognized file URL: %w", err)
		}
		key = strings.TrimPrefix(u.Path, "/")
	}
	if key == "" {
		return errors.New("unrecognized file URL")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("object delete failed",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}
