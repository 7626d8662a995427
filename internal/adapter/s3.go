// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of *s3.Client used by s3Host.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Host is the [AssetHost] implementation for S3-compatible buckets
// (AWS, MinIO, Hetzner). Objects are written under "<folder>/<uuid>.<ext>"
// and addressed through the configured public base URL.
type s3Host struct {
	client        s3API
	bucket        string
	folder        string
	publicBaseURL string
	ids           *utils.UUIDGenerator
}

// NewS3Host creates an [AssetHost] for the bucket described by cfg.S3.
// Static credentials are used when an access key is configured; otherwise
// requests go out anonymously, which suits public-write development buckets.
func NewS3Host(cfg config.Adapter, log *logger.Logger) AssetHost {
	log.Debug().Str("bucket", cfg.S3.Bucket).Str("endpoint", cfg.S3.Endpoint).Msg("creating s3 asset host")

	opts := s3.Options{
		Region:                     cfg.S3.Region,
		UsePathStyle:               cfg.S3.UsePathStyle,
		RetryMaxAttempts:           1,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if cfg.S3.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
	}
	if cfg.S3.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3.Endpoint)
	}

	return &s3Host{
		client:        s3.New(opts),
		bucket:        cfg.S3.Bucket,
		folder:        strings.Trim(cfg.Folder, "/"),
		publicBaseURL: strings.TrimRight(cfg.S3.PublicBaseURL, "/"),
		ids:           utils.NewUUIDGenerator(),
	}
}

// Store implements [AssetHost].
func (h *s3Host) Store(ctx context.Context, payload models.ImagePayload) (models.Asset, error) {
	if len(payload.Data) == 0 {
		return models.Asset{}, ErrEmptyPayload
	}

	key := h.ids.Generate() + "." + extensionFor(payload.ContentType)
	if h.folder != "" {
		key = h.folder + "/" + key
	}

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload.Data),
		ContentLength: aws.Int64(int64(len(payload.Data))),
		ContentType:   aws.String(payload.ContentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Host.Store").Str("key", key).Msg("failed to put object")
		return models.Asset{}, fmt.Errorf("%w: s3 put object: %w", ErrUploadRejected, err)
	}

	return models.Asset{URL: h.publicBaseURL + "/" + key, ID: key}, nil
}
