// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external asset host that stores
// employee photos.
//
// The primary abstraction is [AssetHost], which decouples the service layer
// from the hosting provider. Two implementations ship with the package:
// Cloudinary over its REST upload API ([NewCloudinaryHost]) and any
// S3-compatible bucket ([NewS3Host]). [NewAssetHost] picks one from config.
//
// Error values defined in errors.go are returned wrapped so that callers can
// use [errors.Is] regardless of the provider (e.g. [ErrUploadRejected] for a
// 4xx answer from Cloudinary).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/asset_host_mock.go -package=mock

// AssetHost stores images and returns their durable public address.
// Implementations must be safe for concurrent use.
type AssetHost interface {
	// Store uploads payload and returns the hosted asset. The returned URL is
	// what gets persisted in place of an inline image.
	Store(ctx context.Context, payload models.ImagePayload) (models.Asset, error)
}
