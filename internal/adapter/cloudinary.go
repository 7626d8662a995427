// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// cloudinaryHost is the [AssetHost] implementation backed by the Cloudinary
// upload API. It signs every request with the account API secret.
type cloudinaryHost struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	now       func() time.Time
}

type cloudinaryUploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryHost creates an [AssetHost] that uploads to the Cloudinary
// account described by cfg.Cloudinary, into cfg.Folder.
func NewCloudinaryHost(cfg config.Adapter, log *logger.Logger) AssetHost {
	log.Debug().Str("cloud_name", cfg.Cloudinary.CloudName).Msg("creating cloudinary asset host")
	return &cloudinaryHost{
		client:    utils.NewHTTPClient(cfg.Cloudinary.BaseURL, cfg.RequestTimeout),
		cloudName: cfg.Cloudinary.CloudName,
		apiKey:    cfg.Cloudinary.APIKey,
		apiSecret: cfg.Cloudinary.APISecret,
		folder:    cfg.Folder,
		now:       time.Now,
	}
}

// Store implements [AssetHost]. The image is sent as a data URI in the "file"
// form field, which the upload API accepts alongside plain URLs.
func (c *cloudinaryHost) Store(ctx context.Context, payload models.ImagePayload) (models.Asset, error) {
	if len(payload.Data) == 0 {
		return models.Asset{}, ErrEmptyPayload
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	var result cloudinaryUploadResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"file":      EncodeDataURI(payload),
			"api_key":   c.apiKey,
			"timestamp": timestamp,
			"folder":    c.folder,
			"signature": c.sign(timestamp),
		}).
		SetResult(&result).
		SetError(&cloudinaryError{}).
		Post(fmt.Sprintf("/v1_1/%s/image/upload", c.cloudName))
	if err != nil {
		return models.Asset{}, fmt.Errorf("cloudinary upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cloudinaryHost.Store").
			Int("status", resp.StatusCode()).
			Msg("cloudinary rejected upload")
		return models.Asset{}, err
	}
	if result.SecureURL == "" {
		return models.Asset{}, ErrMissingAssetURL
	}

	return models.Asset{URL: result.SecureURL, ID: result.PublicID}, nil
}

// sign computes the upload signature: the SHA-1 hex digest of the signed
// parameters, sorted by name and joined as a query string, followed by the
// API secret.
func (c *cloudinaryHost) sign(timestamp string) string {
	toSign := "timestamp=" + timestamp
	if c.folder != "" {
		toSign = "folder=" + c.folder + "&" + toSign
	}

	sum := sha1.Sum([]byte(toSign + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
