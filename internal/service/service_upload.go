package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

type uploadService struct {
	assetHost     adapter.AssetHost
	maxUploadSize int64

	logger *logger.Logger
}

func NewUploadService(assetHost adapter.AssetHost, cfg config.Server, logger *logger.Logger) UploadService {
	return &uploadService{
		assetHost:     assetHost,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}

// UploadImage stores a single image and returns the hosted asset. Non-image
// content and payloads above the configured limit are rejected as
// BAD_USER_INPUT before the asset host is contacted.
func (u *uploadService) UploadImage(ctx context.Context, payload models.ImagePayload) (models.Asset, error) {
	if len(payload.Data) == 0 {
		return models.Asset{}, app.InvalidInput(app.MsgNoFileUploaded, nil)
	}
	if !strings.HasPrefix(strings.ToLower(payload.ContentType), "image/") {
		return models.Asset{}, app.InvalidInput(app.MsgOnlyImagesAllowed, nil)
	}
	if u.maxUploadSize > 0 && int64(len(payload.Data)) > u.maxUploadSize {
		return models.Asset{}, app.InvalidInput(app.MsgFileTooLarge, nil)
	}

	return storeImage(ctx, u.assetHost, payload)
}

// uploadInlineImage decodes a data URI and stores it on the asset host.
// A payload that cannot be decoded is reported the same way as a rejected
// upload.
func uploadInlineImage(ctx context.Context, assetHost adapter.AssetHost, dataURI string) (models.Asset, error) {
	payload, err := adapter.DecodeDataURI(dataURI)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("inline image could not be decoded")
		return models.Asset{}, app.UploadFailed(err)
	}

	return storeImage(ctx, assetHost, payload)
}

func storeImage(ctx context.Context, assetHost adapter.AssetHost, payload models.ImagePayload) (models.Asset, error) {
	if assetHost == nil {
		return models.Asset{}, app.UploadFailed(ErrNilAssetHost)
	}

	asset, err := assetHost.Store(ctx, payload)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("content_type", payload.ContentType).Msg("asset host upload failed")
		return models.Asset{}, app.UploadFailed(err)
	}
	return asset, nil
}
