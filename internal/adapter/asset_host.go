package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
)

// NewAssetHost returns the [AssetHost] selected by cfg.AssetHost.
func NewAssetHost(cfg config.Adapter, log *logger.Logger) (AssetHost, error) {
	switch cfg.AssetHost {
	case config.AssetHostCloudinary:
		return NewCloudinaryHost(cfg, log), nil
	case config.AssetHostS3:
		return NewS3Host(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAssetHost, cfg.AssetHost)
	}
}
