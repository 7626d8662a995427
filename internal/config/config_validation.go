// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with the offending detail.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 || cfg.Server.MaxBodySize <= 0 {
		return fmt.Errorf("%w: address and positive size limits are required", ErrInvalidServerConfigs)
	}

	switch cfg.Adapter.AssetHost {
	case AssetHostCloudinary:
		c := cfg.Adapter.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" || c.BaseURL == "" {
			return fmt.Errorf("%w: cloudinary cloud name, api key and api secret are required", ErrInvalidAdapterConfigs)
		}
	case AssetHostS3:
		s := cfg.Adapter.S3
		if s.Bucket == "" || s.Region == "" || s.PublicBaseURL == "" {
			return fmt.Errorf("%w: s3 bucket, region and public base url are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported asset host %q", ErrInvalidAdapterConfigs, cfg.Adapter.AssetHost)
	}

	return nil
}
