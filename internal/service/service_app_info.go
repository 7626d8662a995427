package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

// GetAppInfo describes the API entry points served by the root route.
func (s *appInfoService) GetAppInfo(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{
		Message:   "Employee Management System API",
		Version:   s.appVersion,
		Employees: "/api/employees",
		Users:     "/api/user",
		Upload:    "/api/upload",
	}
}
