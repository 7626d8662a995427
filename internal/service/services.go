package service

import (
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
	UploadService   UploadService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages and assetHost.
// The employee service is composed as authorization gate, then field
// validation, then the business steps.
func NewServices(storages *store.Storages, assetHost adapter.AssetHost, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	employeeService := NewEmployeeService(storages.EmployeeRepository, assetHost, logger)
	employeeService = NewEmployeeValidationService().Wrap(employeeService)
	employeeService = NewEmployeeAuthorizationService().Wrap(employeeService)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		EmployeeService: employeeService,
		UploadService:   NewUploadService(assetHost, cfg.Server, logger),
		AppInfoService:  appInfoService,
	}, nil
}
