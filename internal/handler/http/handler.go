package http

import (
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
)

// multipartOverhead is added to the upload limit to leave room for the
// multipart boundaries and part headers around the photo.
const multipartOverhead = 64 << 10

type Handler struct {
	services *service.Services

	maxBodySize   int64
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxBodySize:   cfg.MaxBodySize,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
