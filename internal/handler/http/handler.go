package http

import (
	"time"

	"github.com/MKhiriev/go-sub-merger/internal/config"
	"github.com/MKhiriev/go-sub-merger/internal/logger"
	"github.com/MKhiriev/go-sub-merger/internal/service"
	"github.com/MKhiriev/go-sub-merger/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDs       *utils.UUIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
