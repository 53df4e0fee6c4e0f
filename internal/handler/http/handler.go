package http

import (
	"net/url"

	"github.com/MKhiriev/knockout-login/internal/logger"
	"github.com/MKhiriev/knockout-login/internal/service"
)

type Handler struct {
	services *service.Services

	// baseURL is the deployment's public base URL. Nil in the local variant;
	// callback URLs are then derived from the incoming request's Host.
	baseURL *url.URL

	logger *logger.Logger
}

func NewHandler(services *service.Services, baseURL *url.URL, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		baseURL:  baseURL,
		logger:   logger,
	}
}
