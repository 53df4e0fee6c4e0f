package service

import (
	"github.com/MKhiriev/knockout-login/internal/adapter"
	"github.com/MKhiriev/knockout-login/internal/logger"
	"github.com/MKhiriev/knockout-login/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(knockout adapter.KnockoutAdapter, cfg AuthConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(knockout, cfg, logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
