package service

import (
	"context"

	"github.com/MKhiriev/knockout-login/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService constructs the service backing the version endpoint.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	version := s.buildInfo.BuildVersion()
	if version == "" {
		version = "N/A"
	}

	return version
}
