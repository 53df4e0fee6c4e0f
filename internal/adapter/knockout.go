package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/knockout-login/models"
	"github.com/go-resty/resty/v2"
)

const defaultKnockoutAPIURL = "https://api.knockout.chat"

// KnockoutClientConfig configures the outbound Knockout API client.
type KnockoutClientConfig struct {
	// BaseURL of the Knockout API. Defaults to the production API host;
	// tests point it at a local httptest server.
	BaseURL string

	// APIKey authenticates this deployment during the token exchange.
	APIKey string

	// Timeout bounds every outbound request. Defaults to 15 seconds.
	Timeout time.Duration
}

type knockoutClient struct {
	client *resty.Client
	apiKey string
}

// NewKnockoutClient constructs the Knockout API adapter.
func NewKnockoutClient(cfg KnockoutClientConfig) KnockoutAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultKnockoutAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &knockoutClient{client: cli, apiKey: cfg.APIKey}
}

func (k *knockoutClient) Exchange(ctx context.Context, token string) (models.KnockoutUser, error) {
	var user models.KnockoutUser

	resp, err := k.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ExchangeRequest{Key: k.apiKey, Token: token}).
		SetResult(&user).
		Post("/auth/exchange")
	if err != nil {
		return models.KnockoutUser{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return models.KnockoutUser{}, fmt.Errorf("token exchange: %w", err)
	}

	return user, nil
}
