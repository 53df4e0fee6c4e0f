// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// Declared option names. Command-line lookups use these names verbatim;
// environment lookups use the same names uppercased (see [EnvKey]).
const (
	OptionAPIKey            = "knockout_api_key"
	OptionBaseURL           = "base_url"
	OptionHTTPSKeyFilepath  = "https_key_filepath"
	OptionHTTPSCertFilepath = "https_cert_filepath"
	OptionPort              = "port"
)

// DefaultPort is used when the port option is absent from both sources.
const DefaultPort = 3000

// Config is the immutable configuration record for the whole process. It is
// constructed exactly once by [Load] or [LoadLocal] and read-only afterwards.
type Config struct {
	// APIKey authenticates this service against the Knockout API during the
	// login token exchange. Must be kept confidential.
	APIKey string

	// BaseURL is the public base URL of this deployment, used to build the
	// auth callback redirect. Nil when loaded via [LoadLocal]; consumers then
	// derive the URL from the incoming request.
	BaseURL *url.URL

	// HTTPS carries the TLS material as in-memory PEM text, already read
	// from the configured file paths.
	HTTPS HTTPS

	// Port is the TCP port the HTTPS server listens on.
	Port int
}

// HTTPS holds the PEM-encoded TLS key pair contents.
type HTTPS struct {
	Key  string
	Cert string
}

// Load resolves the full option set for hosted deployments, base_url
// included. Resolution is a single linear pass over the declared options;
// the first failure aborts and no partial record is returned.
func Load(src Sources) (*Config, error) {
	cfg, err := loadCommon(src)
	if err != nil {
		return nil, err
	}

	baseURL, err := Resolve(src, OptionBaseURL, URL)
	if err != nil {
		return nil, err
	}
	cfg.BaseURL = baseURL

	return cfg, nil
}

// LoadLocal resolves the option set for deployments without a fixed public
// URL: the base_url option is not declared at all and Config.BaseURL stays
// nil.
func LoadLocal(src Sources) (*Config, error) {
	return loadCommon(src)
}

func loadCommon(src Sources) (*Config, error) {
	apiKey, err := Resolve(src, OptionAPIKey, String)
	if err != nil {
		return nil, err
	}

	httpsKey, err := Resolve(src, OptionHTTPSKeyFilepath, FileContents)
	if err != nil {
		return nil, err
	}

	httpsCert, err := Resolve(src, OptionHTTPSCertFilepath, FileContents)
	if err != nil {
		return nil, err
	}

	port, err := ResolveOr(src, OptionPort, DefaultPort, Int, Range(1, 65535))
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey: apiKey,
		HTTPS: HTTPS{
			Key:  httpsKey,
			Cert: httpsCert,
		},
		Port: port,
	}, nil
}
