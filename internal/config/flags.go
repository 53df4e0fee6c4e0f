package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseFlags parses the command-line arguments into the raw option snapshot
// used as the Args source. Both "--name value" and "--name=value" forms are
// accepted. Only flags the user actually set end up in the returned map, so
// an explicitly empty value ("--knockout_api_key=") stays distinguishable
// from an omitted flag.
//
// Flags:
//
//	--knockout_api_key    Knockout API key used for the token exchange
//	--base_url            public base URL of this deployment
//	--https_key_filepath  path to the TLS private key (PEM)
//	--https_cert_filepath path to the TLS certificate (PEM)
//	--port                HTTPS listen port
func ParseFlags(args []string) (map[string]string, error) {
	fs := pflag.NewFlagSet("knockout-login", pflag.ContinueOnError)

	fs.String(OptionAPIKey, "", "Knockout API key used for the token exchange")
	fs.String(OptionBaseURL, "", "Public base URL of this deployment")
	fs.String(OptionHTTPSKeyFilepath, "", "Path to the TLS private key (PEM)")
	fs.String(OptionHTTPSCertFilepath, "", "Path to the TLS certificate (PEM)")
	// declared as a string on purpose: the raw value must reach the
	// resolver's parse/validate pipeline untouched
	fs.String(OptionPort, "", "HTTPS listen port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	raw := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) {
		raw[f.Name] = f.Value.String()
	})

	return raw, nil
}
