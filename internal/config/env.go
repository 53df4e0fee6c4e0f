// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// FromEnviron converts the "KEY=value" pairs returned by os.Environ into the
// raw environment snapshot used as the Env source. Values may themselves
// contain "=", so only the first separator splits. Malformed entries without
// a separator are skipped.
func FromEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, pair := range environ {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}

	return env
}
