// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"unicode/utf8"
)

// String is the identity parser: the raw value is the typed value.
func String(raw string) (string, error) {
	return raw, nil
}

// Int parses a base-10 integer.
func Int(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}

	return value, nil
}

// URL parses an absolute URL. Relative or scheme-less strings are rejected
// because every consumer of a URL option builds outbound links from it.
func URL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL %q: must be absolute (scheme and host)", raw)
	}

	return u, nil
}

// FileContents treats the raw value as a filesystem path and returns the
// file's entire contents as a UTF-8 string. Used for the TLS key and
// certificate options, so the resolved record carries PEM material rather
// than paths. Read errors (missing file, permissions) propagate to the
// caller as configuration errors.
func FileContents(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", errors.New("file " + strconv.Quote(path) + " is not valid UTF-8 text")
	}

	return string(data), nil
}
