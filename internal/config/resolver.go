// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Sources holds the two raw-value snapshots an option can be resolved from.
// Both maps are captured once at process start and are never mutated by the
// resolver; Args is keyed by option name, Env by environment variable name.
type Sources struct {
	// Args maps option names to the raw string supplied on the command line.
	// Only options the user actually set appear as keys, so key existence
	// distinguishes "--port=" (present, empty) from no --port flag at all.
	Args map[string]string

	// Env maps environment variable names to their values, as captured from
	// the process environment. Lookups use the uppercased option name.
	Env map[string]string
}

// Parser converts a raw string from one of the sources into a typed value.
// The identity parser for string options is [String].
type Parser[T any] func(raw string) (T, error)

// Validator checks an already-parsed value. Validators must be pure; a nil
// return means the value passed.
type Validator[T any] func(value T) error

// EnvKey returns the environment variable consulted for an option name.
// The transform is plain uppercasing: "https_key_filepath" is looked up as
// "HTTPS_KEY_FILEPATH".
func EnvKey(name string) string {
	return strings.ToUpper(name)
}

// lookup finds the raw value for an option: the command-line snapshot wins
// whenever the key exists there, otherwise the environment snapshot is
// consulted under the uppercased name. Emptiness of the value plays no role.
func (s Sources) lookup(name string) (string, bool) {
	if raw, ok := s.Args[name]; ok {
		return raw, true
	}

	raw, ok := s.Env[EnvKey(name)]
	return raw, ok
}

// Resolve resolves a required option: it looks the raw value up in src,
// parses it with parse, and runs every validator in order against the parsed
// value.
//
// Returns:
//   - [MissingOptionError] if neither source defines the option;
//   - [ParseError] wrapping the parser's error if parsing fails;
//   - [InvalidOptionError] wrapping the first failing validator's error;
//   - the typed value otherwise.
func Resolve[T any](src Sources, name string, parse Parser[T], validators ...Validator[T]) (T, error) {
	raw, ok := src.lookup(name)
	if !ok {
		var zero T
		return zero, &MissingOptionError{Option: name}
	}

	return parseAndValidate(name, raw, parse, validators)
}

// ResolveOr resolves an optional option. When neither source defines the
// option, def is returned unchanged: defaults are trusted as already valid
// and never pass through the parser or the validators. A present raw value —
// including an explicitly empty one — goes through the same parse/validate
// pipeline as [Resolve].
func ResolveOr[T any](src Sources, name string, def T, parse Parser[T], validators ...Validator[T]) (T, error) {
	raw, ok := src.lookup(name)
	if !ok {
		return def, nil
	}

	return parseAndValidate(name, raw, parse, validators)
}

func parseAndValidate[T any](name, raw string, parse Parser[T], validators []Validator[T]) (T, error) {
	var zero T

	value, err := parse(raw)
	if err != nil {
		return zero, &ParseError{Option: name, Err: err}
	}

	// validators run in declaration order; the first failure wins
	for _, validate := range validators {
		if err := validate(value); err != nil {
			return zero, &InvalidOptionError{Option: name, Err: err}
		}
	}

	return value, nil
}
