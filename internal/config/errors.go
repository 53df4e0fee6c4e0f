package config

import "fmt"

// MissingOptionError is returned when a required option has no value in
// either source. It is fatal: startup must not proceed without the option.
type MissingOptionError struct {
	// Option is the declared (lowercase) option name.
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("required option %q is not set (checked --%s and %s)", e.Option, e.Option, EnvKey(e.Option))
}

// InvalidOptionError is returned when a validator rejects a parsed value.
// The message carries both the option name and the validator's own failure
// description, so the operator sees the offending option and the reason.
type InvalidOptionError struct {
	Option string
	Err    error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: %v", e.Option, e.Err)
}

func (e *InvalidOptionError) Unwrap() error {
	return e.Err
}

// ParseError is returned when an option's parser fails on the raw value
// (malformed URL, non-numeric port, unreadable file). The option name is
// attached so parse failures are as diagnosable as validation failures.
type ParseError struct {
	Option string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse option %q: %v", e.Option, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
