package service

import "errors"

var (
	ErrEmptyToken     = errors.New("empty token provided")
	ErrLoginRejected  = errors.New("login was rejected by the auth provider")
	ErrTokenIsExpired = errors.New("token is expired")
)
