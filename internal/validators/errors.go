// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidRequest is wrapped by every rule violation below, so callers
	// can tell a bad request from other failures with one errors.Is.
	ErrInvalidRequest = errors.New("invalid request")

	ErrMissingMasterPassword = errors.New("master password is missing")
	ErrInvalidMasterKey      = errors.New("master key is missing or not a non-negative integer")
	ErrMissingDomain         = errors.New("domain is missing")
	ErrMissingUsername       = errors.New("username is missing")
	ErrNoSecrets             = errors.New("at least one secret is required")
	ErrEmptySecret           = errors.New("secret is empty")
	ErrInvalidQueryType      = errors.New("query type is missing or invalid")
	ErrEmptyUsername         = errors.New("username is present but empty")
	ErrEmptyNewUsername      = errors.New("new username is present but empty")
	ErrEmptyNewSecret        = errors.New("new secret is empty")
)

func invalid(rule error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, rule)
}
