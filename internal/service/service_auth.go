// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/store"
	"github.com/MKhiriev/pwdmngr/internal/utils"
)

// authService is the concrete implementation of AuthService.
// API keys are never stored in clear; both registration and lookup go
// through the same hash.
type authService struct {
	// authKeyRepository holds the hashes of registered keys.
	authKeyRepository store.AuthKeyRepository

	// hashKey turns the key hash into HMAC-SHA256 when set. Empty keeps
	// plain SHA-256 hex, which is what older deployments stored.
	hashKey string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AuthKeyRepository.
func NewAuthService(authKeyRepository store.AuthKeyRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		authKeyRepository: authKeyRepository,
		hashKey:           cfg.AuthKeyHashKey,
		logger:            logger,
	}
}

// Authenticate accepts authKey if its hash is registered.
//
// Returns:
//   - ErrEmptyAuthKey if authKey is empty.
//   - ErrUnknownAuthKey if no registered hash matches.
//   - A wrapped storage error if the lookup fails.
func (a *authService) Authenticate(ctx context.Context, authKey string) error {
	log := logger.FromContext(ctx)

	if authKey == "" {
		return ErrEmptyAuthKey
	}

	exists, err := a.authKeyRepository.Exists(ctx, utils.HashAuthKey(authKey, a.hashKey))
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("auth key lookup failed")
		return fmt.Errorf("auth key lookup failed: %w", err)
	}
	if !exists {
		log.Warn().Str("func", "*authService.Authenticate").Msg("unknown auth key")
		return ErrUnknownAuthKey
	}

	return nil
}

// RegisterAuthKey stores the hash of authKey. Registering the same key
// twice is not an error.
func (a *authService) RegisterAuthKey(ctx context.Context, authKey string) error {
	log := logger.FromContext(ctx)

	if authKey == "" {
		return ErrEmptyAuthKey
	}

	err := a.authKeyRepository.Save(ctx, utils.HashAuthKey(authKey, a.hashKey))
	if err != nil && !errors.Is(err, store.ErrAuthKeyAlreadyExists) {
		log.Err(err).Str("func", "*authService.RegisterAuthKey").Msg("saving auth key failed")
		return fmt.Errorf("saving auth key failed: %w", err)
	}

	return nil
}
