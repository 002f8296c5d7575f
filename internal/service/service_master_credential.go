// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/store"
	"github.com/MKhiriev/pwdmngr/models"
)

type masterCredentialService struct {
	masterCredentialRepository store.MasterCredentialRepository

	bcryptCost int

	logger *logger.Logger
}

func NewMasterCredentialService(masterCredentialRepository store.MasterCredentialRepository, cfg config.App, logger *logger.Logger) MasterCredentialService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &masterCredentialService{
		masterCredentialRepository: masterCredentialRepository,
		bcryptCost:                 cost,
		logger:                     logger,
	}
}

// Verify compares master against the stored reference. The password is
// checked before the key, so a request wrong in both reports the password.
func (m *masterCredentialService) Verify(ctx context.Context, master models.MasterInput) error {
	log := logger.FromContext(ctx)

	stored, err := m.masterCredentialRepository.Get(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMasterCredentialsNotSet):
			log.Error().Str("func", "*masterCredentialService.Verify").Msg("master credentials were never provisioned")
			return ErrMasterCredentialsNotSet
		case errors.Is(err, store.ErrInconsistentMasterCredentials):
			return fmt.Errorf("%w: %w", ErrInconsistentMasterStorage, err)
		default:
			log.Err(err).Str("func", "*masterCredentialService.Verify").Msg("loading master credentials failed")
			return fmt.Errorf("loading master credentials failed: %w", err)
		}
	}

	if !matchesHash(stored.PasswordHash, master.Password) {
		log.Warn().Str("func", "*masterCredentialService.Verify").Msg("wrong master password")
		return ErrWrongMasterPassword
	}
	if !matchesHash(stored.KeyHash, master.Key) {
		log.Warn().Str("func", "*masterCredentialService.Verify").Msg("wrong master key")
		return ErrWrongMasterKey
	}

	return nil
}

// Provision replaces the stored reference with bcrypt hashes of master.
func (m *masterCredentialService) Provision(ctx context.Context, master models.MasterInput) error {
	log := logger.FromContext(ctx)

	if master.Password == "" {
		return ErrWrongMasterPassword
	}
	if _, err := parseMasterKey(master.Key); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(master.Password), m.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing master password: %w", err)
	}
	keyHash, err := bcrypt.GenerateFromPassword([]byte(master.Key), m.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing master key: %w", err)
	}

	err = m.masterCredentialRepository.Save(ctx, models.MasterCredentialHash{
		PasswordHash: string(passwordHash),
		KeyHash:      string(keyHash),
	})
	if err != nil {
		log.Err(err).Str("func", "*masterCredentialService.Provision").Msg("saving master credentials failed")
		return fmt.Errorf("saving master credentials failed: %w", err)
	}

	log.Info().Str("func", "*masterCredentialService.Provision").Msg("master credentials provisioned")
	return nil
}

// matchesHash compares plain against stored, which is either a bcrypt hash
// or, for rows written before bcrypt was introduced, unsalted SHA-256 hex.
func matchesHash(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}

	sum := sha256.Sum256([]byte(plain))
	legacy := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(legacy)) == 1
}
