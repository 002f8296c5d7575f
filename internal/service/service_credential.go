// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pwdmngr/internal/crypto"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/store"
	"github.com/MKhiriev/pwdmngr/models"
)

// credentialService encrypts secrets on the way in and decrypts them on the
// way out. It trusts its input: validation and the master credential check
// are done by the wrappers around it.
type credentialService struct {
	credentialRepository store.CredentialRepository

	logger *logger.Logger
}

func NewCredentialService(credentialRepository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		logger:               logger,
	}
}

func (c *credentialService) Insert(ctx context.Context, request models.InsertRequest) error {
	log := logger.FromContext(ctx)

	codec, err := newCodec(request.Master)
	if err != nil {
		return err
	}

	encrypted, err := codec.EncryptAll(request.Secrets)
	if err != nil {
		return fmt.Errorf("encrypting secrets: %w", err)
	}

	_, err = c.credentialRepository.Save(ctx, models.Credential{
		Domain:   request.Domain,
		Username: request.Username,
		Secrets:  encrypted,
	})
	if err != nil {
		if errors.Is(err, store.ErrCredentialAlreadyExists) {
			return ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialService.Insert").Msg("saving credential failed")
		return fmt.Errorf("saving credential failed: %w", err)
	}

	log.Info().Str("func", "*credentialService.Insert").
		Str("domain", request.Domain).
		Int("secrets", len(encrypted)).
		Msg("credential stored")
	return nil
}

func (c *credentialService) Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error) {
	summaries, err := c.credentialRepository.Search(ctx, queryFilter(request))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.Search").Msg("searching credentials failed")
		return nil, fmt.Errorf("searching credentials failed: %w", err)
	}

	return summaries, nil
}

// GetSecrets returns the only credential matching request with its secrets
// decrypted. Records whose secrets were encrypted as one running CBC stream
// are recognized and decrypted too.
func (c *credentialService) GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error) {
	log := logger.FromContext(ctx)

	codec, err := newCodec(request.Master)
	if err != nil {
		return models.Credential{}, err
	}

	found, err := c.credentialRepository.Find(ctx, queryFilter(request))
	if err != nil {
		log.Err(err).Str("func", "*credentialService.GetSecrets").Msg("finding credential failed")
		return models.Credential{}, fmt.Errorf("finding credential failed: %w", err)
	}

	switch len(found) {
	case 0:
		return models.Credential{}, ErrCredentialNotFound
	case 1:
	default:
		return models.Credential{}, ErrMultipleCredentialsFound
	}

	credential := found[0]
	secrets, err := decryptSecrets(codec, credential.Secrets)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*credentialService.GetSecrets").
			Int64("id", credential.ID).
			Msg("stored secrets cannot be decrypted")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrDecryptingSecrets, err)
	}

	credential.Secrets = secrets
	return credential, nil
}

func decryptSecrets(codec *crypto.Codec, encrypted []string) ([]string, error) {
	secrets, err := codec.DecryptAll(encrypted)
	if err == nil || len(encrypted) < 2 || !errors.Is(err, crypto.ErrDecryption) {
		return secrets, err
	}

	chained, chainedErr := codec.DecryptAllChained(encrypted)
	if chainedErr != nil {
		return nil, err
	}

	return chained, nil
}

func (c *credentialService) Update(ctx context.Context, request models.UpdateRequest) error {
	log := logger.FromContext(ctx)

	filter := models.CredentialFilter{Domain: request.Domain}
	if request.Username != nil {
		filter.Username = *request.Username
	}

	found, err := c.credentialRepository.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Update").Msg("finding credential failed")
		return fmt.Errorf("finding credential failed: %w", err)
	}
	if len(found) != 1 {
		return ErrUpdateTargetNotUnique
	}
	target := found[0]

	update := models.CredentialUpdate{ID: target.ID}

	if request.NewUsername != nil {
		if *request.NewUsername == target.Username {
			return ErrSameUsername
		}
		update.Username = request.NewUsername
	}

	if len(request.NewSecrets) > 0 {
		codec, err := newCodec(request.Master)
		if err != nil {
			return err
		}
		if update.Secrets, err = codec.EncryptAll(request.NewSecrets); err != nil {
			return fmt.Errorf("encrypting secrets: %w", err)
		}
	}

	if err := c.credentialRepository.Update(ctx, update); err != nil {
		switch {
		case errors.Is(err, store.ErrCredentialAlreadyExists):
			return ErrNewUsernameAlreadyExists
		case errors.Is(err, store.ErrCredentialNotFound):
			return ErrUpdateTargetNotUnique
		}
		log.Err(err).Str("func", "*credentialService.Update").Msg("updating credential failed")
		return fmt.Errorf("updating credential failed: %w", err)
	}

	return nil
}

func queryFilter(request models.QueryRequest) models.CredentialFilter {
	filter := models.CredentialFilter{Domain: request.Domain}
	if request.Username != nil {
		filter.Username = *request.Username
	}

	return filter
}
