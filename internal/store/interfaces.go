// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/pwdmngr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator tells transient driver errors from permanent ones and
// recognizes unique constraint violations for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// CredentialRepository persists credential records. Secrets are stored
// exactly as given; encryption happens in the service layer.
type CredentialRepository interface {
	// Save inserts a new record and returns it with ID and timestamps set.
	// A taken (domain, username) pair yields [ErrCredentialAlreadyExists].
	Save(ctx context.Context, credential models.Credential) (models.Credential, error)

	// Find returns every record whose domain equals filter.Domain and, when
	// filter.Username is set, whose username equals it. Secrets are loaded.
	Find(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error)

	// Search returns the records whose domain (and username, when set)
	// contains the filter values, compared case-insensitively.
	Search(ctx context.Context, filter models.CredentialFilter) ([]models.CredentialSummary, error)

	// Update applies the non-nil fields of update to the record with
	// update.ID.
	Update(ctx context.Context, update models.CredentialUpdate) error
}

// AuthKeyRepository stores hashed API keys.
type AuthKeyRepository interface {
	Exists(ctx context.Context, keyHash string) (bool, error)
	Save(ctx context.Context, keyHash string) error
}

// MasterCredentialRepository stores the single master credential reference.
type MasterCredentialRepository interface {
	// Get returns the only stored row. No row yields
	// [ErrMasterCredentialsNotSet], more than one yields
	// [ErrInconsistentMasterCredentials].
	Get(ctx context.Context) (models.MasterCredentialHash, error)

	// Save replaces whatever is stored with hash.
	Save(ctx context.Context, hash models.MasterCredentialHash) error
}
