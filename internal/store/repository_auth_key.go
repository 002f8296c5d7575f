// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pwdmngr/internal/logger"
)

type authKeyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAuthKeyRepository constructs an [AuthKeyRepository] backed by db.
func NewAuthKeyRepository(db *DB, logger *logger.Logger) AuthKeyRepository {
	logger.Debug().Msg("creating auth key repository")
	return &authKeyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *authKeyRepository) Exists(ctx context.Context, keyHash string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAuthKeyExistsQuery(r.db.builder(), keyHash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, "*authKeyRepository.Exists", func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*authKeyRepository.Exists").Msg("error looking up auth key")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *authKeyRepository) Save(ctx context.Context, keyHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuthKeyQuery(r.db.builder(), keyHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "*authKeyRepository.Save", func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrAuthKeyAlreadyExists
		}
		log.Err(err).Str("func", "*authKeyRepository.Save").Msg("error saving auth key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
