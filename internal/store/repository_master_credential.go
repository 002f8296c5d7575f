// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/models"
)

type masterCredentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMasterCredentialRepository constructs a [MasterCredentialRepository]
// backed by db.
func NewMasterCredentialRepository(db *DB, logger *logger.Logger) MasterCredentialRepository {
	logger.Debug().Msg("creating master credential repository")
	return &masterCredentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *masterCredentialRepository) Get(ctx context.Context) (models.MasterCredentialHash, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMasterCredentialsQuery(r.db.builder())
	if err != nil {
		return models.MasterCredentialHash{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found []models.MasterCredentialHash
	err = r.db.withRetry(ctx, "*masterCredentialRepository.Get", func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		found = found[:0]
		for rows.Next() {
			var hash models.MasterCredentialHash
			if err := rows.Scan(&hash.ID, &hash.PasswordHash, &hash.KeyHash); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found = append(found, hash)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*masterCredentialRepository.Get").Msg("error selecting master credentials")
		return models.MasterCredentialHash{}, err
	}

	switch len(found) {
	case 0:
		return models.MasterCredentialHash{}, ErrMasterCredentialsNotSet
	case 1:
		return found[0], nil
	default:
		log.Error().Str("func", "*masterCredentialRepository.Get").Msg("master credential table holds more than one row")
		return models.MasterCredentialHash{}, ErrInconsistentMasterCredentials
	}
}

// Save deletes every stored row and inserts hash in one transaction.
func (r *masterCredentialRepository) Save(ctx context.Context, hash models.MasterCredentialHash) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteMasterCredentialsQuery(r.db.builder())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertMasterCredentialsQuery(r.db.builder(), hash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withRetry(ctx, "*masterCredentialRepository.Save", func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*masterCredentialRepository.Save").Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}
