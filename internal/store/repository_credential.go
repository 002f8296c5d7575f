// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/models"
)

// credentialRepository is the SQL implementation of [CredentialRepository].
// Secrets are kept in a single text column as a JSON array so one record
// stays one row on both dialects.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Save(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	secrets, err := encodeSecrets(credential.Secrets)
	if err != nil {
		return models.Credential{}, err
	}

	query, args, err := buildInsertCredentialQuery(r.db.builder(), credential, secrets)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Save").Msg("error building insert query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "*credentialRepository.Save", func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&credential.ID, &credential.CreatedAt, &credential.UpdatedAt)
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Info().Str("func", "*credentialRepository.Save").
				Str("domain", credential.Domain).
				Msg("credential already exists")
			return models.Credential{}, ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.Save").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return credential, nil
}

func (r *credentialRepository) Find(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCredentialsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Find").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credentials []models.Credential
	err = r.db.withRetry(ctx, "*credentialRepository.Find", func() error {
		var queryErr error
		credentials, queryErr = r.queryCredentials(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Find").Msg("error selecting credentials")
		return nil, err
	}

	return credentials, nil
}

func (r *credentialRepository) queryCredentials(ctx context.Context, query string, args []any) ([]models.Credential, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0)
	for rows.Next() {
		var (
			credential models.Credential
			secrets    string
		)
		if err := rows.Scan(&credential.ID, &credential.Domain, &credential.Username, &secrets, &credential.CreatedAt, &credential.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if credential.Secrets, err = decodeSecrets(secrets); err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

func (r *credentialRepository) Search(ctx context.Context, filter models.CredentialFilter) ([]models.CredentialSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchCredentialsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Search").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summaries []models.CredentialSummary
	err = r.db.withRetry(ctx, "*credentialRepository.Search", func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		summaries = make([]models.CredentialSummary, 0)
		for rows.Next() {
			var summary models.CredentialSummary
			if err := rows.Scan(&summary.Domain, &summary.Username); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			summaries = append(summaries, summary)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Search").Msg("error searching credentials")
		return nil, err
	}

	return summaries, nil
}

func (r *credentialRepository) Update(ctx context.Context, update models.CredentialUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return nil
	}

	var secrets *string
	if update.Secrets != nil {
		encoded, err := encodeSecrets(update.Secrets)
		if err != nil {
			return err
		}
		secrets = &encoded
	}

	query, args, err := buildUpdateCredentialQuery(r.db.builder(), update, secrets)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, "*credentialRepository.Update", func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.Update").Msg("error updating credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func encodeSecrets(secrets []string) (string, error) {
	if secrets == nil {
		secrets = []string{}
	}

	encoded, err := json.Marshal(secrets)
	if err != nil {
		return "", fmt.Errorf("encode secrets: %w", err)
	}

	return string(encoded), nil
}

func decodeSecrets(raw string) ([]string, error) {
	var secrets []string
	if err := json.Unmarshal([]byte(raw), &secrets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSecrets, err)
	}
	if secrets == nil {
		return nil, fmt.Errorf("%w: %s is not an array", ErrDecodingSecrets, raw)
	}

	return secrets, nil
}
