// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialAlreadyExists is returned when a (domain, username) pair
	// is already taken.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when an update targets a record that
	// no longer exists.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrAuthKeyAlreadyExists is returned when the same API key is
	// registered twice.
	ErrAuthKeyAlreadyExists = errors.New("auth key already exists")

	// ErrMasterCredentialsNotSet is returned when no master credential has
	// been provisioned yet.
	ErrMasterCredentialsNotSet = errors.New("master credentials are not set")

	// ErrInconsistentMasterCredentials is returned when the master
	// credential table holds more than one row.
	ErrInconsistentMasterCredentials = errors.New("multiple master credentials are stored")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingSecrets is returned when a stored secrets column is not a
	// JSON array of strings.
	ErrDecodingSecrets = errors.New("failed to decode stored secrets")
)
