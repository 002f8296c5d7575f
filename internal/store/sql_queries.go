// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pwdmngr/models"
)

const (
	credentialsTable       = "credentials"
	authKeysTable          = "auth_keys"
	masterCredentialsTable = "master_credentials"
)

var credentialColumns = []string{"id", "domain", "username", "secrets", "created_at", "updated_at"}

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, credential models.Credential, secrets string) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns("domain", "username", "secrets").
		Values(credential.Domain, credential.Username, secrets).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildFindCredentialsQuery(b sq.StatementBuilderType, filter models.CredentialFilter) (string, []any, error) {
	where := sq.Eq{"domain": filter.Domain}
	if filter.HasUsername() {
		where["username"] = filter.Username
	}

	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

func buildSearchCredentialsQuery(b sq.StatementBuilderType, filter models.CredentialFilter) (string, []any, error) {
	where := sq.And{sq.Expr(`LOWER(domain) LIKE ? ESCAPE '\'`, containsPattern(filter.Domain))}
	if filter.HasUsername() {
		where = append(where, sq.Expr(`LOWER(username) LIKE ? ESCAPE '\'`, containsPattern(filter.Username)))
	}

	return b.Select("domain", "username").
		From(credentialsTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

func buildUpdateCredentialQuery(b sq.StatementBuilderType, update models.CredentialUpdate, secrets *string) (string, []any, error) {
	query := b.Update(credentialsTable).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID})

	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if secrets != nil {
		query = query.Set("secrets", *secrets)
	}

	return query.ToSql()
}

func buildAuthKeyExistsQuery(b sq.StatementBuilderType, keyHash string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(authKeysTable).
		Where(sq.Eq{"key_hash": keyHash}).
		ToSql()
}

func buildInsertAuthKeyQuery(b sq.StatementBuilderType, keyHash string) (string, []any, error) {
	return b.Insert(authKeysTable).
		Columns("key_hash").
		Values(keyHash).
		ToSql()
}

func buildSelectMasterCredentialsQuery(b sq.StatementBuilderType) (string, []any, error) {
	// two rows are enough to tell "one" from "many"
	return b.Select("id", "password_hash", "key_hash").
		From(masterCredentialsTable).
		OrderBy("id").
		Limit(2).
		ToSql()
}

func buildDeleteMasterCredentialsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(masterCredentialsTable).ToSql()
}

func buildInsertMasterCredentialsQuery(b sq.StatementBuilderType, hash models.MasterCredentialHash) (string, []any, error) {
	return b.Insert(masterCredentialsTable).
		Columns("password_hash", "key_hash").
		Values(hash.PasswordHash, hash.KeyHash).
		ToSql()
}
