// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthKeyRepository_Exists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "registered", count: 1, want: true},
		{name: "unknown", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t, DialectPostgres)
			repo := NewAuthKeyRepository(db, db.logger)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM auth_keys WHERE key_hash = $1")).
				WithArgs("hash").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			ok, err := repo.Exists(context.Background(), "hash")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAuthKeyRepository_Exists_Error(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewAuthKeyRepository(db, db.logger)

	mock.ExpectQuery("FROM auth_keys").WillReturnError(errors.New("down"))

	ok, err := repo.Exists(context.Background(), "hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAuthKeyRepository_Save(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewAuthKeyRepository(db, db.logger)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO auth_keys (key_hash) VALUES ($1)")).
		WithArgs("hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), "hash"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthKeyRepository_Save_Duplicate(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewAuthKeyRepository(db, db.logger)

	mock.ExpectExec("INSERT INTO auth_keys").WillReturnError(pgError(pgerrcode.UniqueViolation))

	assert.ErrorIs(t, repo.Save(context.Background(), "hash"), ErrAuthKeyAlreadyExists)
}
