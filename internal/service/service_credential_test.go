// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pwdmngr/internal/crypto"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/mock"
	"github.com/MKhiriev/pwdmngr/internal/store"
	"github.com/MKhiriev/pwdmngr/models"
)

// testMaster encrypts "secretA" to "F30dLL9HlS6S0/NLLmbhMQ==" and "secretB"
// to "0CXKBzrfLajejjDD3ejLyg==".
var testMaster = models.MasterInput{Password: "*fg*=TY%m2Y~:dQq", Key: "2466"}

func ptr(s string) *string { return &s }

func newTestCredentialSvc(t *testing.T) (*credentialService, *mock.MockCredentialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)

	return NewCredentialService(repo, logger.Nop()).(*credentialService), repo
}

// ── Insert ───────────────────────────────────────────────────────────────────

func TestCredentialService_Insert_EncryptsSecrets(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)
	ctx := context.Background()

	repo.EXPECT().Save(ctx, models.Credential{
		Domain:   "example.com",
		Username: "alice",
		Secrets:  []string{"F30dLL9HlS6S0/NLLmbhMQ==", "0CXKBzrfLajejjDD3ejLyg=="},
	}).Return(models.Credential{ID: 1}, nil)

	err := svc.Insert(ctx, models.InsertRequest{
		Master:   testMaster,
		Domain:   "example.com",
		Username: "alice",
		Secrets:  []string{"secretA", "secretB"},
	})
	require.NoError(t, err)
}

func TestCredentialService_Insert_Duplicate(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Credential{}, store.ErrCredentialAlreadyExists)

	err := svc.Insert(context.Background(), models.InsertRequest{
		Master: testMaster, Domain: "d", Username: "u", Secrets: []string{"s"},
	})
	assert.ErrorIs(t, err, ErrCredentialAlreadyExists)
}

func TestCredentialService_Insert_StorageError(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)
	boom := errors.New("boom")

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Credential{}, boom)

	err := svc.Insert(context.Background(), models.InsertRequest{
		Master: testMaster, Domain: "d", Username: "u", Secrets: []string{"s"},
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCredentialAlreadyExists)
}

func TestCredentialService_Insert_InvalidMasterKey(t *testing.T) {
	svc, _ := newTestCredentialSvc(t)

	err := svc.Insert(context.Background(), models.InsertRequest{
		Master: models.MasterInput{Password: "p", Key: "nope"}, Domain: "d", Username: "u", Secrets: []string{"s"},
	})
	assert.ErrorIs(t, err, ErrInvalidMasterKey)
}

func TestCredentialService_Insert_InvalidUTF8Secret(t *testing.T) {
	svc, _ := newTestCredentialSvc(t)

	err := svc.Insert(context.Background(), models.InsertRequest{
		Master: testMaster, Domain: "d", Username: "u", Secrets: []string{"ok", "\xff"},
	})
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestCredentialService_Search(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)
	ctx := context.Background()
	hits := []models.CredentialSummary{{Domain: "mail.example.com", Username: "alice"}}

	repo.EXPECT().Search(ctx, models.CredentialFilter{Domain: "Example", Username: "al"}).Return(hits, nil)

	got, err := svc.Search(ctx, models.QueryRequest{
		Master: testMaster, Type: models.QuerySearch, Domain: "Example", Username: ptr("al"),
	})
	require.NoError(t, err)
	assert.Equal(t, hits, got)
}

func TestCredentialService_Search_Error(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)

	repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.Search(context.Background(), models.QueryRequest{Master: testMaster, Domain: "x"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── GetSecrets ───────────────────────────────────────────────────────────────

func TestCredentialService_GetSecrets(t *testing.T) {
	tests := []struct {
		name    string
		stored  []models.Credential
		want    []string
		wantErr error
	}{
		{
			name:   "independent ciphertexts",
			stored: []models.Credential{{ID: 1, Domain: "d", Username: "u", Secrets: []string{"F30dLL9HlS6S0/NLLmbhMQ==", "0CXKBzrfLajejjDD3ejLyg=="}}},
			want:   []string{"secretA", "secretB"},
		},
		{
			name:   "legacy chained ciphertexts",
			stored: []models.Credential{{ID: 1, Domain: "d", Username: "u", Secrets: []string{"F30dLL9HlS6S0/NLLmbhMQ==", "8UmzpGsYTk6Z5KJlaeFJdw=="}}},
			want:   []string{"secretA", "secretB"},
		},
		{
			name:    "no match",
			wantErr: ErrCredentialNotFound,
		},
		{
			name: "several matches",
			stored: []models.Credential{
				{ID: 1, Domain: "d", Username: "u1"},
				{ID: 2, Domain: "d", Username: "u2"},
			},
			wantErr: ErrMultipleCredentialsFound,
		},
		{
			name:    "garbage ciphertext",
			stored:  []models.Credential{{ID: 1, Domain: "d", Username: "u", Secrets: []string{"AAAA"}}},
			wantErr: ErrDecryptingSecrets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCredentialSvc(t)
			ctx := context.Background()

			repo.EXPECT().Find(ctx, models.CredentialFilter{Domain: "d"}).Return(tt.stored, nil)

			got, err := svc.GetSecrets(ctx, models.QueryRequest{Master: testMaster, Type: models.QuerySecrets, Domain: "d"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Secrets)
			assert.Equal(t, "u", got.Username)
		})
	}
}

func TestCredentialService_GetSecrets_WrongMasterCannotDecrypt(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)

	repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]models.Credential{
		{ID: 1, Domain: "d", Username: "u", Secrets: []string{"F30dLL9HlS6S0/NLLmbhMQ==", "0CXKBzrfLajejjDD3ejLyg=="}},
	}, nil)

	got, err := svc.GetSecrets(context.Background(), models.QueryRequest{
		Master: models.MasterInput{Password: "*fg*=TY%m2Y~:dQq", Key: "2467"},
		Domain: "d",
	})
	if err == nil {
		// a wrong key may still produce valid padding by chance; it never
		// produces the original plaintext
		assert.NotEqual(t, []string{"secretA", "secretB"}, got.Secrets)
		return
	}
	assert.ErrorIs(t, err, ErrDecryptingSecrets)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestCredentialService_GetSecrets_FindError(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)

	repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetSecrets(context.Background(), models.QueryRequest{Master: testMaster, Domain: "d"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestCredentialService_Update(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Find(ctx, models.CredentialFilter{Domain: "d", Username: "alice"}).
			Return([]models.Credential{{ID: 9, Domain: "d", Username: "alice"}}, nil),
		repo.EXPECT().Update(ctx, models.CredentialUpdate{
			ID:       9,
			Username: ptr("bob"),
			Secrets:  []string{"F30dLL9HlS6S0/NLLmbhMQ=="},
		}).Return(nil),
	)

	err := svc.Update(ctx, models.UpdateRequest{
		Master:      testMaster,
		Domain:      "d",
		Username:    ptr("alice"),
		NewUsername: ptr("bob"),
		NewSecrets:  []string{"secretA"},
	})
	require.NoError(t, err)
}

func TestCredentialService_Update_KeepsSecretsWhenNoneGiven(t *testing.T) {
	svc, repo := newTestCredentialSvc(t)

	repo.EXPECT().Find(gomock.Any(), models.CredentialFilter{Domain: "d"}).
		Return([]models.Credential{{ID: 9, Domain: "d", Username: "alice"}}, nil)
	repo.EXPECT().Update(gomock.Any(), models.CredentialUpdate{ID: 9, Username: ptr("bob")}).Return(nil)

	err := svc.Update(context.Background(), models.UpdateRequest{Master: testMaster, Domain: "d", NewUsername: ptr("bob")})
	require.NoError(t, err)
}

func TestCredentialService_Update_Errors(t *testing.T) {
	tests := []struct {
		name      string
		found     []models.Credential
		updateErr error
		request   models.UpdateRequest
		wantErr   error
	}{
		{
			name:    "no match",
			request: models.UpdateRequest{Master: testMaster, Domain: "d"},
			wantErr: ErrUpdateTargetNotUnique,
		},
		{
			name:    "several matches",
			found:   []models.Credential{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}},
			request: models.UpdateRequest{Master: testMaster, Domain: "d"},
			wantErr: ErrUpdateTargetNotUnique,
		},
		{
			name:    "same username",
			found:   []models.Credential{{ID: 1, Username: "alice"}},
			request: models.UpdateRequest{Master: testMaster, Domain: "d", NewUsername: ptr("alice")},
			wantErr: ErrSameUsername,
		},
		{
			name:      "new username taken",
			found:     []models.Credential{{ID: 1, Username: "alice"}},
			updateErr: store.ErrCredentialAlreadyExists,
			request:   models.UpdateRequest{Master: testMaster, Domain: "d", NewUsername: ptr("bob")},
			wantErr:   ErrNewUsernameAlreadyExists,
		},
		{
			name:      "record vanished",
			found:     []models.Credential{{ID: 1, Username: "alice"}},
			updateErr: store.ErrCredentialNotFound,
			request:   models.UpdateRequest{Master: testMaster, Domain: "d", NewSecrets: []string{"x"}},
			wantErr:   ErrUpdateTargetNotUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCredentialSvc(t)

			repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(tt.found, nil)
			if tt.updateErr != nil {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(tt.updateErr)
			}

			err := svc.Update(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
