// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pwdmngr/internal/mock"
	"github.com/MKhiriev/pwdmngr/internal/validators"
	"github.com/MKhiriev/pwdmngr/models"
)

func TestCredentialValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCredentialService(ctrl)
	svc := NewCredentialValidationService().Wrap(inner)
	ctx := context.Background()

	err := svc.Insert(ctx, models.InsertRequest{Master: testMaster, Username: "u", Secrets: []string{"s"}})
	assert.ErrorIs(t, err, validators.ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrMissingDomain)

	_, err = svc.Search(ctx, models.QueryRequest{Master: testMaster, Type: models.QuerySearch, Domain: "d", Username: ptr("")})
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)

	_, err = svc.GetSecrets(ctx, models.QueryRequest{Master: testMaster, Domain: "d"})
	assert.ErrorIs(t, err, validators.ErrInvalidQueryType)

	err = svc.Update(ctx, models.UpdateRequest{Master: testMaster, Domain: "d", NewUsername: ptr("")})
	assert.ErrorIs(t, err, validators.ErrEmptyNewUsername)
}

func TestCredentialValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCredentialService(ctrl)
	svc := NewCredentialValidationService().Wrap(inner)
	ctx := context.Background()

	insert := models.InsertRequest{Master: testMaster, Domain: "d", Username: "u", Secrets: []string{"s"}}
	search := models.QueryRequest{Master: testMaster, Type: models.QuerySearch, Domain: "d"}
	secrets := models.QueryRequest{Master: testMaster, Type: models.QuerySecrets, Domain: "d", Username: ptr("u")}
	update := models.UpdateRequest{Master: testMaster, Domain: "d", NewSecrets: []string{"n"}}

	inner.EXPECT().Insert(ctx, insert).Return(nil)
	inner.EXPECT().Search(ctx, search).Return(nil, nil)
	inner.EXPECT().GetSecrets(ctx, secrets).Return(models.Credential{}, nil)
	inner.EXPECT().Update(ctx, update).Return(nil)

	require.NoError(t, svc.Insert(ctx, insert))
	_, err := svc.Search(ctx, search)
	require.NoError(t, err)
	_, err = svc.GetSecrets(ctx, secrets)
	require.NoError(t, err)
	require.NoError(t, svc.Update(ctx, update))
}

func TestCredentialMasterCheckService(t *testing.T) {
	ctx := context.Background()
	request := models.QueryRequest{Master: testMaster, Type: models.QuerySearch, Domain: "d"}

	t.Run("wrong master stops the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		master := mock.NewMockMasterCredentialService(ctrl)
		inner := mock.NewMockCredentialService(ctrl)
		svc := NewCredentialMasterCheckService(master).Wrap(inner)

		master.EXPECT().Verify(ctx, testMaster).Return(ErrWrongMasterKey).Times(4)

		assert.ErrorIs(t, svc.Insert(ctx, models.InsertRequest{Master: testMaster}), ErrWrongMasterKey)
		_, err := svc.Search(ctx, request)
		assert.ErrorIs(t, err, ErrWrongMasterKey)
		_, err = svc.GetSecrets(ctx, request)
		assert.ErrorIs(t, err, ErrWrongMasterKey)
		assert.ErrorIs(t, svc.Update(ctx, models.UpdateRequest{Master: testMaster}), ErrWrongMasterKey)
	})

	t.Run("verified master reaches inner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		master := mock.NewMockMasterCredentialService(ctrl)
		inner := mock.NewMockCredentialService(ctrl)
		svc := NewCredentialMasterCheckService(master).Wrap(inner)

		hits := []models.CredentialSummary{{Domain: "d", Username: "u"}}
		gomock.InOrder(
			master.EXPECT().Verify(ctx, testMaster).Return(nil),
			inner.EXPECT().Search(ctx, request).Return(hits, nil),
		)

		got, err := svc.Search(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, hits, got)
	})
}
