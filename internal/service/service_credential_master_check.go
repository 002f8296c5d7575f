// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/pwdmngr/models"
)

// CredentialMasterCheckService refuses every operation, searches included,
// whose master credential does not match the stored reference.
type CredentialMasterCheckService struct {
	inner                   CredentialService
	masterCredentialService MasterCredentialService
}

func NewCredentialMasterCheckService(masterCredentialService MasterCredentialService) CredentialServiceWrapper {
	return &CredentialMasterCheckService{
		masterCredentialService: masterCredentialService,
	}
}

func (m *CredentialMasterCheckService) Insert(ctx context.Context, request models.InsertRequest) error {
	if err := m.masterCredentialService.Verify(ctx, request.Master); err != nil {
		return err
	}

	return m.inner.Insert(ctx, request)
}

func (m *CredentialMasterCheckService) Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error) {
	if err := m.masterCredentialService.Verify(ctx, request.Master); err != nil {
		return nil, err
	}

	return m.inner.Search(ctx, request)
}

func (m *CredentialMasterCheckService) GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error) {
	if err := m.masterCredentialService.Verify(ctx, request.Master); err != nil {
		return models.Credential{}, err
	}

	return m.inner.GetSecrets(ctx, request)
}

func (m *CredentialMasterCheckService) Update(ctx context.Context, request models.UpdateRequest) error {
	if err := m.masterCredentialService.Verify(ctx, request.Master); err != nil {
		return err
	}

	return m.inner.Update(ctx, request)
}

func (m *CredentialMasterCheckService) Wrap(wrapper CredentialService) CredentialService {
	m.inner = wrapper
	return m
}
