// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/store"
)

type Services struct {
	AuthService             AuthService
	MasterCredentialService MasterCredentialService
	CredentialService       CredentialService
}

// NewServices wires the services on top of storages. Credential requests
// are validated first, then checked against the master credential, and only
// then reach the repository.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	masterCredentialService := NewMasterCredentialService(storages.MasterCredentialRepository, cfg.App, logger)

	var credentialService CredentialService = NewCredentialService(storages.CredentialRepository, logger)
	credentialService = NewCredentialMasterCheckService(masterCredentialService).Wrap(credentialService)
	credentialService = NewCredentialValidationService().Wrap(credentialService)

	return &Services{
		AuthService:             NewAuthService(storages.AuthKeyRepository, cfg.App, logger),
		MasterCredentialService: masterCredentialService,
		CredentialService:       credentialService,
	}
}
