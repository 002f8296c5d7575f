// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/pwdmngr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialServiceWrapper

// AuthService checks the API key every request carries.
type AuthService interface {
	Authenticate(ctx context.Context, authKey string) error
	RegisterAuthKey(ctx context.Context, authKey string) error
}

// MasterCredentialService guards every credential operation with the
// single master password and key pair.
type MasterCredentialService interface {
	Verify(ctx context.Context, master models.MasterInput) error
	Provision(ctx context.Context, master models.MasterInput) error
}

// CredentialService stores and reads credential records. Secrets are
// encrypted with a key derived from the request's master credential.
type CredentialService interface {
	Insert(ctx context.Context, request models.InsertRequest) error
	Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error)
	GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error)
	Update(ctx context.Context, request models.UpdateRequest) error
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// validating or checking the master credential.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService // returns a decorated CredentialService applying additional behavior
}
