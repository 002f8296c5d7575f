// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/pwdmngr/internal/validators"
	"github.com/MKhiriev/pwdmngr/models"
)

// CredentialValidationService rejects malformed requests before they reach
// the wrapped service. Returned errors wrap [validators.ErrInvalidRequest].
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialRequestValidator(),
	}
}

func (v *CredentialValidationService) Insert(ctx context.Context, request models.InsertRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}

	return v.inner.Insert(ctx, request)
}

func (v *CredentialValidationService) Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, err
	}

	return v.inner.Search(ctx, request)
}

func (v *CredentialValidationService) GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Credential{}, err
	}

	return v.inner.GetSecrets(ctx, request)
}

func (v *CredentialValidationService) Update(ctx context.Context, request models.UpdateRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}

	return v.inner.Update(ctx, request)
}

func (v *CredentialValidationService) Wrap(wrapper CredentialService) CredentialService {
	v.inner = wrapper
	return v
}
