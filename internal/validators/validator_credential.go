// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/pwdmngr/models"
)

// CredentialRequestValidator checks the shape of insert, query and update
// requests. Rules run in a fixed order and the first violation is returned.
// Nothing here touches storage; uniqueness and master credential checks
// happen in the service layer.
type CredentialRequestValidator struct {
}

func NewCredentialRequestValidator() Validator {
	return &CredentialRequestValidator{}
}

func (v *CredentialRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MasterInput:
		return v.validateMaster(ctx, value, fields...)
	case *models.MasterInput:
		return v.validateMaster(ctx, *value, fields...)

	case models.InsertRequest:
		return v.validateInsertRequest(ctx, value, fields...)
	case *models.InsertRequest:
		return v.validateInsertRequest(ctx, *value, fields...)

	case models.QueryRequest:
		return v.validateQueryRequest(ctx, value, fields...)
	case *models.QueryRequest:
		return v.validateQueryRequest(ctx, *value, fields...)

	case models.UpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialRequestValidator) validateMaster(_ context.Context, master models.MasterInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterPassword, FieldMasterKey}
	}

	for _, f := range fields {
		switch f {
		case FieldMasterPassword:
			if master.Password == "" {
				return invalid(ErrMissingMasterPassword)
			}
		case FieldMasterKey:
			if !isMasterKey(master.Key) {
				return invalid(ErrInvalidMasterKey)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialRequestValidator) validateInsertRequest(ctx context.Context, request models.InsertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterPassword, FieldMasterKey, FieldDomain, FieldUsername, FieldSecrets}
	}

	for _, f := range fields {
		switch f {
		case FieldMasterPassword, FieldMasterKey:
			if err := v.validateMaster(ctx, request.Master, f); err != nil {
				return err
			}
		case FieldDomain:
			if request.Domain == "" {
				return invalid(ErrMissingDomain)
			}
		case FieldUsername:
			if request.Username == "" {
				return invalid(ErrMissingUsername)
			}
		case FieldSecrets:
			if len(request.Secrets) == 0 {
				return invalid(ErrNoSecrets)
			}
			if hasEmpty(request.Secrets) {
				return invalid(ErrEmptySecret)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialRequestValidator) validateQueryRequest(ctx context.Context, request models.QueryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterPassword, FieldMasterKey, FieldQueryType, FieldDomain, FieldOptionalUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldMasterPassword, FieldMasterKey:
			if err := v.validateMaster(ctx, request.Master, f); err != nil {
				return err
			}
		case FieldQueryType:
			if request.Type != models.QuerySearch && request.Type != models.QuerySecrets {
				return invalid(ErrInvalidQueryType)
			}
		case FieldDomain:
			if request.Domain == "" {
				return invalid(ErrMissingDomain)
			}
		case FieldOptionalUsername:
			if request.Username != nil && *request.Username == "" {
				return invalid(ErrEmptyUsername)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialRequestValidator) validateUpdateRequest(ctx context.Context, request models.UpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterPassword, FieldMasterKey, FieldDomain, FieldOptionalUsername, FieldNewUsername, FieldNewSecrets}
	}

	for _, f := range fields {
		switch f {
		case FieldMasterPassword, FieldMasterKey:
			if err := v.validateMaster(ctx, request.Master, f); err != nil {
				return err
			}
		case FieldDomain:
			if request.Domain == "" {
				return invalid(ErrMissingDomain)
			}
		case FieldOptionalUsername:
			if request.Username != nil && *request.Username == "" {
				return invalid(ErrEmptyUsername)
			}
		case FieldNewUsername:
			if request.NewUsername != nil && *request.NewUsername == "" {
				return invalid(ErrEmptyNewUsername)
			}
		case FieldNewSecrets:
			if hasEmpty(request.NewSecrets) {
				return invalid(ErrEmptyNewSecret)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isMasterKey(key string) bool {
	parsed, err := strconv.ParseInt(key, 10, 64)
	return err == nil && parsed >= 0
}

func hasEmpty(values []string) bool {
	for _, s := range values {
		if s == "" {
			return true
		}
	}
	return false
}
