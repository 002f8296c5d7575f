// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pwdmngr/internal/app"
	"github.com/MKhiriev/pwdmngr/internal/crypto"
	"github.com/MKhiriev/pwdmngr/internal/service"
	"github.com/MKhiriev/pwdmngr/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: validation errors wrap both ErrInvalidRequest
// and a rule error, so the first match wins.
var errorResponses = []errorResponse{
	{validators.ErrMissingMasterPassword, http.StatusBadRequest, app.MsgWrongMasterPassword},
	{validators.ErrInvalidMasterKey, http.StatusBadRequest, app.MsgWrongMasterKey},
	{validators.ErrMissingDomain, http.StatusBadRequest, app.MsgMissingDomain},
	{validators.ErrMissingUsername, http.StatusBadRequest, app.MsgMissingUsername},
	{validators.ErrNoSecrets, http.StatusBadRequest, app.MsgNoSecrets},
	{validators.ErrEmptySecret, http.StatusBadRequest, app.MsgEmptySecret},
	{validators.ErrInvalidQueryType, http.StatusBadRequest, app.MsgInvalidQueryType},
	{validators.ErrEmptyUsername, http.StatusBadRequest, app.MsgEmptyUsername},
	{validators.ErrEmptyNewUsername, http.StatusBadRequest, app.MsgEmptyNewUsername},
	{validators.ErrEmptyNewSecret, http.StatusBadRequest, app.MsgEmptyNewSecret},

	{service.ErrInvalidMasterKey, http.StatusBadRequest, app.MsgWrongMasterKey},
	{service.ErrWrongMasterPassword, http.StatusForbidden, app.MsgWrongMasterPassword},
	{service.ErrWrongMasterKey, http.StatusForbidden, app.MsgWrongMasterKey},
	{service.ErrInconsistentMasterStorage, http.StatusInternalServerError, app.MsgInconsistentMaster},

	{service.ErrCredentialAlreadyExists, http.StatusConflict, app.MsgCredentialAlreadyExists},
	{service.ErrNewUsernameAlreadyExists, http.StatusConflict, app.MsgNewUsernameExists},
	{service.ErrSameUsername, http.StatusBadRequest, app.MsgSameUsername},
	{service.ErrUpdateTargetNotUnique, http.StatusBadRequest, app.MsgUpdateTargetNotUnique},
	{service.ErrCredentialNotFound, http.StatusBadRequest, app.MsgNoRecordFound},
	{service.ErrMultipleCredentialsFound, http.StatusBadRequest, app.MsgMultipleRecordsFound},
	{service.ErrDecryptingSecrets, http.StatusBadRequest, app.MsgCannotDecryptSecrets},
	{crypto.ErrInvalidInput, http.StatusBadRequest, app.MsgInvalidSecret},
}

// responseFromError returns the status and body for err. Client errors get
// usage appended; anything unrecognized becomes 500 "Internal error!".
func responseFromError(err error, usage string) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.status >= http.StatusInternalServerError {
			return resp.status, resp.message
		}
		return resp.status, resp.message + "\n" + usage
	}

	return http.StatusInternalServerError, app.MsgInternalError
}
