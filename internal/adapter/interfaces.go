// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets command-line tools talk to a running pwdmngr server.
//
// [ServerAdapter] hides the transport; [NewHTTPServerAdapter] implements it
// with form posts over HTTP. Non-2xx answers are mapped to the sentinel
// errors in errors.go so callers can use [errors.Is], and the server's
// message is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/pwdmngr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter performs the credential operations of a pwdmngr server on
// behalf of a client. The API key is attached by the implementation.
type ServerAdapter interface {
	// Insert stores a new credential.
	Insert(ctx context.Context, request models.InsertRequest) error

	// Search lists the domain/username pairs matching request. The request
	// type is forced to a search.
	Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error)

	// GetSecrets returns the decrypted secrets of the single credential
	// matching request. The request type is forced to a secrets query.
	GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error)

	// Update changes the username and/or secrets of one credential.
	Update(ctx context.Context, request models.UpdateRequest) error
}
