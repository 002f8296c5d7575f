// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QueryType selects what the /query operation returns.
type QueryType int

const (
	// QuerySearch lists every credential whose domain (and username, when
	// given) contains the requested text. Secrets are not returned.
	QuerySearch QueryType = 1

	// QuerySecrets returns the decrypted secrets of exactly one credential.
	QuerySecrets QueryType = 2
)

// MasterInput is the raw master credential pair as submitted in a request.
// Key stays a string until validation parses it.
type MasterInput struct {
	Password string
	Key      string
}

// InsertRequest stores a new credential.
type InsertRequest struct {
	Master   MasterInput
	Domain   string
	Username string
	Secrets  []string
}

// QueryRequest looks credentials up. Username is nil when the client did
// not send one. An unparsable query type is kept as zero and rejected by
// validation.
type QueryRequest struct {
	Master   MasterInput
	Type     QueryType
	Domain   string
	Username *string
}

// UpdateRequest changes the username and/or the secrets of exactly one
// credential. Pointer fields are nil when the client did not send them.
type UpdateRequest struct {
	Master      MasterInput
	Domain      string
	Username    *string
	NewUsername *string
	NewSecrets  []string
}
