// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is a stored record: a (domain, username) pair and its list of
// secrets. Secrets hold base64 AES-CBC ciphertexts while the record is at
// rest and plaintexts once decrypted for a response.
type Credential struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"-"`

	// Domain is the site or service the credential belongs to. Stored as
	// given; searches compare it case-insensitively.
	Domain string `json:"domain"`

	// Username is unique per domain.
	Username string `json:"username"`

	// Secrets keeps the order the client submitted them in.
	Secrets []string `json:"secrets"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// Summary strips the secrets off c.
func (c Credential) Summary() CredentialSummary {
	return CredentialSummary{Domain: c.Domain, Username: c.Username}
}

// CredentialSummary is a search hit. It never carries secrets.
type CredentialSummary struct {
	Domain   string `json:"domain"`
	Username string `json:"username"`
}

// CredentialFilter selects credentials by domain and, optionally, username.
// Exact filters compare whole values; substring filters match
// case-insensitively anywhere in the column.
type CredentialFilter struct {
	Domain   string
	Username string
}

// HasUsername reports whether the filter narrows by username.
func (f CredentialFilter) HasUsername() bool {
	return f.Username != ""
}

// CredentialUpdate changes one stored record. Nil fields stay untouched.
type CredentialUpdate struct {
	ID       int64
	Username *string
	Secrets  []string
}

// IsEmpty reports whether the update would change nothing.
func (u CredentialUpdate) IsEmpty() bool {
	return u.Username == nil && u.Secrets == nil
}
