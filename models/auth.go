// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthKey is a registered API key. Only its hash is stored.
type AuthKey struct {
	ID        int64
	KeyHash   string
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the AuthKey model.
func (a AuthKey) TableName() string {
	return "auth_keys"
}

// MasterCredentialHash is the stored reference for the master credential:
// hashes of the master password and of the decimal master key. Rows written
// by this service hold bcrypt hashes; older rows may hold SHA-256 hex.
type MasterCredentialHash struct {
	ID           int64
	PasswordHash string
	KeyHash      string
}

// TableName returns the name of the database table
// associated with the MasterCredentialHash model.
func (m MasterCredentialHash) TableName() string {
	return "master_credentials"
}
