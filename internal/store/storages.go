// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/pwdmngr/internal/logger"

// Storages bundles every repository the services depend on.
type Storages struct {
	CredentialRepository       CredentialRepository
	AuthKeyRepository          AuthKeyRepository
	MasterCredentialRepository MasterCredentialRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository:       NewCredentialRepository(db, logger),
		AuthKeyRepository:          NewAuthKeyRepository(db, logger),
		MasterCredentialRepository: NewMasterCredentialRepository(db, logger),
	}
}
