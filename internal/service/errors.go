// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyAuthKey   = errors.New("empty auth key")
	ErrUnknownAuthKey = errors.New("unknown auth key")

	ErrWrongMasterPassword = errors.New("wrong master password")
	ErrWrongMasterKey      = errors.New("wrong master key")
	ErrInvalidMasterKey    = errors.New("master key is not a non-negative integer")

	ErrCredentialAlreadyExists   = errors.New("credential already exists")
	ErrCredentialNotFound        = errors.New("no credential matches the request")
	ErrMultipleCredentialsFound  = errors.New("more than one credential matches the request")
	ErrUpdateTargetNotUnique     = errors.New("update must match exactly one credential")
	ErrSameUsername              = errors.New("new username equals the current one")
	ErrNewUsernameAlreadyExists  = errors.New("domain already has a credential with the new username")
	ErrDecryptingSecrets         = errors.New("stored secrets cannot be decrypted")
	ErrMasterCredentialsNotSet   = errors.New("master credentials are not provisioned")
	ErrInconsistentMasterStorage = errors.New("master credential storage is inconsistent")
)
