// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the cipher. Callers match them with [errors.Is];
// the concrete reason is attached by wrapping.
var (
	// ErrInvalidInput is returned when a master credential violates its
	// preconditions (empty password, negative key) or a plaintext is not
	// valid UTF-8.
	ErrInvalidInput = errors.New("invalid cipher input")

	// ErrDecryption is returned when a ciphertext cannot be turned back into
	// plaintext: malformed base64, wrong block length, bad padding or
	// non-UTF-8 output. With a well-formed ciphertext this almost always
	// means the master credential differs from the one used to encrypt.
	ErrDecryption = errors.New("decryption failed")
)
