// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"fmt"
)

// EncryptAll encrypts every secret independently with [Codec.Encrypt]. The
// result has the same length and order as secrets. The first failure aborts
// the whole list and no partial result is returned.
func (c *Codec) EncryptAll(secrets []string) ([]string, error) {
	encrypted := make([]string, len(secrets))
	for i, secret := range secrets {
		ciphertext, err := c.Encrypt(secret)
		if err != nil {
			return nil, fmt.Errorf("secret #%d: %w", i, err)
		}
		encrypted[i] = ciphertext
	}

	return encrypted, nil
}

// DecryptAll is the inverse of [Codec.EncryptAll].
func (c *Codec) DecryptAll(secrets []string) ([]string, error) {
	decrypted := make([]string, len(secrets))
	for i, secret := range secrets {
		plaintext, err := c.Decrypt(secret)
		if err != nil {
			return nil, fmt.Errorf("secret #%d: %w", i, err)
		}
		decrypted[i] = plaintext
	}

	return decrypted, nil
}

// DecryptAllChained decrypts lists written by the previous deployment, which
// encrypted a record's secrets through one running CBC stream: the first
// secret uses the derived key as IV and every following secret continues
// from the last ciphertext block of the one before it.
func (c *Codec) DecryptAllChained(secrets []string) ([]string, error) {
	decrypted := make([]string, len(secrets))
	iv := c.key[:]
	for i, secret := range secrets {
		encrypted, err := decodeCiphertext(secret)
		if err != nil {
			return nil, fmt.Errorf("secret #%d: %w", i, err)
		}

		plaintext, err := c.decrypt(encrypted, iv)
		if err != nil {
			return nil, fmt.Errorf("secret #%d: %w", i, err)
		}

		decrypted[i] = plaintext
		iv = encrypted[len(encrypted)-aes.BlockSize:]
	}

	return decrypted, nil
}
