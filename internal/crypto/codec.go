// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Codec encrypts and decrypts single secrets with AES-128-CBC under a key
// derived from a [MasterCredential]. The derived key is used as the key and
// as the IV, so equal plaintexts produce equal ciphertexts.
//
// A Codec holds only the derived key and is safe for concurrent use. It is
// meant to live for a single request.
type Codec struct {
	key DerivedKey
}

// NewCodec derives the key for cred once and returns a Codec bound to it.
// It fails with [ErrInvalidInput] when cred violates its preconditions.
func NewCodec(cred MasterCredential) (*Codec, error) {
	key, err := DeriveKey(cred)
	if err != nil {
		return nil, err
	}

	return &Codec{key: key}, nil
}

// Encrypt pads the UTF-8 bytes of plaintext with PKCS#7, encrypts them in
// CBC mode and returns the standard base64 encoding of the result.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	encrypted, err := c.encrypt(plaintext, c.key[:])
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// Decrypt reverses [Codec.Encrypt]. Malformed base64, a length that is not a
// positive multiple of the block size, invalid padding or non-UTF-8 output
// all return [ErrDecryption].
func (c *Codec) Decrypt(ciphertext string) (string, error) {
	encrypted, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	return c.decrypt(encrypted, c.key[:])
}

func (c *Codec) encrypt(plaintext string, iv []byte) ([]byte, error) {
	if !utf8.ValidString(plaintext) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrInvalidInput)
	}

	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, padded)

	return encrypted, nil
}

func (c *Codec) decrypt(encrypted, iv []byte) (string, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %w", ErrDecryption, err)
	}

	decrypted := make([]byte, len(encrypted))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, encrypted)

	plaintext, err := unpadPKCS7(decrypted, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryption)
	}

	return string(plaintext), nil
}

// decodeCiphertext base64-decodes s and checks that it holds whole blocks.
func decodeCiphertext(s string) ([]byte, error) {
	encrypted, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}
	if len(encrypted) == 0 || len(encrypted)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes is not a positive multiple of %d", ErrDecryption, len(encrypted), aes.BlockSize)
	}

	return encrypted, nil
}

// padPKCS7 always appends between 1 and size bytes so unpadding is
// unambiguous.
func padPKCS7(src []byte, size int) []byte {
	n := size - len(src)%size

	padded := make([]byte, len(src)+n)
	copy(padded, src)
	for i := len(src); i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

func unpadPKCS7(src []byte, size int) ([]byte, error) {
	if len(src) == 0 || len(src)%size != 0 {
		return nil, fmt.Errorf("expected PKCS7 padding for block size %d, but have %d bytes", size, len(src))
	}

	n := int(src[len(src)-1])
	if n == 0 || n > size {
		return nil, fmt.Errorf("invalid padding length %d", n)
	}
	for _, b := range src[len(src)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("padding bytes are inconsistent")
		}
	}

	return src[:len(src)-n], nil
}
