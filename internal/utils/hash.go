// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashAuthKey returns the form in which an API key is stored and looked up.
//
// With an empty hashKey the result is the hex SHA-256 of key, which is what
// deployments without a configured hash key have always stored. Otherwise it
// is the hex HMAC-SHA256 of key under hashKey.
//
// Example usage:
//
//	stored := utils.HashAuthKey(r.Header.Get("auth-key"), cfg.App.AuthKeyHashKey)
func HashAuthKey(key string, hashKey string) string {
	if hashKey == "" {
		sum := sha256.Sum256([]byte(key))
		return hex.EncodeToString(sum[:])
	}

	return HashString(key, hashKey)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
