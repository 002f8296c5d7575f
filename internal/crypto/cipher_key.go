// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

const (
	// KeyLength is the size of a derived key in bytes. The same bytes serve
	// as the AES-128 key and as the CBC initialization vector.
	KeyLength = 16

	// keyMod is the prime modulus of the modular-inverse recurrence.
	keyMod = 1_000_000_007

	// asciiLimit bounds every derived key character to the ASCII range.
	asciiLimit = 128

	// churnCount is the number of shift/permute/invert rounds.
	churnCount = 128
)

// MasterCredential is the per-request secret pair a client presents to
// encrypt or decrypt its stored secrets.
type MasterCredential struct {
	// Password must be non-empty. It is processed as Unicode code points.
	Password string

	// Key must be non-negative. It seeds the permutation stream and the
	// Caesar shift.
	Key int64
}

// DerivedKey is the output of [DeriveKey]: KeyLength ASCII bytes.
type DerivedKey [KeyLength]byte

// DeriveKey stretches cred into a [DerivedKey].
//
// The password is trimmed or cyclically padded to KeyLength code points and
// then churned churnCount times. Each round shifts every code point by delta
// modulo asciiLimit, permutes the characters with a PRNG seeded by cred.Key,
// and replaces delta with its modular inverse. The initial delta is the
// inverse of cred.Key; a key divisible by keyMod has no inverse and yields a
// delta of 0 for every round, which is kept for compatibility.
//
// The result depends only on cred. An empty password or a negative key
// returns [ErrInvalidInput].
func DeriveKey(cred MasterCredential) (DerivedKey, error) {
	var key DerivedKey

	if cred.Password == "" {
		return key, fmt.Errorf("%w: master password should be at least one character long", ErrInvalidInput)
	}
	if cred.Key < 0 {
		return key, fmt.Errorf("%w: master key must be a non-negative integer", ErrInvalidInput)
	}

	delta := modInverse(cred.Key)
	rnd := newPyRandom(uint64(cred.Key))

	chars := fitToKeyLength([]rune(cred.Password))
	for i := 0; i < churnCount; i++ {
		for i, c := range chars {
			chars[i] = rune((int64(c) + delta) % asciiLimit)
		}
		chars = rnd.shuffle(chars)
		delta = modInverse(delta)
	}

	for i, c := range chars {
		key[i] = byte(c)
	}

	return key, nil
}

// fitToKeyLength truncates password to KeyLength code points, or repeats it
// and then appends a prefix of it until exactly KeyLength are collected.
func fitToKeyLength(password []rune) []rune {
	key := make([]rune, 0, KeyLength)
	key = append(key, password[:min(len(password), KeyLength)]...)

	for len(key)+len(password) < KeyLength {
		key = append(key, password...)
	}
	if len(key) < KeyLength {
		key = append(key, password[:KeyLength-len(key)]...)
	}

	return key
}

// modInverse returns n^(keyMod-2) mod keyMod, the inverse of n modulo the
// prime keyMod, or 0 when n is a multiple of keyMod.
func modInverse(n int64) int64 {
	result := int64(1)
	n %= keyMod

	for power := int64(keyMod - 2); power > 0; power >>= 1 {
		if power&1 == 1 {
			result = result * n % keyMod
		}
		n = n * n % keyMod
	}

	return result
}
