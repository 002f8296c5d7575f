// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential cipher used to protect every
// stored secret.
//
// The pipeline has three layers:
//
//	MasterCredential ─► DeriveKey ─► DerivedKey (16 ASCII bytes)
//	DerivedKey       ─► Codec     ─► AES-128-CBC, key = IV, PKCS#7, base64
//	Codec            ─► EncryptAll / DecryptAll over an ordered secret list
//
// Key derivation is a deterministic churn of Caesar shifts, modular-inverse
// updates and seeded permutations. The permutation stream comes from a port
// of CPython's Mersenne Twister and random.sample, so keys derived here are
// byte-identical to those of the existing deployment and previously stored
// ciphertexts stay readable.
//
// Everything in this package is a pure function of its inputs. No value is
// cached between calls and no logging is performed; callers decide how
// [ErrInvalidInput] and [ErrDecryption] are surfaced.
package crypto
