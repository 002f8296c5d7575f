// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pwdmngr command-line client.
//
// An [App] parses a subcommand (insert, search, secrets or update) and its
// flags, forwards the request to the server through an
// [adapter.ServerAdapter] and prints the answer.
package client
