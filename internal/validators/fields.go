// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict Validate to a subset of rules.
const (
	FieldMasterPassword = "master-password"
	FieldMasterKey      = "master-key"
	FieldDomain         = "domain"

	// FieldUsername requires a non-empty username.
	FieldUsername = "username"

	// FieldOptionalUsername accepts an absent username but not an empty one.
	FieldOptionalUsername = "optional username"

	FieldSecrets     = "secret"
	FieldQueryType   = "query-type"
	FieldNewUsername = "new-username"
	FieldNewSecrets  = "new-secret"
)
