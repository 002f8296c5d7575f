// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pwdmngr server handlers and the command-line client.
//
// Msg* constants are the exact bodies written to HTTP responses. Existing
// clients match on them, so their wording must not change.
package app

const (
	MsgSuccess       = "Success!"
	MsgUnauthorized  = "Unauthorized!"
	MsgInternalError = "Internal error!"
	MsgNotFound      = "Not found!"
	MsgInvalidForm   = "Request body cannot be parsed."
)

// Messages describing why a request was rejected. They are followed by the
// usage line of the called route.
const (
	MsgWrongMasterPassword     = "Master password is missing or incorrect."
	MsgWrongMasterKey          = "Master key is missing or incorrect."
	MsgInconsistentMaster      = "Multiple master password/keys are available. Database is inconsistent."
	MsgMissingDomain           = "Domain is missing in the request."
	MsgMissingUsername         = "Username is missing in the request."
	MsgNoSecrets               = "At least one secret is required."
	MsgEmptySecret             = "One or more secret(s) have missing values."
	MsgInvalidSecret           = "Secrets must be valid UTF-8 text."
	MsgCredentialAlreadyExists = "The given combination of domain and username already exists."
	MsgInvalidQueryType        = "Query type is missing or invalid in request."
	MsgEmptyUsername           = "If username is specified in request, then it should be non-empty."
	MsgEmptyNewUsername        = "If new username is specified in request, then it should be non-empty."
	MsgEmptyNewSecret          = "If new secrets is specified in request, then it should be valid."
	MsgSameUsername            = "Old and new username cannot be same."
	MsgNewUsernameExists       = "The given combination for domain and new username already exists."
)

// Messages for query and update requests that were well formed but matched
// the wrong number of records.
const (
	MsgMultipleRecordsFound  = "Multiple records were found. Only one record is allowed for decryption."
	MsgNoRecordFound         = "No records were found for the given combination."
	MsgUpdateTargetNotUnique = "Exactly one record must match for update. Multiple or no match has been found."
	MsgCannotDecryptSecrets  = "Secrets cannot be decrypted with the given master password and key."
)

// Usage lines appended to rejection messages.
const (
	UsageInsert = `Usage: curl <url>/insert -H "auth-key: (required)" -d "master-password=(required)&master-key=(required)&domain=(required)&username=(required)&secret=(required)&secret=(optional)..."`

	UsageSearch  = `Usage: curl <url>/query -H "auth-key: (required)" -d "query-type=1&master-password=(required)&master-key=(required)&domain=(required)&username=(optional)"`
	UsageSecrets = `Usage: curl <url>/query -H "auth-key: (required)" -d "query-type=2&master-password=(required)&master-key=(required)&domain=(required)&username=(optional)"`
	UsageQuery   = UsageSearch + "\nOR\n" + UsageSecrets

	UsageUpdate = `Usage: curl <url>/update -H "auth-key: (required)" -d "master-password=(required)&master-key=(required)&domain=(required)&username=(optional)&new-username=(optional)&new-secret=(optional)&new-secret=(optional)..."`
)
