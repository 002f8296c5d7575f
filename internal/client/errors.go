// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoClipboard    = errors.New("clipboard is not available")
	ErrNothingToCopy  = errors.New("credential has no secrets to copy")
)
