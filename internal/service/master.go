// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/pwdmngr/internal/crypto"
	"github.com/MKhiriev/pwdmngr/models"
)

func parseMasterKey(key string) (int64, error) {
	parsed, err := strconv.ParseInt(key, 10, 64)
	if err != nil || parsed < 0 {
		return 0, ErrInvalidMasterKey
	}

	return parsed, nil
}

// newCodec derives the cipher for one request from its master credential.
func newCodec(master models.MasterInput) (*crypto.Codec, error) {
	key, err := parseMasterKey(master.Key)
	if err != nil {
		return nil, err
	}

	codec, err := crypto.NewCodec(crypto.MasterCredential{Password: master.Password, Key: key})
	if err != nil {
		return nil, fmt.Errorf("deriving cipher key: %w", err)
	}

	return codec, nil
}
