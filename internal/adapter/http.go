// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/utils"
	"github.com/MKhiriev/pwdmngr/models"
)

const (
	retryCount = 2
	retryWait  = 200 * time.Millisecond
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the client with the resolved base URL, request timeout and
// API key. Server errors (5xx) and transport failures are retried.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithAuthKey(adapterCfg.AuthKey).
		WithRetries(retryCount, retryWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Insert implements [ServerAdapter]. It posts the request to /insert.
func (h *httpServerAdapter) Insert(ctx context.Context, request models.InsertRequest) error {
	form := masterForm(request.Master)
	form.Set("domain", request.Domain)
	form.Set("username", request.Username)
	form["secret"] = request.Secrets

	return h.postForm(ctx, "/insert", form, nil)
}

// Search implements [ServerAdapter]. It posts a type 1 query to /query.
func (h *httpServerAdapter) Search(ctx context.Context, request models.QueryRequest) ([]models.CredentialSummary, error) {
	request.Type = models.QuerySearch

	var summaries []models.CredentialSummary
	if err := h.postForm(ctx, "/query", queryForm(request), &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetSecrets implements [ServerAdapter]. It posts a type 2 query to /query.
func (h *httpServerAdapter) GetSecrets(ctx context.Context, request models.QueryRequest) (models.Credential, error) {
	request.Type = models.QuerySecrets

	var credential models.Credential
	if err := h.postForm(ctx, "/query", queryForm(request), &credential); err != nil {
		return models.Credential{}, err
	}

	return credential, nil
}

// Update implements [ServerAdapter]. It posts the request to /update.
func (h *httpServerAdapter) Update(ctx context.Context, request models.UpdateRequest) error {
	form := masterForm(request.Master)
	form.Set("domain", request.Domain)
	setOptional(form, "username", request.Username)
	setOptional(form, "new-username", request.NewUsername)
	if len(request.NewSecrets) > 0 {
		form["new-secret"] = request.NewSecrets
	}

	return h.postForm(ctx, "/update", form, nil)
}

// postForm posts form to path and, when result is not nil, decodes the
// JSON answer into it.
func (h *httpServerAdapter) postForm(ctx context.Context, path string, form url.Values, result any) error {
	req := h.client.R().
		SetContext(ctx).
		SetFormDataFromValues(form)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpServerAdapter.postForm").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("server rejected request")
		return err
	}

	return nil
}

func masterForm(master models.MasterInput) url.Values {
	return url.Values{
		"master-password": {master.Password},
		"master-key":      {master.Key},
	}
}

func queryForm(request models.QueryRequest) url.Values {
	form := masterForm(request.Master)
	form.Set("query-type", strconv.Itoa(int(request.Type)))
	form.Set("domain", request.Domain)
	setOptional(form, "username", request.Username)

	return form
}

func setOptional(form url.Values, key string, value *string) {
	if value != nil {
		form.Set(key, *value)
	}
}
