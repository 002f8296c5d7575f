// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/pwdmngr/internal/app"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/utils"
	"github.com/MKhiriev/pwdmngr/models"
)

// Form fields accepted by the credential routes.
const (
	formMasterPassword = "master-password"
	formMasterKey      = "master-key"
	formDomain         = "domain"
	formUsername       = "username"
	formSecret         = "secret"
	formQueryType      = "query-type"
	formNewUsername    = "new-username"
	formNewSecret      = "new-secret"
)

const maxFormMemory = 1 << 20

func (h *Handler) insert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseForm(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.insert").Msg("invalid form body")
		utils.WriteText(w, app.MsgInvalidForm+"\n"+app.UsageInsert, http.StatusBadRequest)
		return
	}

	request := models.InsertRequest{
		Master:   masterFromForm(form),
		Domain:   form.Get(formDomain),
		Username: form.Get(formUsername),
		Secrets:  form[formSecret],
	}

	if err = h.services.CredentialService.Insert(r.Context(), request); err != nil {
		h.writeError(w, r, "*Handler.insert", err, app.UsageInsert)
		return
	}

	utils.WriteText(w, app.MsgSuccess, http.StatusOK)
}

// query serves both query types: type 1 lists matching domain/username
// pairs, type 2 returns the decrypted secrets of exactly one record.
func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseForm(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.query").Msg("invalid form body")
		utils.WriteText(w, app.MsgInvalidForm+"\n"+app.UsageQuery, http.StatusBadRequest)
		return
	}

	// an unparsable query type stays zero and is rejected by validation
	queryType, _ := strconv.Atoi(form.Get(formQueryType))

	request := models.QueryRequest{
		Master:   masterFromForm(form),
		Type:     models.QueryType(queryType),
		Domain:   form.Get(formDomain),
		Username: optionalField(form, formUsername),
	}

	if request.Type == models.QuerySecrets {
		credential, err := h.services.CredentialService.GetSecrets(r.Context(), request)
		if err != nil {
			h.writeError(w, r, "*Handler.query", err, app.UsageQuery)
			return
		}

		utils.WriteJSON(w, credential, http.StatusOK)
		return
	}

	summaries, err := h.services.CredentialService.Search(r.Context(), request)
	if err != nil {
		h.writeError(w, r, "*Handler.query", err, app.UsageQuery)
		return
	}
	if summaries == nil {
		summaries = []models.CredentialSummary{}
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseForm(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("invalid form body")
		utils.WriteText(w, app.MsgInvalidForm+"\n"+app.UsageUpdate, http.StatusBadRequest)
		return
	}

	request := models.UpdateRequest{
		Master:      masterFromForm(form),
		Domain:      form.Get(formDomain),
		Username:    optionalField(form, formUsername),
		NewUsername: optionalField(form, formNewUsername),
		NewSecrets:  form[formNewSecret],
	}

	if err = h.services.CredentialService.Update(r.Context(), request); err != nil {
		h.writeError(w, r, "*Handler.update", err, app.UsageUpdate)
		return
	}

	utils.WriteText(w, app.MsgSuccess, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error, usage string) {
	status, message := responseFromError(err, usage)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteText(w, message, status)
}

// parseForm reads url-encoded and multipart bodies alike. Only body fields
// are returned; query string parameters are ignored.
func parseForm(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	return r.PostForm, nil
}

func masterFromForm(form url.Values) models.MasterInput {
	return models.MasterInput{
		Password: form.Get(formMasterPassword),
		Key:      form.Get(formMasterKey),
	}
}

// optionalField returns nil when key is absent from form, and a pointer to
// its first value (possibly empty) otherwise.
func optionalField(form url.Values, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}

	value := values[0]
	return &value
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, app.MsgNotFound, http.StatusNotFound)
}
