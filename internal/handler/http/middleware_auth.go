// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pwdmngr/internal/app"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/service"
	"github.com/MKhiriev/pwdmngr/internal/utils"
)

// auth is an HTTP middleware that admits only requests whose "auth-key"
// header holds a registered API key.
//
// Missing and unknown keys are answered with 403 "Unauthorized!". A failing
// key lookup is answered with 500 "Internal error!".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		err := h.services.AuthService.Authenticate(r.Context(), r.Header.Get(utils.AuthKeyHeader))
		if err != nil {
			if errors.Is(err, service.ErrEmptyAuthKey) || errors.Is(err, service.ErrUnknownAuthKey) {
				log.Warn().Err(err).Str("func", "*Handler.auth").Msg("request rejected")
				utils.WriteText(w, app.MsgUnauthorized, http.StatusForbidden)
				return
			}

			log.Err(err).Str("func", "*Handler.auth").Msg("authentication failed")
			utils.WriteText(w, app.MsgInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}
