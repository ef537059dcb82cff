// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
)

// adminData must be mounted behind [Handler.auth].
func (h *Handler) adminData(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.adminData", service.ErrTokenIsExpiredOrInvalid)
		return
	}

	data, err := h.services.AdminService.AdminData(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.adminData", err)
		return
	}

	utils.WriteJSON(w, models.AdminDataResponse{Data: data}, http.StatusOK)
}
