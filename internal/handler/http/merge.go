// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sub-merger/internal/logger"
	"github.com/MKhiriev/go-sub-merger/internal/utils"
	"github.com/MKhiriev/go-sub-merger/internal/validators"
	"github.com/MKhiriev/go-sub-merger/models"
)

// merge serves GET /merge?template=<url>&nodes=<url>. The merged document is
// written as JSON; any failure is written as a plain "Error: <cause>" body.
func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	request := models.MergeRequest{
		TemplateURL: query.Get(validators.FieldTemplateURL),
		NodesURL:    query.Get(validators.FieldNodesURL),
	}

	doc, err := h.services.MergeService.Merge(r.Context(), request)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("merge failed")
		utils.WriteError(w, err, status)
		return
	}

	if _, err = utils.WriteJSON(w, doc.Root, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing merged document")
	}
}
