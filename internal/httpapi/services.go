// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

type serviceJSON struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

type serviceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

func (a *API) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := a.store.ListServices(r.Context())
	if err != nil {
		a.writeStoreError(w, err, "list services")
		return
	}
	out := make([]serviceJSON, 0, len(services))
	for _, s := range services {
		out = append(out, serviceJSON{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Category:    s.Category,
			Icon:        s.Icon,
			Features:    s.Features,
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"services": out})
}

func (a *API) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	id, err := a.store.CreateService(r.Context(), store.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Features:    req.Features,
	})
	if err != nil {
		a.writeStoreError(w, err, "create service")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	now := a.timestamp()
	row := a.serviceRow(id, req, identity.UserID)
	row["createdAt"] = now
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionServices,
		Op:      sheetmirror.OpAppend,
		ID:      strconv.FormatInt(id, 10),
		Row:     row,
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"id": id, "success": true})
}

func (a *API) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req serviceRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	err := a.store.UpdateService(r.Context(), store.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Features:    req.Features,
	})
	if err != nil {
		a.writeStoreError(w, err, "update service")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionServices,
		Op:      sheetmirror.OpUpdate,
		ID:      strconv.FormatInt(id, 10),
		Row:     a.serviceRow(id, req, identity.UserID),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.store.DeleteService(r.Context(), id); err != nil {
		a.writeStoreError(w, err, "delete service")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionServices,
		Op:      sheetmirror.OpDelete,
		ID:      strconv.FormatInt(id, 10),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) serviceRow(id int64, req serviceRequest, updatedBy string) sheetmirror.Row {
	return sheetmirror.Row{
		"id":          strconv.FormatInt(id, 10),
		"name":        req.Name,
		"description": req.Description,
		"category":    req.Category,
		"icon":        req.Icon,
		"features":    jsonList(req.Features),
		"updatedAt":   a.timestamp(),
		"updatedBy":   updatedBy,
	}
}

// jsonList serializes a string list for a sheet cell; nil becomes "[]".
func jsonList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}
