// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

type contactJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func (a *API) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	created, err := a.store.CreateContactSubmission(r.Context(), store.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		a.writeStoreError(w, err, "submit contact")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionContact,
		Op:      sheetmirror.OpAppend,
		ID:      strconv.FormatInt(created.ID, 10),
		Row: sheetmirror.Row{
			"id":          strconv.FormatInt(created.ID, 10),
			"name":        req.Name,
			"email":       req.Email,
			"phone":       req.Phone,
			"serviceType": req.ServiceType,
			"message":     req.Message,
			"status":      store.ContactStatusPending,
			"createdAt":   a.timestamp(),
		},
	})

	a.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Terima kasih! Pesan Anda telah diterima. Tim kami akan menghubungi Anda segera.",
	})
}

func (a *API) handleListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.store.ListContactSubmissions(r.Context())
	if err != nil {
		a.writeStoreError(w, err, "list contact submissions")
		return
	}
	out := make([]contactJSON, 0, len(submissions))
	for _, c := range submissions {
		out = append(out, contactJSON{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			ServiceType: c.ServiceType,
			Message:     c.Message,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"submissions": out})
}

func (a *API) handleUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !a.decodeBody(w, r, &req) {
		return
	}
	if !store.ValidContactStatus(req.Status) {
		a.writeError(w, http.StatusBadRequest, "invalid_request", "Status must be one of: pending, contacted, completed")
		return
	}

	if _, err := a.store.UpdateContactStatus(r.Context(), id, req.Status); err != nil {
		a.writeStoreError(w, err, "update contact status")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionContact,
		Op:      sheetmirror.OpUpdate,
		ID:      strconv.FormatInt(id, 10),
		Row: sheetmirror.Row{
			"status":    req.Status,
			"updatedAt": a.timestamp(),
		},
	})

	a.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Status updated to %s", req.Status),
	})
}
