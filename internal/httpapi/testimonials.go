// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

type testimonialJSON struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	Company     string `json:"company"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ProjectType string `json:"projectType"`
}

type testimonialRequest struct {
	ClientName  string `json:"clientName"`
	Company     string `json:"company"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ProjectType string `json:"projectType"`
}

func (a *API) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := a.store.ListTestimonials(r.Context())
	if err != nil {
		a.writeStoreError(w, err, "list testimonials")
		return
	}
	out := make([]testimonialJSON, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, testimonialJSON{
			ID:          t.ID,
			ClientName:  t.ClientName,
			Company:     t.Company,
			Rating:      t.Rating,
			Comment:     t.Comment,
			ProjectType: t.ProjectType,
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"testimonials": out})
}

func (a *API) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	id, err := a.store.CreateTestimonial(r.Context(), store.Testimonial{
		ClientName:  req.ClientName,
		Company:     req.Company,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ProjectType: req.ProjectType,
	})
	if err != nil {
		a.writeStoreError(w, err, "create testimonial")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	row := a.testimonialRow(id, req, identity.UserID)
	row["createdAt"] = a.timestamp()
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionTestimonials,
		Op:      sheetmirror.OpAppend,
		ID:      strconv.FormatInt(id, 10),
		Row:     row,
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"id": id, "success": true})
}

func (a *API) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req testimonialRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	err := a.store.UpdateTestimonial(r.Context(), store.Testimonial{
		ID:          id,
		ClientName:  req.ClientName,
		Company:     req.Company,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ProjectType: req.ProjectType,
	})
	if err != nil {
		a.writeStoreError(w, err, "update testimonial")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionTestimonials,
		Op:      sheetmirror.OpUpdate,
		ID:      strconv.FormatInt(id, 10),
		Row:     a.testimonialRow(id, req, identity.UserID),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.store.DeleteTestimonial(r.Context(), id); err != nil {
		a.writeStoreError(w, err, "delete testimonial")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionTestimonials,
		Op:      sheetmirror.OpDelete,
		ID:      strconv.FormatInt(id, 10),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) testimonialRow(id int64, req testimonialRequest, updatedBy string) sheetmirror.Row {
	return sheetmirror.Row{
		"id":          strconv.FormatInt(id, 10),
		"clientName":  req.ClientName,
		"company":     req.Company,
		"rating":      strconv.Itoa(req.Rating),
		"comment":     req.Comment,
		"projectType": req.ProjectType,
		"updatedAt":   a.timestamp(),
		"updatedBy":   updatedBy,
	}
}
