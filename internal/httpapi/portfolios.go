// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

type portfolioJSON struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"imageUrl"`
	ClientName     string   `json:"clientName"`
	CompletionDate string   `json:"completionDate"`
	Location       string   `json:"location"`
	Images         []string `json:"images,omitempty"`
	Thumbnail      *string  `json:"thumbnail"`
	Alt            *string  `json:"alt"`
	UpdatedAt      *string  `json:"updatedAt"`
}

type portfolioRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"imageUrl"`
	ClientName     string   `json:"clientName"`
	CompletionDate string   `json:"completionDate"`
	Location       string   `json:"location"`
	Images         []string `json:"images,omitempty"`
	Thumbnail      *string  `json:"thumbnail,omitempty"`
	Alt            *string  `json:"alt,omitempty"`
}

func (a *API) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			a.writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	portfolios, err := a.store.ListPortfolios(r.Context(), category, limit)
	if err != nil {
		a.writeStoreError(w, err, "list portfolios")
		return
	}

	out := make([]portfolioJSON, 0, len(portfolios))
	for _, p := range portfolios {
		item := portfolioJSON{
			ID:             p.ID,
			Title:          p.Title,
			Description:    p.Description,
			Category:       p.Category,
			ImageURL:       p.ImageURL,
			ClientName:     p.ClientName,
			CompletionDate: p.CompletionDate,
			Location:       p.Location,
			Thumbnail:      p.Thumbnail,
			Alt:            p.Alt,
		}
		// Unparseable images cells read as absent.
		if p.Images != nil {
			var urls []string
			if json.Unmarshal([]byte(*p.Images), &urls) == nil {
				item.Images = urls
			}
		}
		if p.UpdatedAt != nil {
			s := p.UpdatedAt.UTC().Format(time.RFC3339)
			item.UpdatedAt = &s
		}
		out = append(out, item)
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"portfolios": out})
}

func (a *API) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	imagesJSON := jsonList(req.Images)

	id, err := a.store.CreatePortfolio(r.Context(), store.Portfolio{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		ClientName:     req.ClientName,
		CompletionDate: req.CompletionDate,
		Location:       req.Location,
		Thumbnail:      req.Thumbnail,
		Alt:            req.Alt,
	}, imagesJSON, identity.UserID)
	if err != nil {
		a.writeStoreError(w, err, "create portfolio")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPortfolios,
		Op:      sheetmirror.OpAppend,
		ID:      strconv.FormatInt(id, 10),
		Row:     a.portfolioRow(id, req, imagesJSON, identity.UserID),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"id": id, "success": true})
}

func (a *API) handleUpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req portfolioRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	imagesJSON := jsonList(req.Images)

	err := a.store.UpdatePortfolio(r.Context(), store.Portfolio{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		ClientName:     req.ClientName,
		CompletionDate: req.CompletionDate,
		Location:       req.Location,
		Thumbnail:      req.Thumbnail,
		Alt:            req.Alt,
	}, imagesJSON, identity.UserID)
	if err != nil {
		a.writeStoreError(w, err, "update portfolio")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPortfolios,
		Op:      sheetmirror.OpUpdate,
		ID:      strconv.FormatInt(id, 10),
		Row:     a.portfolioRow(id, req, imagesJSON, identity.UserID),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	// Snapshot the hosted image URLs before the row disappears.
	imagesJSON, err := a.store.PortfolioImagesJSON(r.Context(), id)
	if err != nil {
		a.writeStoreError(w, err, "read portfolio images")
		return
	}

	if err := a.store.DeletePortfolio(r.Context(), id); err != nil {
		a.writeStoreError(w, err, "delete portfolio")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPortfolios,
		Op:      sheetmirror.OpDelete,
		ID:      strconv.FormatInt(id, 10),
	})

	if a.uploader != nil && imagesJSON != "" {
		var urls []string
		if json.Unmarshal([]byte(imagesJSON), &urls) == nil && len(urls) > 0 {
			a.uploader.DeleteByURLs(r.Context(), urls)
		}
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) portfolioRow(id int64, req portfolioRequest, imagesJSON, updatedBy string) sheetmirror.Row {
	return sheetmirror.Row{
		"id":             strconv.FormatInt(id, 10),
		"title":          req.Title,
		"description":    req.Description,
		"category":       req.Category,
		"images":         imagesJSON,
		"thumbnail":      stringOrEmpty(req.Thumbnail),
		"alt":            stringOrEmpty(req.Alt),
		"clientName":     req.ClientName,
		"completionDate": req.CompletionDate,
		"location":       req.Location,
		"updatedAt":      a.timestamp(),
		"updatedBy":      updatedBy,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
