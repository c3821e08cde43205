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

type pricingJSON struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	PriceRange string   `json:"priceRange"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"isPopular"`
}

type pricingRequest struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	PriceRange string   `json:"priceRange"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"isPopular"`
}

func (a *API) handleListPricing(w http.ResponseWriter, r *http.Request) {
	packages, err := a.store.ListPricingPackages(r.Context())
	if err != nil {
		a.writeStoreError(w, err, "list pricing")
		return
	}
	out := make([]pricingJSON, 0, len(packages))
	for _, p := range packages {
		out = append(out, pricingJSON{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			PriceRange: p.PriceRange,
			Features:   p.Features,
			IsPopular:  p.IsPopular,
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"packages": out})
}

func (a *API) handleCreatePricing(w http.ResponseWriter, r *http.Request) {
	var req pricingRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	id, err := a.store.CreatePricingPackage(r.Context(), store.PricingPackage{
		Name:       req.Name,
		Category:   req.Category,
		PriceRange: req.PriceRange,
		Features:   req.Features,
		IsPopular:  req.IsPopular,
	})
	if err != nil {
		a.writeStoreError(w, err, "create pricing")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	row := a.pricingRow(id, req, identity.UserID)
	row["createdAt"] = a.timestamp()
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPricing,
		Op:      sheetmirror.OpAppend,
		ID:      strconv.FormatInt(id, 10),
		Row:     row,
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"id": id, "success": true})
}

func (a *API) handleUpdatePricing(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req pricingRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	err := a.store.UpdatePricingPackage(r.Context(), store.PricingPackage{
		ID:         id,
		Name:       req.Name,
		Category:   req.Category,
		PriceRange: req.PriceRange,
		Features:   req.Features,
		IsPopular:  req.IsPopular,
	})
	if err != nil {
		a.writeStoreError(w, err, "update pricing")
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPricing,
		Op:      sheetmirror.OpUpdate,
		ID:      strconv.FormatInt(id, 10),
		Row:     a.pricingRow(id, req, identity.UserID),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleDeletePricing(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.store.DeletePricingPackage(r.Context(), id); err != nil {
		a.writeStoreError(w, err, "delete pricing")
		return
	}

	a.outbox.Propagate(r.Context(), sheetmirror.MirrorEvent{
		Section: sheetmirror.SectionPricing,
		Op:      sheetmirror.OpDelete,
		ID:      strconv.FormatInt(id, 10),
	})

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) pricingRow(id int64, req pricingRequest, updatedBy string) sheetmirror.Row {
	return sheetmirror.Row{
		"id":         strconv.FormatInt(id, 10),
		"name":       req.Name,
		"category":   req.Category,
		"priceRange": req.PriceRange,
		"features":   jsonList(req.Features),
		"isPopular":  strconv.FormatBool(req.IsPopular),
		"updatedAt":  a.timestamp(),
		"updatedBy":  updatedBy,
	}
}
