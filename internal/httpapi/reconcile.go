// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"net/http"

	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

// handleSyncPortfolios runs the sheet-to-database portfolio reconciliation.
// The reconciler is not safe for concurrent self-runs, so overlapping
// requests are rejected instead of queued.
func (a *API) handleSyncPortfolios(w http.ResponseWriter, r *http.Request) {
	if a.reconciler == nil {
		a.writeError(w, http.StatusInternalServerError, "configuration_error", "Sheet integration is not configured")
		return
	}
	if !a.reconcileMu.TryLock() {
		a.writeError(w, http.StatusConflict, "sync_in_progress", "A portfolio sync is already running")
		return
	}
	defer a.reconcileMu.Unlock()

	updated, err := a.reconciler.Run(r.Context())
	if err != nil {
		if sheetmirror.IsConfigError(err) {
			a.writeError(w, http.StatusInternalServerError, "configuration_error", err.Error())
			return
		}
		a.logger.Error("Portfolio sync failed", "error", err)
		a.writeError(w, http.StatusInternalServerError, "sync_failed", "Failed to sync portfolios")
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true, "updated": updated})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
