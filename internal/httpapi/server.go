// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import "net/http"

// Handler builds the full route table. Mutating routes require the admin
// role; reading contact submissions requires any authenticated identity.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("POST /auth/login", a.handleLogin)

	mux.HandleFunc("GET /services", a.handleListServices)
	mux.HandleFunc("POST /services", a.requireAdmin(a.handleCreateService))
	mux.HandleFunc("PUT /services/{id}", a.requireAdmin(a.handleUpdateService))
	mux.HandleFunc("DELETE /services/{id}", a.requireAdmin(a.handleDeleteService))

	mux.HandleFunc("GET /portfolios", a.handleListPortfolios)
	mux.HandleFunc("POST /portfolios", a.requireAdmin(a.handleCreatePortfolio))
	mux.HandleFunc("PUT /portfolios/{id}", a.requireAdmin(a.handleUpdatePortfolio))
	mux.HandleFunc("DELETE /portfolios/{id}", a.requireAdmin(a.handleDeletePortfolio))

	mux.HandleFunc("GET /pricing", a.handleListPricing)
	mux.HandleFunc("POST /pricing", a.requireAdmin(a.handleCreatePricing))
	mux.HandleFunc("PUT /pricing/{id}", a.requireAdmin(a.handleUpdatePricing))
	mux.HandleFunc("DELETE /pricing/{id}", a.requireAdmin(a.handleDeletePricing))

	mux.HandleFunc("GET /testimonials", a.handleListTestimonials)
	mux.HandleFunc("POST /testimonials", a.requireAdmin(a.handleCreateTestimonial))
	mux.HandleFunc("PUT /testimonials/{id}", a.requireAdmin(a.handleUpdateTestimonial))
	mux.HandleFunc("DELETE /testimonials/{id}", a.requireAdmin(a.handleDeleteTestimonial))

	mux.HandleFunc("POST /contact", a.handleSubmitContact)
	mux.HandleFunc("GET /contact-submissions", a.requireAuth(a.handleListContactSubmissions))
	mux.HandleFunc("PUT /contact-submissions/{id}/status", a.requireAdmin(a.handleUpdateContactStatus))

	mux.HandleFunc("POST /admin/portfolio/upload", a.requireAdmin(a.handleUploadPortfolioImage))
	mux.HandleFunc("POST /admin/sync/portfolios", a.requireAdmin(a.handleSyncPortfolios))

	return a.requestLogger(mux)
}
