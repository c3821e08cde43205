// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/images"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

// Store is the persistence surface the handlers require. *store.Store
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	CreateService(ctx context.Context, svc store.Service) (int64, error)
	ListServices(ctx context.Context) ([]store.Service, error)
	UpdateService(ctx context.Context, svc store.Service) error
	DeleteService(ctx context.Context, id int64) error

	CreatePortfolio(ctx context.Context, p store.Portfolio, imagesJSON, updatedBy string) (int64, error)
	ListPortfolios(ctx context.Context, category string, limit int) ([]store.Portfolio, error)
	UpdatePortfolio(ctx context.Context, p store.Portfolio, imagesJSON, updatedBy string) error
	PortfolioImagesJSON(ctx context.Context, id int64) (string, error)
	DeletePortfolio(ctx context.Context, id int64) error

	CreatePricingPackage(ctx context.Context, p store.PricingPackage) (int64, error)
	ListPricingPackages(ctx context.Context) ([]store.PricingPackage, error)
	UpdatePricingPackage(ctx context.Context, p store.PricingPackage) error
	DeletePricingPackage(ctx context.Context, id int64) error

	CreateTestimonial(ctx context.Context, t store.Testimonial) (int64, error)
	ListTestimonials(ctx context.Context) ([]store.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t store.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error

	CreateContactSubmission(ctx context.Context, c store.ContactSubmission) (store.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context) ([]store.ContactSubmission, error)
	UpdateContactStatus(ctx context.Context, id int64, status string) (store.ContactSubmission, error)
}

// Authenticator resolves bearer tokens to identities and issues session
// tokens for successful logins.
type Authenticator interface {
	Authenticate(r *http.Request) (auth.Identity, error)
	GenerateSessionToken(userID, role string, ttl time.Duration) (string, error)
}

// ImageUploader hosts portfolio image variants on the public blob host.
type ImageUploader interface {
	UploadVariants(ctx context.Context, fileName, contentType string, data []byte) (*images.UploadResult, error)
	DeleteByURLs(ctx context.Context, urls []string)
}

// Reconciler pulls the external document's portfolio rows back into the
// database. Run is not safe for concurrent self-runs.
type Reconciler interface {
	Run(ctx context.Context) (updated int, err error)
}

// API holds the REST handlers for the marketing site backend. Writes go to
// the database synchronously and are then mirrored through the outbox;
// mirror failures never surface in responses.
type API struct {
	store      Store
	authn      Authenticator
	outbox     sheetmirror.Outbox
	uploader   ImageUploader
	reconciler Reconciler
	logger     *slog.Logger
	now        func() time.Time

	reconcileMu sync.Mutex
}

// New creates the API. uploader and reconciler may be nil when the
// corresponding integrations are not configured; their endpoints then
// answer with a configuration error.
func New(st Store, authn Authenticator, outbox sheetmirror.Outbox, uploader ImageUploader, reconciler Reconciler, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		store:      st,
		authn:      authn,
		outbox:     outbox,
		uploader:   uploader,
		reconciler: reconciler,
		logger:     logger,
		now:        time.Now,
	}
}

func (a *API) timestamp() string {
	return a.now().UTC().Format(time.RFC3339)
}
