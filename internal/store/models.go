// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import "time"

// Service is one offered service with an ordered list of feature strings.
type Service struct {
	ID          int64    `db:"id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Category    string   `db:"category"`
	Icon        string   `db:"icon"`
	Features    []string `db:"features"`
}

// Portfolio is a completed project. Images is the serialized URL list as
// stored in the text column; it is parsed lazily and parse failures are
// treated as absent. UpdatedAt/UpdatedBy track the last mutation, including
// mutations applied by the sheet reconciler.
type Portfolio struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	Category       string     `db:"category"`
	ImageURL       string     `db:"image_url"`
	ClientName     string     `db:"client_name"`
	CompletionDate string     `db:"completion_date"`
	Location       string     `db:"location"`
	Images         *string    `db:"images"`
	Thumbnail      *string    `db:"thumbnail"`
	Alt            *string    `db:"alt"`
	UpdatedAt      *time.Time `db:"updated_at"`
	UpdatedBy      *string    `db:"updated_by"`
}

// PricingPackage is one pricing tier.
type PricingPackage struct {
	ID         int64    `db:"id"`
	Name       string   `db:"name"`
	Category   string   `db:"category"`
	PriceRange string   `db:"price_range"`
	Features   []string `db:"features"`
	IsPopular  bool     `db:"is_popular"`
}

// Testimonial is a client quote. Rating is 1-5 by UI convention; the server
// does not enforce the range.
type Testimonial struct {
	ID          int64  `db:"id"`
	ClientName  string `db:"client_name"`
	Company     string `db:"company"`
	Rating      int    `db:"rating"`
	Comment     string `db:"comment"`
	ProjectType string `db:"project_type"`
}

// Contact submission statuses.
const (
	ContactStatusPending   = "pending"
	ContactStatusContacted = "contacted"
	ContactStatusCompleted = "completed"
)

// ValidContactStatus reports whether status is an accepted value.
func ValidContactStatus(status string) bool {
	switch status {
	case ContactStatusPending, ContactStatusContacted, ContactStatusCompleted:
		return true
	default:
		return false
	}
}

// ContactSubmission is one contact form entry.
type ContactSubmission struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	ServiceType string    `db:"service_type"`
	Message     string    `db:"message"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

// SheetVersion is the per-section mirror watermark: the external document's
// last observed modification time and the local time of the last successful
// sync.
type SheetVersion struct {
	Section       string    `db:"section"`
	SheetModified time.Time `db:"sheet_modified"`
	DBSynced      time.Time `db:"db_synced"`
}
