package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
)

// fakeStore is an in-memory Store used by the handler tests.
type fakeStore struct {
	mu        sync.Mutex
	nextID    int64
	mutations int

	services     map[int64]store.Service
	portfolios   map[int64]store.Portfolio
	imagesJSON   map[int64]string
	pricing      map[int64]store.PricingPackage
	testimonials map[int64]store.Testimonial
	contacts     map[int64]store.ContactSubmission
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:       0,
		services:     map[int64]store.Service{},
		portfolios:   map[int64]store.Portfolio{},
		imagesJSON:   map[int64]string{},
		pricing:      map[int64]store.PricingPackage{},
		testimonials: map[int64]store.Testimonial{},
		contacts:     map[int64]store.ContactSubmission{},
	}
}

func (f *fakeStore) allocate() int64 {
	f.nextID++
	f.mutations++
	return f.nextID
}

func (f *fakeStore) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

func (f *fakeStore) CreateService(_ context.Context, svc store.Service) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc.ID = f.allocate()
	f.services[svc.ID] = svc
	return svc.ID, nil
}

func (f *fakeStore) ListServices(_ context.Context) ([]store.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) UpdateService(_ context.Context, svc store.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeStore) DeleteService(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	delete(f.services, id)
	return nil
}

func (f *fakeStore) CreatePortfolio(_ context.Context, p store.Portfolio, imagesJSON, updatedBy string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.allocate()
	now := time.Now()
	p.Images = &imagesJSON
	p.UpdatedAt = &now
	p.UpdatedBy = &updatedBy
	f.portfolios[p.ID] = p
	f.imagesJSON[p.ID] = imagesJSON
	return p.ID, nil
}

func (f *fakeStore) ListPortfolios(_ context.Context, category string, limit int) ([]store.Portfolio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Portfolio, 0, len(f.portfolios))
	for _, p := range f.portfolios {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) UpdatePortfolio(_ context.Context, p store.Portfolio, imagesJSON, updatedBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	now := time.Now()
	p.Images = &imagesJSON
	p.UpdatedAt = &now
	p.UpdatedBy = &updatedBy
	f.portfolios[p.ID] = p
	f.imagesJSON[p.ID] = imagesJSON
	return nil
}

func (f *fakeStore) PortfolioImagesJSON(_ context.Context, id int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imagesJSON[id], nil
}

func (f *fakeStore) DeletePortfolio(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	delete(f.portfolios, id)
	delete(f.imagesJSON, id)
	return nil
}

func (f *fakeStore) CreatePricingPackage(_ context.Context, p store.PricingPackage) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.allocate()
	f.pricing[p.ID] = p
	return p.ID, nil
}

func (f *fakeStore) ListPricingPackages(_ context.Context) ([]store.PricingPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.PricingPackage, 0, len(f.pricing))
	for _, p := range f.pricing {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) UpdatePricingPackage(_ context.Context, p store.PricingPackage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	f.pricing[p.ID] = p
	return nil
}

func (f *fakeStore) DeletePricingPackage(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	delete(f.pricing, id)
	return nil
}

func (f *fakeStore) CreateTestimonial(_ context.Context, t store.Testimonial) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = f.allocate()
	f.testimonials[t.ID] = t
	return t.ID, nil
}

func (f *fakeStore) ListTestimonials(_ context.Context) ([]store.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Testimonial, 0, len(f.testimonials))
	for _, t := range f.testimonials {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) UpdateTestimonial(_ context.Context, t store.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	f.testimonials[t.ID] = t
	return nil
}

func (f *fakeStore) DeleteTestimonial(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	delete(f.testimonials, id)
	return nil
}

func (f *fakeStore) CreateContactSubmission(_ context.Context, c store.ContactSubmission) (store.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.allocate()
	c.Status = store.ContactStatusPending
	c.CreatedAt = time.Now()
	f.contacts[c.ID] = c
	return c, nil
}

func (f *fakeStore) ListContactSubmissions(_ context.Context) ([]store.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.ContactSubmission, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) UpdateContactStatus(_ context.Context, id int64, status string) (store.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contacts[id]
	if !ok {
		return store.ContactSubmission{}, store.ErrNotFound
	}
	f.mutations++
	c.Status = status
	f.contacts[id] = c
	return c, nil
}
