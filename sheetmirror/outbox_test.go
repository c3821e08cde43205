package sheetmirror

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestOutbox(doc *fakeDocument, mapping Mapping, versions VersionStore) *SheetOutbox {
	logger := slog.New(slog.DiscardHandler)
	out := NewSheetOutbox(NewSyncer(doc, mapping, versions, logger), logger)
	out.backoff = time.Millisecond
	return out
}

func TestOutbox_PropagateSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id", "name"})
	doc.appendErr = errors.New("document store down")
	versions := &fakeVersionStore{}
	out := newTestOutbox(doc, testMapping(), versions)

	// Must not panic and must not surface the error in any way.
	out.Propagate(ctx, MirrorEvent{Section: SectionServices, Op: OpAppend, ID: "1", Row: Row{"id": "1"}})
	require.Empty(t, versions.upserts)
}

func TestOutbox_RetriesTransientFailures(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"})
	doc.appendErr = errors.New("rate limited")
	out := newTestOutbox(doc, testMapping(), &fakeVersionStore{})

	out.Propagate(ctx, MirrorEvent{Section: SectionServices, Op: OpAppend, ID: "1", Row: Row{"id": "1"}})
	require.Equal(t, 3, doc.appendCalls, "initial attempt plus two retries")
}

func TestOutbox_DoesNotRetryConfigErrors(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"})
	out := newTestOutbox(doc, Mapping{}, &fakeVersionStore{})

	out.Propagate(ctx, MirrorEvent{Section: SectionServices, Op: OpAppend, ID: "1", Row: Row{"id": "1"}})
	require.Zero(t, doc.appendCalls)
	require.Zero(t, doc.readCalls)
}

func TestOutbox_AppendEvent(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id", "name"})
	versions := &fakeVersionStore{}
	out := newTestOutbox(doc, testMapping(), versions)

	out.Propagate(ctx, MirrorEvent{Section: SectionServices, Op: OpAppend, ID: "9", Row: Row{"id": "9", "name": "n"}})
	require.Len(t, doc.rows, 1)
	require.Len(t, versions.upserts, 1)
}

func TestOutbox_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"}, []string{"4"})
	versions := &fakeVersionStore{}
	out := newTestOutbox(doc, testMapping(), versions)

	out.Propagate(ctx, MirrorEvent{Section: SectionTestimonials, Op: OpDelete, ID: "4"})
	require.Empty(t, doc.rows)
	require.Len(t, versions.upserts, 1)
}
