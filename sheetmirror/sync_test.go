package sheetmirror

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncer_AppendStampsWatermark(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id", "name"})
	versions := &fakeVersionStore{}
	syncer := NewSyncer(doc, testMapping(), versions, nil)

	require.NoError(t, syncer.AppendToSection(ctx, SectionServices, Row{"id": "1", "name": "x"}))

	require.Len(t, versions.upserts, 1)
	require.Equal(t, SectionServices, versions.upserts[0].section)
	// The watermark reflects the post-write modification time.
	require.Equal(t, doc.modified, versions.upserts[0].version)
}

func TestSyncer_UpdateStampsWatermark(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id", "status"}, []string{"5", "pending"})
	versions := &fakeVersionStore{}
	syncer := NewSyncer(doc, testMapping(), versions, nil)

	require.NoError(t, syncer.UpdateRowInSection(ctx, SectionContact, "5", Row{"status": "contacted"}))
	require.Equal(t, "contacted", doc.rows[0][1])
	require.Len(t, versions.upserts, 1)
	require.Equal(t, SectionContact, versions.upserts[0].section)
}

func TestSyncer_DeleteOfMissingRowStillStampsWatermark(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"}, []string{"1"})
	versions := &fakeVersionStore{}
	syncer := NewSyncer(doc, testMapping(), versions, nil)

	require.NoError(t, syncer.DeleteRowFromSection(ctx, SectionServices, "404"))
	require.Len(t, doc.rows, 1, "existing row must survive")
	require.Len(t, versions.upserts, 1, "watermark still updates on idempotent delete")
}

func TestSyncer_UnconfiguredSection(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"})
	versions := &fakeVersionStore{}
	syncer := NewSyncer(doc, Mapping{}, versions, nil)

	err := syncer.AppendToSection(ctx, SectionServices, Row{"id": "1"})
	require.ErrorIs(t, err, ErrNotConfigured)
	require.Empty(t, versions.upserts)
}

func TestSyncer_MirrorFailureSkipsWatermark(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDocument([]string{"id"})
	doc.appendErr = errors.New("quota exceeded")
	versions := &fakeVersionStore{}
	syncer := NewSyncer(doc, testMapping(), versions, nil)

	err := syncer.AppendToSection(ctx, SectionServices, Row{"id": "1"})
	require.Error(t, err)
	require.Empty(t, versions.upserts)
}
