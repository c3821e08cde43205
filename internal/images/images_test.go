package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeHost is an in-memory BlobHost keyed by blob name.
type fakeHost struct {
	blobs     map[string]string // name -> fileID
	data      map[string][]byte // fileID -> content
	uploads   int
	deleted   []string
	uploadErr error
}

func newFakeHost() *fakeHost {
	return &fakeHost{blobs: map[string]string{}, data: map[string][]byte{}}
}

func (h *fakeHost) FindByName(ctx context.Context, name string) (string, error) {
	return h.blobs[name], nil
}

func (h *fakeHost) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if h.uploadErr != nil {
		return "", h.uploadErr
	}
	h.uploads++
	id := fmt.Sprintf("file-%d", h.uploads)
	h.blobs[name] = id
	h.data[id] = data
	return id, nil
}

func (h *fakeHost) Delete(ctx context.Context, fileID string) error {
	h.deleted = append(h.deleted, fileID)
	return nil
}

func (h *fakeHost) PublicURL(fileID string) string {
	return "https://drive.google.com/uc?id=" + fileID
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int
		wantErr     bool
	}{
		{"jpeg ok", "image/jpeg", 1024, false},
		{"png ok", "image/png", 1024, false},
		{"webp ok", "image/webp", 1024, false},
		{"gif ok", "image/gif", 1024, false},
		{"svg rejected", "image/svg+xml", 1024, true},
		{"pdf rejected", "application/pdf", 1024, true},
		{"zero size", "image/png", 0, true},
		{"too large", "image/png", MaxImageSizeBytes + 1, true},
		{"exactly max", "image/png", MaxImageSizeBytes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.contentType, tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidImage)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUploadVariants(t *testing.T) {
	ctx := context.Background()
	host := newFakeHost()
	up := NewUploader(host, nil)
	up.now = func() time.Time { return time.Unix(1700000000, 0) }

	data := testPNG(t, 1000, 600)
	res, err := up.UploadVariants(ctx, "site photo.png", "image/png", data)
	require.NoError(t, err)

	require.Len(t, res.Resized, 3)
	require.Len(t, res.AllURLs, 4)
	require.Equal(t, res.Original.URL, res.AllURLs[0])

	// Original name embeds hash, timestamp and the sanitized file name.
	require.Contains(t, res.Original.Name, "_1700000000000_site_photo.png")

	// Widths above the source width reuse the original bytes.
	for _, v := range res.Resized {
		hosted := host.data[v.FileID]
		if v.Width >= 1000 {
			require.Equal(t, data, hosted, "width %d should not be enlarged", v.Width)
		} else {
			img, err := png.Decode(bytes.NewReader(hosted))
			require.NoError(t, err)
			require.Equal(t, v.Width, img.Bounds().Dx())
		}
	}
}

func TestUploadVariants_DedupeByContentHash(t *testing.T) {
	ctx := context.Background()
	host := newFakeHost()
	up := NewUploader(host, nil)
	up.now = func() time.Time { return time.Unix(1700000000, 0) }

	data := testPNG(t, 400, 300)
	first, err := up.UploadVariants(ctx, "a.png", "image/png", data)
	require.NoError(t, err)
	uploadsAfterFirst := host.uploads

	up.now = func() time.Time { return time.Unix(1700000500, 0) }
	second, err := up.UploadVariants(ctx, "b.png", "image/png", data)
	require.NoError(t, err)

	// Resized variant names depend only on the content hash, so the second
	// upload reuses them; only the timestamped original is new.
	require.Equal(t, uploadsAfterFirst+1, host.uploads)
	require.Equal(t, first.Resized[0].FileID, second.Resized[0].FileID)
}

func TestUploadVariants_RejectsInvalid(t *testing.T) {
	up := NewUploader(newFakeHost(), nil)
	_, err := up.UploadVariants(context.Background(), "x.svg", "image/svg+xml", []byte("<svg/>"))
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestUploadVariants_HostFailure(t *testing.T) {
	host := newFakeHost()
	host.uploadErr = errors.New("drive down")
	up := NewUploader(host, nil)
	_, err := up.UploadVariants(context.Background(), "x.png", "image/png", testPNG(t, 10, 10))
	require.Error(t, err)
}

func TestThumbnailSelection(t *testing.T) {
	res := &UploadResult{
		Original: Variant{URL: "orig"},
		Resized: []Variant{
			{Width: 1280, URL: "w1280"},
			{Width: 640, URL: "w640"},
			{Width: 320, URL: "w320"},
		},
	}
	require.Equal(t, "w320", res.Thumbnail())

	res.Resized = res.Resized[:2]
	require.Equal(t, "w640", res.Thumbnail())

	res.Resized = nil
	require.Equal(t, "orig", res.Thumbnail())
}

func TestDeleteByURLs(t *testing.T) {
	host := newFakeHost()
	up := NewUploader(host, nil)

	up.DeleteByURLs(context.Background(), []string{
		"https://drive.google.com/uc?id=abc123",
		"https://example.com/no-id-here",
		"://not a url",
		"https://drive.google.com/uc?id=def456",
	})
	require.Equal(t, []string{"abc123", "def456"}, host.deleted)
}

func TestExtractFileID(t *testing.T) {
	if got := ExtractFileID("https://drive.google.com/uc?id=xyz"); got != "xyz" {
		t.Errorf("ExtractFileID = %q", got)
	}
	if got := ExtractFileID("https://drive.google.com/file/d/xyz/view"); got != "" {
		t.Errorf("ExtractFileID = %q, want empty", got)
	}
}

func TestSanitizeName(t *testing.T) {
	if got := sanitizeName("proyek gudang (final).jpg"); strings.ContainsAny(got, " ()") {
		t.Errorf("sanitizeName left unsafe chars: %q", got)
	}
}
