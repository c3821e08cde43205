// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

// Package images handles portfolio image hosting: content validation,
// content-hash dedupe naming, resize variants and best-effort cleanup.
// It is invoked only from upload handlers, outside the mirror core.
package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/url"
	"regexp"
	"time"

	"github.com/disintegration/imaging"

	// Registers the webp decoder; uploads may declare image/webp.
	_ "golang.org/x/image/webp"
)

// MaxImageSizeBytes caps uploads at 10 MB.
const MaxImageSizeBytes = 10 << 20

// ResizeWidths are the target variant widths, narrowest first.
var ResizeWidths = []int{320, 640, 1280}

// allowedTypes maps accepted MIME types to file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ErrInvalidImage marks validation failures (unsupported type, bad size).
var ErrInvalidImage = errors.New("invalid image")

// ValidateImage checks the declared MIME type and byte size of an upload.
func ValidateImage(contentType string, sizeBytes int) error {
	if _, ok := allowedTypes[contentType]; !ok {
		return fmt.Errorf("%w: unsupported image type %q", ErrInvalidImage, contentType)
	}
	if sizeBytes <= 0 || sizeBytes > MaxImageSizeBytes {
		return fmt.Errorf("%w: image too large, max %d MB", ErrInvalidImage, MaxImageSizeBytes/1024/1024)
	}
	return nil
}

// BlobHost is the boundary to the public image host. Upload must make the
// blob publicly readable and return its host file id.
type BlobHost interface {
	FindByName(ctx context.Context, name string) (fileID string, err error)
	Upload(ctx context.Context, name, contentType string, data []byte) (fileID string, err error)
	Delete(ctx context.Context, fileID string) error
	PublicURL(fileID string) string
}

// Variant is one hosted rendition of an uploaded image.
type Variant struct {
	Name   string `json:"name"`
	FileID string `json:"fileId"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
}

// UploadResult collects the original upload plus its resized variants.
type UploadResult struct {
	Original Variant
	Resized  []Variant
	AllURLs  []string
}

// Uploader uploads image variants to a BlobHost. Variant names embed the
// sha256 of the original bytes, so re-uploading identical content reuses the
// already-hosted resized blobs instead of duplicating them.
type Uploader struct {
	host   BlobHost
	logger *slog.Logger
	now    func() time.Time
}

// NewUploader creates an uploader over the given host.
func NewUploader(host BlobHost, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{host: host, logger: logger, now: time.Now}
}

var unsafeNameChars = regexp.MustCompile(`[^\w.\-]+`)

func sanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// UploadVariants hosts the original image and one resized rendition per
// configured width, skipping widths at or above the original's.
func (u *Uploader) UploadVariants(ctx context.Context, fileName, contentType string, data []byte) (*UploadResult, error) {
	if err := ValidateImage(contentType, len(data)); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	baseName := sanitizeName(fileName)
	ext := allowedTypes[contentType]

	origName := fmt.Sprintf("%s_%d_%s", hash, u.now().UnixMilli(), baseName)
	original, err := u.uploadOne(ctx, origName, contentType, data)
	if err != nil {
		return nil, err
	}

	src, decodeErr := imaging.Decode(bytes.NewReader(data))
	resized := make([]Variant, 0, len(ResizeWidths))
	for _, width := range ResizeWidths {
		variantData := data
		if decodeErr == nil && src.Bounds().Dx() > width {
			variantData, err = encodeResized(src, width, contentType)
			if err != nil {
				return nil, fmt.Errorf("resize to %d: %w", width, err)
			}
		}
		name := fmt.Sprintf("%s_%d.%s", hash, width, ext)
		v, err := u.uploadOne(ctx, name, contentType, variantData)
		if err != nil {
			return nil, err
		}
		v.Width = width
		resized = append(resized, v)
	}

	allURLs := make([]string, 0, 1+len(resized))
	allURLs = append(allURLs, original.URL)
	for _, v := range resized {
		allURLs = append(allURLs, v.URL)
	}
	return &UploadResult{Original: original, Resized: resized, AllURLs: allURLs}, nil
}

// uploadOne finds an already-hosted blob by name or uploads a new one.
func (u *Uploader) uploadOne(ctx context.Context, name, contentType string, data []byte) (Variant, error) {
	fileID, err := u.host.FindByName(ctx, name)
	if err != nil {
		return Variant{}, fmt.Errorf("lookup blob %s: %w", name, err)
	}
	if fileID == "" {
		fileID, err = u.host.Upload(ctx, name, contentType, data)
		if err != nil {
			return Variant{}, fmt.Errorf("upload blob %s: %w", name, err)
		}
	}
	return Variant{Name: name, FileID: fileID, URL: u.host.PublicURL(fileID)}, nil
}

// DeleteByURLs best-effort deletes hosted blobs referenced by the URLs.
// Unrecognized URLs and per-file delete failures are skipped.
func (u *Uploader) DeleteByURLs(ctx context.Context, urls []string) {
	for _, raw := range urls {
		fileID := ExtractFileID(raw)
		if fileID == "" {
			continue
		}
		if err := u.host.Delete(ctx, fileID); err != nil {
			u.logger.Warn("blob delete failed", "file_id", fileID, "error", err)
		}
	}
}

// ExtractFileID pulls the host file id out of a public URL of the
// uc?id=FILE_ID form. Returns "" for anything else.
func ExtractFileID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get("id")
}

// Thumbnail picks the preferred thumbnail URL from an upload result: the
// 320 variant, else 640, else the original.
func (r *UploadResult) Thumbnail() string {
	for _, want := range []int{320, 640} {
		for _, v := range r.Resized {
			if v.Width == want {
				return v.URL
			}
		}
	}
	return r.Original.URL
}

func encodeResized(src image.Image, width int, contentType string) ([]byte, error) {
	resized := imaging.Resize(src, width, 0, imaging.Lanczos)
	format, err := formatFor(contentType)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFor(contentType string) (imaging.Format, error) {
	switch contentType {
	case "image/jpeg", "image/webp":
		// webp re-encodes as JPEG; the imaging library has no webp encoder
		// and the hosted variant keeps the declared content type.
		return imaging.JPEG, nil
	case "image/png":
		return imaging.PNG, nil
	case "image/gif":
		return imaging.GIF, nil
	default:
		return imaging.JPEG, fmt.Errorf("%w: no encoder for %q", ErrInvalidImage, contentType)
	}
}
