// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package images

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

// DriveBlobHost hosts image blobs in a shared Google Drive folder, made
// publicly readable via an anyone-with-the-link permission.
type DriveBlobHost struct {
	drive    *drive.Service
	folderID string
}

// NewDriveBlobHost wraps an authenticated Drive service. folderID is the
// Drive folder all blobs live in.
func NewDriveBlobHost(svc *drive.Service, folderID string) (*DriveBlobHost, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder id is not configured")
	}
	return &DriveBlobHost{drive: svc, folderID: folderID}, nil
}

// FindByName returns the id of a non-trashed file with the exact name in
// the host folder, or "" when absent.
func (h *DriveBlobHost) FindByName(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false",
		h.folderID, strings.ReplaceAll(name, "'", "\\'"))
	res, err := h.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		Spaces("drive").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list drive files: %w", err)
	}
	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

// Upload creates the file in the host folder and grants public read access.
func (h *DriveBlobHost) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	file, err := h.drive.Files.Create(&drive.File{Name: name, Parents: []string{h.folderID}}).
		Media(bytes.NewReader(data)).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create drive file: %w", err)
	}
	_, err = h.drive.Permissions.Create(file.Id, &drive.Permission{Role: "reader", Type: "anyone"}).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("set public permission: %w", err)
	}
	return file.Id, nil
}

// Delete removes the file by id.
func (h *DriveBlobHost) Delete(ctx context.Context, fileID string) error {
	return h.drive.Files.Delete(fileID).Context(ctx).Do()
}

// PublicURL returns the direct-content URL for a hosted file.
func (h *DriveBlobHost) PublicURL(fileID string) string {
	return "https://drive.google.com/uc?id=" + fileID
}
