// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/images"
)

type uploadRequest struct {
	FileName    string `json:"fileName"`
	FileData    string `json:"fileData"` // data URL or raw base64
	ContentType string `json:"contentType"`
	Alt         string `json:"alt,omitempty"`
}

type uploadResponse struct {
	Success   bool     `json:"success"`
	ImageURLs []string `json:"imageUrls"`
	Thumbnail string   `json:"thumbnail"`
	Alt       string   `json:"alt"`
}

func (a *API) handleUploadPortfolioImage(w http.ResponseWriter, r *http.Request) {
	if a.uploader == nil {
		a.writeError(w, http.StatusInternalServerError, "configuration_error", "Image hosting is not configured")
		return
	}

	var req uploadRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	data, err := base64.StdEncoding.DecodeString(extractBase64(req.FileData))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_request", "fileData must be base64-encoded")
		return
	}
	if err := images.ValidateImage(req.ContentType, len(data)); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_image", err.Error())
		return
	}

	result, err := a.uploader.UploadVariants(r.Context(), req.FileName, req.ContentType, data)
	if err != nil {
		if errors.Is(err, images.ErrInvalidImage) {
			a.writeError(w, http.StatusBadRequest, "invalid_image", err.Error())
			return
		}
		a.logger.Error("Image upload failed", "file_name", req.FileName, "error", err)
		a.writeError(w, http.StatusInternalServerError, "upload_failed", "Failed to upload image")
		return
	}

	alt := req.Alt
	if alt == "" {
		alt = req.FileName
	}
	a.writeJSON(w, http.StatusOK, uploadResponse{
		Success:   true,
		ImageURLs: result.AllURLs,
		Thumbnail: result.Thumbnail(),
		Alt:       alt,
	})
}

// extractBase64 strips an optional data URL prefix ("data:image/png;base64,").
func extractBase64(fileData string) string {
	if i := strings.Index(fileData, "base64,"); i >= 0 {
		return fileData[i+len("base64,"):]
	}
	return fileData
}
