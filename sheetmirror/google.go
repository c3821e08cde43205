// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// dataRange skips the header row and covers every data row the sheet can
// hold.
const dataRange = "2:1000000"

// GoogleDocumentAPI implements DocumentAPI against Google Sheets, using the
// Drive API for document modification times. Constructed once per process
// from service-account credentials and passed by reference; it is safe for
// concurrent use.
type GoogleDocumentAPI struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// NewGoogleDocumentAPI builds an authenticated client from service-account
// JSON credentials with Sheets and Drive scopes.
func NewGoogleDocumentAPI(ctx context.Context, credentialsJSON []byte) (*GoogleDocumentAPI, error) {
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("%w: service account credentials are empty", ErrNotConfigured)
	}
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse service account credentials: %v", ErrNotConfigured, err)
	}
	httpClient := jwtCfg.Client(ctx)

	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	return &GoogleDocumentAPI{sheets: sheetsSvc, drive: driveSvc}, nil
}

// Drive exposes the authenticated Drive client so callers can reuse the
// same service account for file hosting.
func (g *GoogleDocumentAPI) Drive() *drive.Service {
	return g.drive
}

func (g *GoogleDocumentAPI) ReadSheet(ctx context.Context, spreadsheetID, sheetName string) ([]string, [][]string, error) {
	headerResp, err := g.sheets.Spreadsheets.Values.
		Get(spreadsheetID, sheetName+"!1:1").
		MajorDimension("ROWS").
		Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("read header row: %w", err)
	}
	var headers []string
	if len(headerResp.Values) > 0 {
		headers = stringCells(headerResp.Values[0])
	}

	dataResp, err := g.sheets.Spreadsheets.Values.
		Get(spreadsheetID, sheetName+"!"+dataRange).
		MajorDimension("ROWS").
		Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("read data rows: %w", err)
	}
	rows := make([][]string, len(dataResp.Values))
	for i, cells := range dataResp.Values {
		rows[i] = stringCells(cells)
	}
	return headers, rows, nil
}

func (g *GoogleDocumentAPI) AppendRow(ctx context.Context, spreadsheetID, sheetName string, cells []string) error {
	_, err := g.sheets.Spreadsheets.Values.
		Append(spreadsheetID, sheetName, &sheets.ValueRange{Values: [][]any{anyCells(cells)}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (g *GoogleDocumentAPI) UpdateRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int, cells []string) error {
	// Data row N lives at sheet row N+1; the header occupies row 1.
	sheetRow := rowIndex + 1
	rng := fmt.Sprintf("%s!%d:%d", sheetName, sheetRow, sheetRow)
	_, err := g.sheets.Spreadsheets.Values.
		Update(spreadsheetID, rng, &sheets.ValueRange{Values: [][]any{anyCells(cells)}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (g *GoogleDocumentAPI) DeleteRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int) error {
	sheetID, err := g.sheetIDByName(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}
	// DeleteDimension uses 0-based indexes: data row N is dimension index N.
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex),
					EndIndex:   int64(rowIndex + 1),
				},
			},
		}},
	}
	_, err = g.sheets.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}

func (g *GoogleDocumentAPI) ModifiedTime(ctx context.Context, spreadsheetID string) (time.Time, error) {
	file, err := g.drive.Files.Get(spreadsheetID).
		Fields("modifiedTime").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return time.Time{}, err
	}
	if file.ModifiedTime == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, file.ModifiedTime)
	if err != nil {
		return time.Now(), nil
	}
	return t, nil
}

func (g *GoogleDocumentAPI) sheetIDByName(ctx context.Context, spreadsheetID, sheetName string) (int64, error) {
	doc, err := g.sheets.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: sheet %q not found in spreadsheet %s", ErrNotConfigured, sheetName, spreadsheetID)
}

func stringCells(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c == nil {
			out[i] = ""
			continue
		}
		out[i] = fmt.Sprint(c)
	}
	return out
}

func anyCells(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
