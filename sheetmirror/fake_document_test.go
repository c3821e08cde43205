package sheetmirror

import (
	"context"
	"time"
)

// fakeDocument is an in-memory DocumentAPI with per-operation error
// injection. Every successful write advances the modification time by one
// second, mimicking the external document's modifiedTime behavior.
type fakeDocument struct {
	headers  []string
	rows     [][]string
	modified time.Time

	readErr    error
	appendErr  error
	updateErr  error
	deleteErr  error
	versionErr error

	appendCalls int
	updateCalls int
	deleteCalls int
	readCalls   int
}

func newFakeDocument(headers []string, rows ...[]string) *fakeDocument {
	return &fakeDocument{
		headers:  headers,
		rows:     rows,
		modified: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeDocument) ReadSheet(ctx context.Context, spreadsheetID, sheetName string) ([]string, [][]string, error) {
	f.readCalls++
	if f.readErr != nil {
		return nil, nil, f.readErr
	}
	rows := make([][]string, len(f.rows))
	for i, r := range f.rows {
		rows[i] = append([]string(nil), r...)
	}
	return append([]string(nil), f.headers...), rows, nil
}

func (f *fakeDocument) AppendRow(ctx context.Context, spreadsheetID, sheetName string, cells []string) error {
	f.appendCalls++
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows = append(f.rows, append([]string(nil), cells...))
	f.touch()
	return nil
}

func (f *fakeDocument) UpdateRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int, cells []string) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rows[rowIndex-1] = append([]string(nil), cells...)
	f.touch()
	return nil
}

func (f *fakeDocument) DeleteRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.rows = append(f.rows[:rowIndex-1], f.rows[rowIndex:]...)
	f.touch()
	return nil
}

func (f *fakeDocument) ModifiedTime(ctx context.Context, spreadsheetID string) (time.Time, error) {
	if f.versionErr != nil {
		return time.Time{}, f.versionErr
	}
	return f.modified, nil
}

func (f *fakeDocument) touch() {
	f.modified = f.modified.Add(time.Second)
}

// fakeVersionStore records watermark upserts in order.
type fakeVersionStore struct {
	upserts []versionUpsert
	err     error
}

type versionUpsert struct {
	section Section
	version time.Time
}

func (f *fakeVersionStore) UpsertSectionVersion(ctx context.Context, section Section, sheetModified time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, versionUpsert{section: section, version: sheetModified})
	return nil
}

func testMapping() Mapping {
	m := Mapping{}
	for _, s := range Sections {
		m[s] = SectionConfig{SpreadsheetID: "sheet-doc", SheetName: string(s), IDColumn: "id"}
	}
	return m
}
