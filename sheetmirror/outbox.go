// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"log/slog"
	"time"
)

// MirrorOp is the kind of mirror mutation carried by a MirrorEvent.
type MirrorOp string

const (
	OpAppend MirrorOp = "append"
	OpUpdate MirrorOp = "update"
	OpDelete MirrorOp = "delete"
)

// MirrorEvent describes one mirror mutation derived from an authoritative
// DB write. ID is the string rendering of the DB-generated id. Row carries
// the full row for appends and the patch for updates; it is ignored for
// deletes.
type MirrorEvent struct {
	Section Section
	Op      MirrorOp
	ID      string
	Row     Row
}

// Outbox is the fire-and-forget side channel for mirror writes. Propagate
// must never surface a failure to the caller: the enclosing request reports
// success regardless of mirror outcome. This is a deliberate
// availability-over-consistency choice; the site keeps functioning when the
// spreadsheet integration is unconfigured or the document store is down.
type Outbox interface {
	Propagate(ctx context.Context, event MirrorEvent)
}

// NoopOutbox drops every event. Used when the document integration is not
// configured; writes then stay DB-only.
type NoopOutbox struct{}

func (NoopOutbox) Propagate(context.Context, MirrorEvent) {}

// SheetOutbox propagates mirror events through a Syncer, retrying transient
// failures a bounded number of times before logging and dropping the event.
// Configuration-tier errors are never retried.
type SheetOutbox struct {
	syncer     *Syncer
	logger     *slog.Logger
	maxRetries int
	backoff    time.Duration
}

// NewSheetOutbox creates an outbox with the default retry policy of two
// retries with doubling backoff starting at 100ms.
func NewSheetOutbox(syncer *Syncer, logger *slog.Logger) *SheetOutbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetOutbox{
		syncer:     syncer,
		logger:     logger,
		maxRetries: 2,
		backoff:    100 * time.Millisecond,
	}
}

// Propagate applies the event to the mirror. Failures are logged, never
// returned; a dropped event leaves the mirror stale until the row is mutated
// again or fixed by hand.
func (o *SheetOutbox) Propagate(ctx context.Context, event MirrorEvent) {
	var err error
	delay := o.backoff
	for attempt := 0; ; attempt++ {
		err = o.apply(ctx, event)
		if err == nil {
			return
		}
		if IsConfigError(err) || attempt >= o.maxRetries {
			break
		}
		if sleepErr := sleepWithContext(ctx, delay); sleepErr != nil {
			break
		}
		delay *= 2
	}

	if IsConfigError(err) {
		o.logger.Warn("mirror sync skipped",
			"section", event.Section, "op", event.Op, "id", event.ID, "error", err)
		return
	}
	o.logger.Error("mirror sync failed",
		"section", event.Section, "op", event.Op, "id", event.ID, "error", err)
}

func (o *SheetOutbox) apply(ctx context.Context, event MirrorEvent) error {
	switch event.Op {
	case OpAppend:
		return o.syncer.AppendToSection(ctx, event.Section, event.Row)
	case OpUpdate:
		return o.syncer.UpdateRowInSection(ctx, event.Section, event.ID, event.Row)
	case OpDelete:
		return o.syncer.DeleteRowFromSection(ctx, event.Section, event.ID)
	default:
		o.logger.Error("unknown mirror op", "op", event.Op, "section", event.Section)
		return nil
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
