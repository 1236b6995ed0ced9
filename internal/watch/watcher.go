// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package watch keeps the page layout synchronized with the language
// declaration by observing attribute change notifications.
package watch

import (
	"log/slog"

	"github.com/olegiv/langdir/internal/layout"
	"github.com/olegiv/langdir/internal/page"
)

// Watcher subscribes to lang attribute changes on the root element and
// re-runs detection on every change. The subscription lives for the
// document's lifetime; Stop exists for tests.
type Watcher struct {
	doc     page.Document
	applier *layout.Applier
	logger  *slog.Logger
	subID   string
	started bool
}

// New creates a watcher. A nil logger falls back to slog.Default().
func New(doc page.Document, applier *layout.Applier, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		doc:     doc,
		applier: applier,
		logger:  logger,
	}
}

// Start initializes the watcher. If the page structure is ready it
// initializes immediately, otherwise once the ready signal fires. Either
// way initialization runs exactly once: it applies the layout for the
// current language, then subscribes to further changes. Start is a no-op
// when called again.
func (w *Watcher) Start() {
	if w.started {
		return
	}
	w.started = true

	if w.doc.Ready() {
		w.init()
		return
	}
	w.doc.OnReady(w.init)
}

// Stop removes the change subscription. Safe to call before Start or twice.
func (w *Watcher) Stop() {
	if w.subID == "" {
		return
	}
	w.doc.Unsubscribe(w.subID)
	w.subID = ""
}

func (w *Watcher) init() {
	w.applier.DetectAndApply()
	w.subID = w.doc.Subscribe(page.AttrLang, w.onChanges)
	w.logger.Debug("language watcher active", "attr", page.AttrLang)
}

// onChanges re-runs detection for every record about the lang attribute.
// No batch de-duplication: applications are idempotent, so reprocessing
// is observably identical.
func (w *Watcher) onChanges(records []page.ChangeRecord) {
	for _, rec := range records {
		if rec.Attr != page.AttrLang {
			continue
		}
		w.logger.Debug("language declaration changed", "from", rec.OldValue, "to", rec.NewValue)
		w.applier.DetectAndApply()
	}
}
