// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package layout applies the RTL/LTR page layout derived from the current
// language declaration.
package layout

import (
	"log/slog"

	"github.com/olegiv/langdir/internal/lang"
	"github.com/olegiv/langdir/internal/model"
	"github.com/olegiv/langdir/internal/page"
)

// Marker classes set on the content container. Exactly one is present
// after any application.
const (
	ClassRTL = "rtl-layout"
	ClassLTR = "ltr-layout"
)

// DefaultLanguage is assumed when the page declares no language.
const DefaultLanguage = "en"

// Config holds applier configuration.
type Config struct {
	RTLStylesheet   string // stylesheet id enabled for RTL, disabled for LTR
	LTRStylesheet   string // stylesheet id enabled for LTR, disabled for RTL
	DefaultLanguage string // fallback when the lang attribute is absent
}

// Applier mutates document layout state. Both Apply operations are
// idempotent; repeated calls converge to the same observable state.
type Applier struct {
	doc        page.Document
	classifier *lang.Classifier
	logger     *slog.Logger
	cfg        Config
}

// NewApplier creates an applier over the document. A nil classifier falls
// back to the built-in RTL code set, a nil logger to slog.Default().
func NewApplier(doc page.Document, classifier *lang.Classifier, logger *slog.Logger, cfg Config) *Applier {
	if classifier == nil {
		classifier = lang.NewClassifier()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	return &Applier{
		doc:        doc,
		classifier: classifier,
		logger:     logger,
		cfg:        cfg,
	}
}

// ApplyRTL switches the page to right-to-left layout.
func (a *Applier) ApplyRTL() {
	a.doc.SetAttr(page.AttrDir, model.DirectionRTL)
	a.toggleStylesheets(a.cfg.RTLStylesheet, a.cfg.LTRStylesheet)
	a.doc.RemoveClass(ClassLTR)
	a.doc.AddClass(ClassRTL)
	a.logger.Info("applied RTL layout")
}

// ApplyLTR switches the page to left-to-right layout.
func (a *Applier) ApplyLTR() {
	a.doc.SetAttr(page.AttrDir, model.DirectionLTR)
	a.toggleStylesheets(a.cfg.LTRStylesheet, a.cfg.RTLStylesheet)
	a.doc.RemoveClass(ClassRTL)
	a.doc.AddClass(ClassLTR)
	a.logger.Info("applied LTR layout")
}

// DetectAndApply reads the current language declaration, classifies it and
// applies the matching layout. Absent or empty declarations fall back to
// the configured default language.
func (a *Applier) DetectAndApply() {
	tag, ok := a.doc.Attr(page.AttrLang)
	if !ok || tag == "" {
		tag = a.cfg.DefaultLanguage
	}
	if a.classifier.IsRTL(tag) {
		a.ApplyRTL()
		return
	}
	a.ApplyLTR()
}

// toggleStylesheets enables one stylesheet and disables the other. Empty
// or unregistered ids are no-ops in the document.
func (a *Applier) toggleStylesheets(enable, disable string) {
	if enable != "" {
		a.doc.EnableStylesheet(enable)
	}
	if disable != "" {
		a.doc.DisableStylesheet(disable)
	}
}
