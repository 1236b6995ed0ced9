// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package langdir keeps a page's text-direction layout synchronized with
// its declared language. A Controller watches the document's lang
// attribute; whenever it changes, the language is classified as RTL or
// LTR and the direction attribute, stylesheet toggles and marker class
// are updated to match.
package langdir

import (
	"log/slog"

	"github.com/olegiv/langdir/internal/lang"
	"github.com/olegiv/langdir/internal/layout"
	"github.com/olegiv/langdir/internal/page"
	"github.com/olegiv/langdir/internal/watch"
)

// Marker classes applied to the content container.
const (
	ClassRTL = layout.ClassRTL
	ClassLTR = layout.ClassLTR
)

// IsRTL reports whether the language tag is right-to-left. Matching is
// case-insensitive and ignores the region subtag; empty and unrecognized
// tags are LTR.
func IsRTL(tag string) bool {
	return lang.IsRTL(tag)
}

// options collects Controller configuration.
type options struct {
	logger        *slog.Logger
	defaultLang   string
	rtlStylesheet string
	ltrStylesheet string
	extraRTLCodes []string
}

// Option configures a Controller.
type Option func(*options)

// WithLogger sets the logger used for layout status lines.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDefaultLanguage sets the language assumed when the page declares
// none. Defaults to "en".
func WithDefaultLanguage(tag string) Option {
	return func(o *options) { o.defaultLang = tag }
}

// WithStylesheets names the stylesheet pair toggled on direction changes:
// the RTL sheet is enabled for right-to-left layout, the LTR sheet for
// left-to-right. Ids the document does not know are silently skipped.
func WithStylesheets(rtlID, ltrID string) Option {
	return func(o *options) {
		o.rtlStylesheet = rtlID
		o.ltrStylesheet = ltrID
	}
}

// WithExtraRTLCodes extends the built-in RTL code set with additional
// primary subtags.
func WithExtraRTLCodes(codes ...string) Option {
	return func(o *options) { o.extraRTLCodes = append(o.extraRTLCodes, codes...) }
}

// Controller binds the classifier, applier and watcher to one document.
type Controller struct {
	doc     page.Document
	applier *layout.Applier
	watcher *watch.Watcher
}

// New creates a Controller over the document. Call Start to apply the
// layout for the current language and begin watching for changes.
func New(doc page.Document, opts ...Option) *Controller {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	classifier := lang.NewClassifier(o.extraRTLCodes...)
	applier := layout.NewApplier(doc, classifier, o.logger, layout.Config{
		RTLStylesheet:   o.rtlStylesheet,
		LTRStylesheet:   o.ltrStylesheet,
		DefaultLanguage: o.defaultLang,
	})

	return &Controller{
		doc:     doc,
		applier: applier,
		watcher: watch.New(doc, applier, o.logger),
	}
}

// Start applies the layout for the current language and subscribes to
// language changes. If the page structure is not ready yet, both steps
// are deferred until its ready signal fires.
func (c *Controller) Start() {
	c.watcher.Start()
}

// Stop removes the change subscription. Not required for normal use; the
// subscription is meant to live as long as the page.
func (c *Controller) Stop() {
	c.watcher.Stop()
}

// ChangeLanguage writes the tag into the page's language declaration. It
// deliberately performs no layout work itself; the watcher subscription
// is the only trigger path.
func (c *Controller) ChangeLanguage(tag string) {
	c.doc.SetAttr(page.AttrLang, tag)
}

// DetectAndApplyLayout forces a re-evaluation of the current language
// declaration and applies the matching layout.
func (c *Controller) DetectAndApplyLayout() {
	c.applier.DetectAndApply()
}

// ApplyRTL forces right-to-left layout regardless of the declared
// language. Idempotent.
func (c *Controller) ApplyRTL() {
	c.applier.ApplyRTL()
}

// ApplyLTR forces left-to-right layout regardless of the declared
// language. Idempotent.
func (c *Controller) ApplyLTR() {
	c.applier.ApplyLTR()
}
