// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler serves the demo frontend: a single page whose direction
// layout follows the declared language.
package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/olegiv/langdir"
	"github.com/olegiv/langdir/internal/config"
	"github.com/olegiv/langdir/internal/lang"
	"github.com/olegiv/langdir/internal/model"
	"github.com/olegiv/langdir/internal/page"
)

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "langdir_lang"

// FrontendHandler renders the demo page and exposes the language switch
// and forced re-evaluation endpoints.
type FrontendHandler struct {
	doc       *page.MemDoc
	ctrl      *langdir.Controller
	cfg       *config.Config
	logger    *slog.Logger
	tmpl      *template.Template
	matcher   language.Matcher
	supported []language.Tag
}

// stylesheetData describes one link tag on the rendered page.
type stylesheetData struct {
	ID       string
	Href     string
	Disabled bool
}

// pageData is the template payload for page.html.
type pageData struct {
	Title       string
	Lang        string
	Dir         string
	BodyClass   string
	Content     template.HTML
	Languages   []model.Language
	Stylesheets []stylesheetData
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(doc *page.MemDoc, ctrl *langdir.Controller, cfg *config.Config, logger *slog.Logger) (*FrontendHandler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	// Build the Accept-Language matcher over the known language codes.
	tags := make([]language.Tag, 0, len(model.KnownLanguages))
	for _, l := range model.KnownLanguages {
		tag, err := language.Parse(l.Code)
		if err != nil {
			return nil, fmt.Errorf("parsing language code %q: %w", l.Code, err)
		}
		tags = append(tags, tag)
	}

	return &FrontendHandler{
		doc:       doc,
		ctrl:      ctrl,
		cfg:       cfg,
		logger:    logger,
		tmpl:      tmpl,
		matcher:   language.NewMatcher(tags),
		supported: tags,
	}, nil
}

// Home renders the demo page. On the first visit, when the document has no
// language declaration yet, the language is resolved from the preference
// cookie, then the Accept-Language header, then the configured default.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	if cur, ok := h.doc.Attr(page.AttrLang); !ok || cur == "" {
		h.ctrl.ChangeLanguage(h.resolveInitialLanguage(r))
	}

	curLang, _ := h.doc.Attr(page.AttrLang)
	dir, _ := h.doc.Attr(page.AttrDir)

	data := pageData{
		Title:       "langdir demo",
		Lang:        curLang,
		Dir:         dir,
		BodyClass:   h.bodyClass(),
		Content:     h.renderContent(curLang),
		Languages:   model.KnownLanguages,
		Stylesheets: h.stylesheets(),
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		h.logger.Error("rendering page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// SwitchLanguage handles GET /language?lang=xx. It validates the code
// against the known language table, writes the preference cookie and
// changes the document language. Layout work happens only through the
// watcher subscription.
func (h *FrontendHandler) SwitchLanguage(w http.ResponseWriter, r *http.Request) {
	code := lang.Normalize(r.URL.Query().Get("lang"))
	if _, ok := model.LanguageByCode(code); !ok {
		http.NotFound(w, r)
		return
	}

	SetLanguageCookie(w, code)
	h.ctrl.ChangeLanguage(code)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Refresh handles POST /refresh by forcing a layout re-evaluation.
func (h *FrontendHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.ctrl.DetectAndApplyLayout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Health handles GET /healthz.
func (h *FrontendHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// resolveInitialLanguage picks the first-visit language: cookie, then
// Accept-Language, then the configured default.
func (h *FrontendHandler) resolveInitialLanguage(r *http.Request) string {
	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		code := lang.Normalize(cookie.Value)
		if _, ok := model.LanguageByCode(code); ok {
			return code
		}
	}

	if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
		if code := h.matchAcceptLanguage(acceptLang); code != "" {
			return code
		}
	}

	return h.cfg.DefaultLanguage
}

// matchAcceptLanguage finds the best known language for an Accept-Language
// header. Returns "" when nothing matches well enough.
func (h *FrontendHandler) matchAcceptLanguage(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return ""
	}

	_, idx, conf := h.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(h.supported) {
		return ""
	}
	return model.KnownLanguages[idx].Code
}

// bodyClass returns the marker class currently set on the container.
func (h *FrontendHandler) bodyClass() string {
	if h.doc.HasClass(langdir.ClassRTL) {
		return langdir.ClassRTL
	}
	if h.doc.HasClass(langdir.ClassLTR) {
		return langdir.ClassLTR
	}
	return ""
}

// stylesheets maps the configured stylesheet ids to link tag data with the
// document's current disabled flags. The base stylesheet renders first.
func (h *FrontendHandler) stylesheets() []stylesheetData {
	var out []stylesheetData
	for _, s := range []stylesheetData{
		{ID: h.cfg.LTRStylesheet, Href: "/static/main.css"},
		{ID: h.cfg.RTLStylesheet, Href: "/static/rtl.css"},
	} {
		disabled, ok := h.doc.StylesheetDisabled(s.ID)
		if !ok {
			continue
		}
		s.Disabled = disabled
		out = append(out, s)
	}
	return out
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
