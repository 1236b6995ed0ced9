// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/olegiv/langdir/internal/lang"
	"github.com/olegiv/langdir/web"
)

// sampleContent holds the localized demo page body, keyed by primary
// subtag. Languages without a sample fall back to English.
var sampleContent = map[string]string{
	"en": `## Welcome

This page's layout follows its declared language. Pick a right-to-left
language from the switcher and the direction attribute, stylesheet set and
marker class all flip together.`,
	"ru": `## Добро пожаловать

Раскладка этой страницы следует за объявленным языком. Выберите язык с
письмом справа налево, и направление текста переключится автоматически.`,
	"de": `## Willkommen

Das Layout dieser Seite folgt der deklarierten Sprache. Wählen Sie eine
rechts-nach-links geschriebene Sprache und die Ausrichtung wechselt mit.`,
	"ar": `## أهلاً وسهلاً

يتبع تخطيط هذه الصفحة اللغة المعلنة. اختر لغة تُكتب من اليمين إلى اليسار
وسينعكس اتجاه الصفحة تلقائياً.`,
	"he": `## ברוכים הבאים

פריסת העמוד הזה עוקבת אחר השפה המוצהרת. בחרו שפה הנכתבת מימין לשמאל
וכיוון העמוד יתהפך אוטומטית.`,
	"fa": `## خوش آمدید

چیدمان این صفحه از زبان اعلام‌شده پیروی می‌کند. زبانی راست‌به‌چپ انتخاب
کنید تا جهت صفحه به‌صورت خودکار برگردد.`,
}

// renderContent renders the sample markdown for the language to HTML.
func (h *FrontendHandler) renderContent(tag string) template.HTML {
	src, ok := sampleContent[lang.Normalize(tag)]
	if !ok {
		src = sampleContent["en"]
	}

	// Convert markdown to HTML
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		h.logger.Error("rendering content markdown", "lang", tag, "error", err)
		return ""
	}
	return template.HTML(buf.String()) //nolint:gosec // trusted embedded markdown
}

// parseTemplates parses the embedded page templates.
func parseTemplates() (*template.Template, error) {
	return template.ParseFS(web.Templates, "templates/*.html")
}
