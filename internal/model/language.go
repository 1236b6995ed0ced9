// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Language text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Language describes a selectable page language.
type Language struct {
	Code       string `json:"code"`        // ISO 639-1 or legacy code: en, ar, iw
	Name       string `json:"name"`        // English, Arabic, Hebrew
	NativeName string `json:"native_name"` // English, العربية, עברית
	Direction  string `json:"direction"`   // ltr, rtl
}

// IsRTL returns true if the language is right-to-left.
func (l Language) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// KnownLanguages lists the languages offered by the demo language switcher.
// Direction values here are display metadata; the authoritative direction
// decision is made by the classifier in internal/lang.
var KnownLanguages = []Language{
	{"en", "English", "English", DirectionLTR},
	{"ru", "Russian", "Русский", DirectionLTR},
	{"de", "German", "Deutsch", DirectionLTR},
	{"fr", "French", "Français", DirectionLTR},
	{"es", "Spanish", "Español", DirectionLTR},
	{"zh", "Chinese", "中文", DirectionLTR},
	{"ja", "Japanese", "日本語", DirectionLTR},
	{"tr", "Turkish", "Türkçe", DirectionLTR},
	{"ar", "Arabic", "العربية", DirectionRTL},
	{"he", "Hebrew", "עברית", DirectionRTL},
	{"fa", "Persian", "فارسی", DirectionRTL},
	{"ur", "Urdu", "اردو", DirectionRTL},
}

// LanguageByCode looks up a known language by its exact code.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range KnownLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
