// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package lang classifies language tags into text directions.
package lang

import (
	"strings"

	"github.com/olegiv/langdir/internal/model"
)

// rtlCodes holds the primary subtags of right-to-left languages.
// Includes the legacy codes iw (Hebrew) and ji (Yiddish) still emitted
// by some platforms.
var rtlCodes = map[string]struct{}{
	"ar":  {}, // Arabic
	"he":  {}, // Hebrew
	"fa":  {}, // Persian
	"ur":  {}, // Urdu
	"yi":  {}, // Yiddish
	"ji":  {}, // Yiddish (legacy)
	"iw":  {}, // Hebrew (legacy)
	"ps":  {}, // Pashto
	"sd":  {}, // Sindhi
	"ug":  {}, // Uyghur
	"ku":  {}, // Kurdish
	"arc": {}, // Aramaic
	"ckb": {}, // Central Kurdish
	"dv":  {}, // Dhivehi
}

// Normalize reduces a language tag to its lowercase primary subtag:
// "ar-SA" -> "ar", "He-IL" -> "he", "" -> "".
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.Index(tag, "-"); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// Classifier decides whether a language tag is right-to-left. The code set
// is fixed at construction and never mutated afterwards.
type Classifier struct {
	codes map[string]struct{}
}

// NewClassifier returns a classifier over the built-in RTL code set plus
// any extra primary subtags. Extra codes are normalized the same way tags
// are, so matching stays case-insensitive and region-stripped.
func NewClassifier(extra ...string) *Classifier {
	codes := make(map[string]struct{}, len(rtlCodes)+len(extra))
	for code := range rtlCodes {
		codes[code] = struct{}{}
	}
	for _, code := range extra {
		if code = Normalize(code); code != "" {
			codes[code] = struct{}{}
		}
	}
	return &Classifier{codes: codes}
}

// IsRTL reports whether the tag's primary subtag is a right-to-left
// language. Empty or unrecognized tags default to left-to-right.
func (c *Classifier) IsRTL(tag string) bool {
	_, ok := c.codes[Normalize(tag)]
	return ok
}

// Direction returns model.DirectionRTL or model.DirectionLTR for the tag.
func (c *Classifier) Direction(tag string) string {
	if c.IsRTL(tag) {
		return model.DirectionRTL
	}
	return model.DirectionLTR
}

// defaultClassifier backs the package-level helpers.
var defaultClassifier = NewClassifier()

// IsRTL reports whether the tag is right-to-left using the built-in set.
func IsRTL(tag string) bool {
	return defaultClassifier.IsRTL(tag)
}

// Direction classifies the tag using the built-in set.
func Direction(tag string) string {
	return defaultClassifier.Direction(tag)
}
