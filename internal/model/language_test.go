// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestLanguage_IsRTL(t *testing.T) {
	if !(Language{Code: "ar", Direction: DirectionRTL}).IsRTL() {
		t.Error("rtl language should report IsRTL")
	}
	if (Language{Code: "en", Direction: DirectionLTR}).IsRTL() {
		t.Error("ltr language should not report IsRTL")
	}
}

func TestLanguageByCode(t *testing.T) {
	l, ok := LanguageByCode("he")
	if !ok {
		t.Fatal("he should be a known language")
	}
	if l.Name != "Hebrew" || l.Direction != DirectionRTL {
		t.Errorf("he = %+v, want Hebrew/rtl", l)
	}

	if _, ok := LanguageByCode("xx"); ok {
		t.Error("xx should not be known")
	}
}

func TestKnownLanguages_Directions(t *testing.T) {
	for _, l := range KnownLanguages {
		if l.Direction != DirectionLTR && l.Direction != DirectionRTL {
			t.Errorf("language %s has invalid direction %q", l.Code, l.Direction)
		}
	}
}
