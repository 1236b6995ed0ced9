// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package lang

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"empty", "", ""},
		{"plain code", "en", "en"},
		{"uppercase", "AR", "ar"},
		{"with region", "ar-SA", "ar"},
		{"mixed case with region", "He-IL", "he"},
		{"multiple subtags", "zh-Hant-TW", "zh"},
		{"surrounding whitespace", "  fa-IR ", "fa"},
		{"three letter code", "ckb-IQ", "ckb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.tag); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestIsRTL_Members(t *testing.T) {
	codes := []string{"ar", "he", "fa", "ur", "yi", "ji", "iw", "ps", "sd", "ug", "ku", "arc", "ckb", "dv"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			if !IsRTL(code) {
				t.Errorf("IsRTL(%q) = false, want true", code)
			}
			if !IsRTL(code + "-XX") {
				t.Errorf("IsRTL(%q) = false, want true", code+"-XX")
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"empty", "", false},
		{"english", "en", false},
		{"english with region", "en-US", false},
		{"uppercase arabic", "AR", true},
		{"arabic with region", "ar-SA", true},
		{"hebrew mixed case region", "He-IL", true},
		{"legacy hebrew", "iw", true},
		{"legacy yiddish", "JI", true},
		{"unknown code", "xx", false},
		{"garbage", "not-a-language", false},
		{"prefix of member is not member", "a", false},
		{"member code with extra letters", "arab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRTL(tt.tag); got != tt.want {
				t.Errorf("IsRTL(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestClassifier_ExtraCodes(t *testing.T) {
	c := NewClassifier("XQ", " zz-ZZ ")

	if !c.IsRTL("xq-SA") {
		t.Error("extra code xq should match region-stripped and case-insensitive")
	}
	if !c.IsRTL("ZZ") {
		t.Error("extra code zz should match case-insensitive")
	}
	if !c.IsRTL("ar") {
		t.Error("built-in codes must survive extension")
	}
	if IsRTL("xq") {
		t.Error("extending one classifier must not mutate the default set")
	}
}

func TestDirection(t *testing.T) {
	if got := Direction("ar-EG"); got != "rtl" {
		t.Errorf("Direction(ar-EG) = %q, want rtl", got)
	}
	if got := Direction("en"); got != "ltr" {
		t.Errorf("Direction(en) = %q, want ltr", got)
	}
	if got := Direction(""); got != "ltr" {
		t.Errorf("Direction(empty) = %q, want ltr", got)
	}
}
