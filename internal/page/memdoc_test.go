// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"reflect"
	"testing"
)

func TestMemDoc_Attrs(t *testing.T) {
	d := NewMemDoc()

	if _, ok := d.Attr("lang"); ok {
		t.Error("fresh document should have no lang attribute")
	}

	d.SetAttr("lang", "en")
	if v, ok := d.Attr("lang"); !ok || v != "en" {
		t.Errorf("Attr(lang) = %q, %v; want en, true", v, ok)
	}

	d.RemoveAttr("lang")
	if _, ok := d.Attr("lang"); ok {
		t.Error("lang attribute should be gone after RemoveAttr")
	}
}

func TestMemDoc_SubscribeDeliversInOrder(t *testing.T) {
	d := NewMemDoc()

	var got []string
	d.Subscribe("lang", func(records []ChangeRecord) {
		for _, rec := range records {
			got = append(got, rec.NewValue)
		}
	})

	d.SetAttr("lang", "en")
	d.SetAttr("lang", "ar")
	d.SetAttr("lang", "he")

	want := []string{"en", "ar", "he"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivered values = %v, want %v", got, want)
	}
}

func TestMemDoc_SubscribeScopedToAttribute(t *testing.T) {
	d := NewMemDoc()

	calls := 0
	d.Subscribe("lang", func(records []ChangeRecord) {
		calls += len(records)
	})

	d.SetAttr("dir", "rtl")
	d.SetAttr("title", "demo")
	if calls != 0 {
		t.Errorf("subscriber saw %d records for other attributes", calls)
	}

	d.SetAttr("lang", "fa")
	if calls != 1 {
		t.Errorf("subscriber saw %d records, want 1", calls)
	}
}

func TestMemDoc_Unsubscribe(t *testing.T) {
	d := NewMemDoc()

	calls := 0
	id := d.Subscribe("lang", func([]ChangeRecord) { calls++ })

	d.SetAttr("lang", "en")
	d.Unsubscribe(id)
	d.SetAttr("lang", "ar")

	if calls != 1 {
		t.Errorf("calls = %d, want 1 after unsubscribe", calls)
	}

	// Unknown id is skipped
	d.Unsubscribe("nope")
}

func TestMemDoc_BatchGroupsRecords(t *testing.T) {
	d := NewMemDoc()

	var batches [][]ChangeRecord
	d.Subscribe("lang", func(records []ChangeRecord) {
		batches = append(batches, records)
	})

	d.Batch(func() {
		d.SetAttr("lang", "ar")
		d.SetAttr("dir", "rtl")
		d.SetAttr("lang", "he")
	})

	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	if len(batches[0]) != 2 {
		t.Fatalf("batch has %d lang records, want 2", len(batches[0]))
	}
	if batches[0][0].NewValue != "ar" || batches[0][1].NewValue != "he" {
		t.Errorf("batch records out of mutation order: %+v", batches[0])
	}
}

func TestMemDoc_Stylesheets(t *testing.T) {
	d := NewMemDoc()
	d.RegisterStylesheet("main-style", false)

	// Unknown ids are silently skipped
	d.DisableStylesheet("missing")
	d.EnableStylesheet("missing")
	if _, ok := d.StylesheetDisabled("missing"); ok {
		t.Error("unregistered stylesheet should not exist")
	}

	d.DisableStylesheet("main-style")
	if disabled, ok := d.StylesheetDisabled("main-style"); !ok || !disabled {
		t.Error("main-style should be disabled")
	}

	d.EnableStylesheet("main-style")
	if disabled, _ := d.StylesheetDisabled("main-style"); disabled {
		t.Error("main-style should be enabled again")
	}
}

func TestMemDoc_Classes(t *testing.T) {
	d := NewMemDoc()

	d.AddClass("rtl-layout")
	if !d.HasClass("rtl-layout") {
		t.Error("class should be present after AddClass")
	}

	d.AddClass("rtl-layout") // add twice, still one class
	d.RemoveClass("rtl-layout")
	if d.HasClass("rtl-layout") {
		t.Error("class should be gone after RemoveClass")
	}

	d.RemoveClass("never-there") // no-op
}

func TestMemDoc_ReadySignal(t *testing.T) {
	d := NewDeferredMemDoc()

	if d.Ready() {
		t.Fatal("deferred document must not start ready")
	}

	fired := 0
	d.OnReady(func() { fired++ })
	if fired != 0 {
		t.Fatal("callback must not run before the ready signal")
	}

	d.SignalReady()
	if !d.Ready() || fired != 1 {
		t.Fatalf("after SignalReady: ready=%v fired=%d", d.Ready(), fired)
	}

	// Second signal is a no-op
	d.SignalReady()
	if fired != 1 {
		t.Errorf("fired = %d, want 1 after repeated SignalReady", fired)
	}

	// Once ready, callbacks run immediately
	d.OnReady(func() { fired++ })
	if fired != 2 {
		t.Errorf("fired = %d, want 2 after OnReady on a ready document", fired)
	}
}
