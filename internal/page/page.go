// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package page defines the host document surface the layout logic runs
// against: root-element attributes, named stylesheets, marker classes on
// the content container, and attribute change notifications.
package page

// Well-known root element attributes.
const (
	AttrLang = "lang"
	AttrDir  = "dir"
)

// ChangeRecord describes one attribute mutation on the root element.
type ChangeRecord struct {
	Attr     string
	OldValue string
	NewValue string
}

// Document is the host page surface. The production binding renders real
// markup; tests use the in-memory MemDoc. Implementations must treat
// operations on unknown stylesheet ids as no-ops, never as failures.
type Document interface {
	// Root element attributes.
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	// Named stylesheets. Enable clears the disabled flag, Disable sets it.
	// Ids that were never registered are silently skipped.
	EnableStylesheet(id string)
	DisableStylesheet(id string)
	StylesheetDisabled(id string) (disabled, ok bool)

	// Marker classes on the content container.
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// Subscribe registers fn for change batches on one attribute of the
	// root element and returns a subscription id. Records for the same
	// attribute are delivered in mutation order.
	Subscribe(attr string, fn func([]ChangeRecord)) string
	Unsubscribe(id string)

	// Ready reports whether the page structure is built. OnReady queues fn
	// to run once when it becomes ready; if already ready, fn runs
	// immediately.
	Ready() bool
	OnReady(fn func())
}
