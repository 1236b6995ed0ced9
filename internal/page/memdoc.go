// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"sync"

	"github.com/google/uuid"
)

// subscription pairs a callback with its id.
type subscription struct {
	id string
	fn func([]ChangeRecord)
}

// MemDoc is an in-memory Document. It backs the demo frontend and the test
// suite. Change notifications are delivered synchronously on the mutating
// goroutine; Batch groups several mutations into a single notification
// batch the way host environments coalesce mutation records.
//
// The mutex only guards against concurrent readers from the HTTP layer;
// mutation and delivery follow the single-writer model.
type MemDoc struct {
	mu       sync.RWMutex
	attrs    map[string]string
	sheets   map[string]bool // id -> disabled
	classes  map[string]struct{}
	subs     map[string][]subscription // attr -> subscribers
	ready    bool
	readyFns []func()

	batching bool
	pending  []ChangeRecord
}

// NewMemDoc returns an empty document whose structure is already ready.
func NewMemDoc() *MemDoc {
	d := NewDeferredMemDoc()
	d.ready = true
	return d
}

// NewDeferredMemDoc returns a document whose structure is not yet ready;
// call SignalReady to fire the ready signal.
func NewDeferredMemDoc() *MemDoc {
	return &MemDoc{
		attrs:   make(map[string]string),
		sheets:  make(map[string]bool),
		classes: make(map[string]struct{}),
		subs:    make(map[string][]subscription),
	}
}

// Attr returns the attribute value and whether it is present.
func (d *MemDoc) Attr(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.attrs[name]
	return v, ok
}

// SetAttr writes the attribute and notifies subscribers of that attribute.
// Writing the current value still produces a change record; subscribers
// are expected to be idempotent.
func (d *MemDoc) SetAttr(name, value string) {
	d.mu.Lock()
	old := d.attrs[name]
	d.attrs[name] = value
	d.mu.Unlock()
	d.record(ChangeRecord{Attr: name, OldValue: old, NewValue: value})
}

// RemoveAttr deletes the attribute and notifies subscribers.
func (d *MemDoc) RemoveAttr(name string) {
	d.mu.Lock()
	old, ok := d.attrs[name]
	delete(d.attrs, name)
	d.mu.Unlock()
	if ok {
		d.record(ChangeRecord{Attr: name, OldValue: old})
	}
}

// RegisterStylesheet adds a named stylesheet with an initial disabled state.
func (d *MemDoc) RegisterStylesheet(id string, disabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sheets[id] = disabled
}

// EnableStylesheet clears the disabled flag; unknown ids are skipped.
func (d *MemDoc) EnableStylesheet(id string) {
	d.setSheetDisabled(id, false)
}

// DisableStylesheet sets the disabled flag; unknown ids are skipped.
func (d *MemDoc) DisableStylesheet(id string) {
	d.setSheetDisabled(id, true)
}

func (d *MemDoc) setSheetDisabled(id string, disabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.sheets[id]; ok {
		d.sheets[id] = disabled
	}
}

// StylesheetDisabled returns the disabled flag and whether the id exists.
func (d *MemDoc) StylesheetDisabled(id string) (disabled, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	disabled, ok = d.sheets[id]
	return disabled, ok
}

// AddClass adds a class to the content container.
func (d *MemDoc) AddClass(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes[name] = struct{}{}
}

// RemoveClass removes a class from the content container.
func (d *MemDoc) RemoveClass(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.classes, name)
}

// HasClass reports whether the content container carries the class.
func (d *MemDoc) HasClass(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.classes[name]
	return ok
}

// Classes returns a snapshot of the container's class set.
func (d *MemDoc) Classes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	return out
}

// Subscribe registers fn for change batches on one attribute.
func (d *MemDoc) Subscribe(attr string, fn func([]ChangeRecord)) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.NewString()
	d.subs[attr] = append(d.subs[attr], subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes a subscription by id. Unknown ids are skipped.
func (d *MemDoc) Unsubscribe(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for attr, subs := range d.subs {
		for i, s := range subs {
			if s.id == id {
				d.subs[attr] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Ready reports whether the page structure is built.
func (d *MemDoc) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ready
}

// OnReady queues fn to run when SignalReady fires, or runs it immediately
// if the document is already ready.
func (d *MemDoc) OnReady(fn func()) {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		fn()
		return
	}
	d.readyFns = append(d.readyFns, fn)
	d.mu.Unlock()
}

// SignalReady marks the structure ready and fires queued callbacks once,
// in registration order. Firing twice is a no-op.
func (d *MemDoc) SignalReady() {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return
	}
	d.ready = true
	fns := d.readyFns
	d.readyFns = nil
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Batch runs fn and delivers all attribute mutations it performs as one
// notification batch per subscribed attribute.
func (d *MemDoc) Batch(fn func()) {
	d.mu.Lock()
	if d.batching {
		// Nested batch folds into the outer one.
		d.mu.Unlock()
		fn()
		return
	}
	d.batching = true
	d.mu.Unlock()

	fn()

	d.mu.Lock()
	d.batching = false
	records := d.pending
	d.pending = nil
	d.mu.Unlock()

	d.deliver(records)
}

// record buffers the change during a batch, otherwise delivers it alone.
func (d *MemDoc) record(rec ChangeRecord) {
	d.mu.Lock()
	if d.batching {
		d.pending = append(d.pending, rec)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	d.deliver([]ChangeRecord{rec})
}

// deliver fans a batch out to subscribers, each receiving only the records
// for its attribute, in mutation order. Callbacks run without the lock so
// they may mutate the document.
func (d *MemDoc) deliver(records []ChangeRecord) {
	if len(records) == 0 {
		return
	}

	byAttr := make(map[string][]ChangeRecord)
	for _, rec := range records {
		byAttr[rec.Attr] = append(byAttr[rec.Attr], rec)
	}

	d.mu.RLock()
	type delivery struct {
		fn   func([]ChangeRecord)
		recs []ChangeRecord
	}
	var deliveries []delivery
	for attr, recs := range byAttr {
		for _, s := range d.subs[attr] {
			deliveries = append(deliveries, delivery{fn: s.fn, recs: recs})
		}
	}
	d.mu.RUnlock()

	for _, dl := range deliveries {
		dl.fn(dl.recs)
	}
}
