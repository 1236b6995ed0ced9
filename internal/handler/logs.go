// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/olegiv/langdir/internal/logging"
)

// LogsHandler exposes the recent in-memory log records.
type LogsHandler struct {
	mem *logging.MemoryHandler
}

// NewLogsHandler creates a new LogsHandler.
func NewLogsHandler(mem *logging.MemoryHandler) *LogsHandler {
	return &LogsHandler{mem: mem}
}

// Recent handles GET /logz with the captured records, oldest first.
func (h *LogsHandler) Recent(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.mem.Recent()); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
