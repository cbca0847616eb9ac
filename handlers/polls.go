// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pollserver/catalog"
	"github.com/danielhkuo/pollserver/middleware"
)

type PollHandler struct {
	polls *catalog.Collection
}

func NewPollHandler(polls *catalog.Collection) *PollHandler {
	return &PollHandler{polls: polls}
}

// ListPolls handles GET /polls
// Nothing in the request is read; the collection never changes, so every
// response carries the same pre-encoded body.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	middleware.RawJSONResponse(w, http.StatusOK, h.polls.JSON())
}
