// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollserver/catalog"
	"github.com/danielhkuo/pollserver/handlers"
	"github.com/danielhkuo/pollserver/middleware"
)

type route struct {
	method string
	path   string
}

// Router dispatches on exact (method, path) pairs.
// Anything not in the table goes to the not-found handler, so an unknown
// method on a known path is a 404, not a 405.
type Router struct {
	routes   map[route]http.HandlerFunc
	notFound http.HandlerFunc
}

func NewRouter(polls *catalog.Collection) *Router {
	rt := &Router{
		routes:   make(map[route]http.HandlerFunc),
		notFound: notFound,
	}

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(polls)

	rt.Handle(http.MethodGet, "/polls", middleware.WithLogging(pollHandler.ListPolls))

	return rt
}

// Handle registers h for an exact method and path. Later registrations
// replace earlier ones.
func (rt *Router) Handle(method, path string, h http.HandlerFunc) {
	rt.routes[route{method: method, path: path}] = h
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rt.routes[route{method: r.Method, path: r.URL.Path}]; ok {
		h(w, r)
		return
	}
	rt.notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound, r.Method+" "+r.URL.Path+" not found")
}
