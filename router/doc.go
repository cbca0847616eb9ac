// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the poll API.

# Route Registration

NewRouter builds the route table for a poll collection:

	rt := router.NewRouter(polls)

Routes are an explicit map from (method, path) to handler. Lookup is an
exact match on both; there are no path parameters, no trailing-slash
redirects and no method fallbacks.

# Endpoints

	GET /polls - List all polls

# Not Found

Every other request, including other methods on /polls, gets a 404 with a
JSON error body:

	{"error":"Not Found","message":"POST /polls not found"}
*/
package router
