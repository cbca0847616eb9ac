// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	rt.Handle("GET", "/polls", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID is taken from an incoming
X-Request-ID header or generated as a UUID, and echoed back in the
X-Request-ID response header.

# CORS Middleware

Enable cross-origin requests for configured frontends:

	handler := middleware.CORS([]string{"http://localhost:5173"})(rt)

Only listed origins (or any origin, with "*") receive
Access-Control-Allow-* headers. OPTIONS preflights from an allowed origin
are answered with 204; everything else passes through untouched.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.RawJSONResponse(w, http.StatusOK, body)
	middleware.ErrorResponse(w, http.StatusNotFound, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the remote field in request logs.
*/
package middleware
