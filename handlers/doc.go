// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll API.

# Handler Types

  - PollHandler: read-only listing of the poll collection

Handlers are created via constructor functions that accept their
dependencies:

	pollHandler := handlers.NewPollHandler(polls)

# Poll Listing

	GET /polls → ListPolls

Always 200 with Content-Type application/json and the collection as a JSON
array, in collection order:

	[{"id":1,"question":"What is your favorite color?"},{"id":2,"question":"What is your favorite food?"}]

Query parameters, headers and bodies are ignored. The collection is
immutable, so handlers share it across goroutines without locking.
*/
package handlers
