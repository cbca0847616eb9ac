// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog builds the immutable poll collection served by the API.

# Collection

A Collection is validated once and never changes afterwards:

	c, err := catalog.New(polls...)

New rejects:

  - ids that are zero or negative (ErrInvalidID)
  - blank questions (ErrEmptyQuestion)
  - repeated ids (ErrDuplicateID)

The JSON array is encoded at construction and shared by every request.

# Sources

The collection is read from exactly one source at startup:

	catalog.Default()                             // built-in polls
	catalog.LoadFile("polls.yaml")                // YAML or JSON seed file
	catalog.LoadDatabase(ctx, "sqlite", "polls.db") // polls table, read once

Seed file format:

	polls:
	  - id: 1
	    question: What is your favorite color?
	  - id: 2
	    question: What is your favorite food?

Database seed query:

	SELECT id, question FROM polls ORDER BY id

Supported database types are sqlite (modernc.org/sqlite) and postgres
(lib/pq). The connection is closed as soon as the rows are read; nothing
is written back.
*/
package catalog
