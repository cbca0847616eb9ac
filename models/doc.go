// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the API.

# Domain Types

  - Poll: id (positive, unique within the served collection) and question

A Poll serializes as:

	{"id":1,"question":"What is your favorite color?"}

The same struct tags are used when polls are read from a YAML seed file.

# Response Types

  - ErrorResponse: error, message

Every non-2xx response written by the server uses ErrorResponse.
*/
package models
