// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollserver/catalog"
	"github.com/danielhkuo/pollserver/models"
)

// CreateTestCollection builds a collection of n polls with ids counting
// down from n, so serving order differs from id order
func CreateTestCollection(t *testing.T, n int) *catalog.Collection {
	t.Helper()

	polls := make([]models.Poll, n)
	for i := range polls {
		id := int64(n - i)
		polls[i] = models.Poll{ID: id, Question: fmt.Sprintf("Test question %d?", id)}
	}

	c, err := catalog.New(polls...)
	if err != nil {
		t.Fatalf("Failed to create test collection: %v", err)
	}
	return c
}

// OccupyPort binds a loopback port for the duration of the test and
// returns the listener and its address
func OccupyPort(t *testing.T) (net.Listener, string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to occupy port: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	return ln, ln.Addr().String()
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
