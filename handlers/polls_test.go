// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pollserver/catalog"
	"github.com/danielhkuo/pollserver/models"
	"github.com/danielhkuo/pollserver/testutil"
)

func TestListPolls_Default(t *testing.T) {
	handler := NewPollHandler(catalog.Default())

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}

	expected := `[{"id":1,"question":"What is your favorite color?"},{"id":2,"question":"What is your favorite food?"}]`
	if w.Body.String() != expected {
		t.Errorf("Expected body %s, got %s", expected, w.Body.String())
	}
}

func TestListPolls_MatchesCollection(t *testing.T) {
	polls := testutil.CreateTestCollection(t, 25)
	handler := NewPollHandler(polls)

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var got []models.Poll
	testutil.AssertJSON(t, w, &got)

	want := polls.Polls()
	if len(got) != len(want) {
		t.Fatalf("Expected %d polls, got %d", len(want), len(got))
	}

	seen := make(map[int64]bool)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Poll %d: expected %+v, got %+v", i, want[i], got[i])
		}
		if seen[got[i].ID] {
			t.Errorf("Duplicate id %d in response", got[i].ID)
		}
		seen[got[i].ID] = true
	}
}

func TestListPolls_IgnoresRequest(t *testing.T) {
	handler := NewPollHandler(catalog.Default())
	expected := string(catalog.Default().JSON())

	testCases := []struct {
		name    string
		path    string
		body    string
		headers map[string]string
	}{
		{"query parameters", "/polls?page=2&limit=1", "", nil},
		{"accept header", "/polls", "", map[string]string{"Accept": "text/html"}},
		{"request body", "/polls", `{"question":"ignored"}`, map[string]string{"Content-Type": "application/json"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, strings.NewReader(tc.body))
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			handler.ListPolls(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if w.Body.String() != expected {
				t.Errorf("Expected body %s, got %s", expected, w.Body.String())
			}
		})
	}
}

func TestListPolls_EmptyCollection(t *testing.T) {
	polls, err := catalog.New()
	if err != nil {
		t.Fatal(err)
	}
	handler := NewPollHandler(polls)

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]" {
		t.Errorf("Expected empty array, got %s", w.Body.String())
	}
}
