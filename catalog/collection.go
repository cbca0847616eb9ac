// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/pollserver/models"
)

var (
	ErrInvalidID     = errors.New("poll id must be positive")
	ErrEmptyQuestion = errors.New("poll question must not be empty")
	ErrDuplicateID   = errors.New("duplicate poll id")
)

// Collection is the ordered, immutable set of polls served by the API.
// It is safe for concurrent use without locking.
type Collection struct {
	polls []models.Poll
	body  []byte
}

// New validates polls and builds a Collection in the given order.
func New(polls ...models.Poll) (*Collection, error) {
	seen := make(map[int64]int, len(polls))
	owned := make([]models.Poll, len(polls))

	for i, p := range polls {
		if p.ID <= 0 {
			return nil, fmt.Errorf("poll %d (id %d): %w", i, p.ID, ErrInvalidID)
		}
		if strings.TrimSpace(p.Question) == "" {
			return nil, fmt.Errorf("poll %d (id %d): %w", i, p.ID, ErrEmptyQuestion)
		}
		if first, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("poll %d (id %d, first at %d): %w", i, p.ID, first, ErrDuplicateID)
		}
		seen[p.ID] = i
		owned[i] = p
	}

	body, err := json.Marshal(owned)
	if err != nil {
		return nil, fmt.Errorf("failed to encode polls: %w", err)
	}

	return &Collection{polls: owned, body: body}, nil
}

// Default returns the built-in collection.
func Default() *Collection {
	c, err := New(
		models.Poll{ID: 1, Question: "What is your favorite color?"},
		models.Poll{ID: 2, Question: "What is your favorite food?"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Polls returns a copy of the polls in serving order.
func (c *Collection) Polls() []models.Poll {
	out := make([]models.Poll, len(c.polls))
	copy(out, c.polls)
	return out
}

func (c *Collection) Len() int {
	return len(c.polls)
}

// JSON returns the encoded array. Callers must not modify it.
func (c *Collection) JSON() []byte {
	return c.body
}
