package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"invoicer/internal/usecase/interfaces"
)

var errCorruptCollection = errors.New("stored collection is not valid json")

// blobCollection reads and writes a whole JSON array stored under one key.
type blobCollection[T any] struct {
	blobs interfaces.IBlobStore
	key   string
}

// load returns the stored records. A missing key is an empty collection.
// Undecodable content is reported wrapped in errCorruptCollection so callers
// can tell it apart from an unavailable backend.
func (c blobCollection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.blobs.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found || len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptCollection, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c blobCollection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.blobs.Put(ctx, c.key, b)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
