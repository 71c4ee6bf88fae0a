package interfaces

import "context"

// IBlobStore abstracts a key-value blob backend (in-memory, DynamoDB, Postgres).
//
// Get reports found=false with a nil error when the key has never been written.
// Put replaces the whole value in a single write.

type IBlobStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}
