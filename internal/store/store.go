package store

import "context"

// Store is a durable mapping from string keys to JSON-serializable values.
// Every collection in the application round-trips through one key here, the
// same way the browser build kept whole collections under localStorage keys.
//
// Read reports found=false when the key has never been written; callers rely
// on that to tell an absent collection apart from an empty one. Write
// replaces the full value under the key.
type Store interface {
	Read(ctx context.Context, key string, dest any) (found bool, err error)
	Write(ctx context.Context, key string, value any) error
}
