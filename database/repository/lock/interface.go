package lockRepo

import "context"

// Locker serializes writers on a key. Lock blocks until the key is free or
// ctx is done; the returned func releases the key and is safe to call once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
