package lockRepo

import (
	"context"
	"sync"
)

// LocalLocker serializes writers inside one process.
type LocalLocker struct {
	mu   sync.Mutex
	sems map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{sems: make(map[string]chan struct{})}
}

// getSem returns the semaphore for a key, creating one if it doesn't exist.
func (l *LocalLocker) getSem(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	sem, exists := l.sems[key]
	if !exists {
		sem = make(chan struct{}, 1)
		l.sems[key] = sem
	}
	return sem
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	sem := l.getSem(key)
	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-sem })
	}, nil
}
