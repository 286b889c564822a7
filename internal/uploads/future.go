// internal/uploads/future.go
package uploads

import (
	"sync"
	"time"
)

// Future represents an upload that completes at some later point with a
// stored-object reference. It has exactly two states: pending and ready.
// There is no cancellation, retry or timeout; callers poll Ready before
// depending on the reference.
type Future struct {
	mu    sync.Mutex
	ref   string
	ready bool
}

func NewFuture() *Future {
	return &Future{}
}

// Complete transitions the future to ready with the given reference.
// Completing an already-ready future is a no-op.
func (f *Future) Complete(ref string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ready {
		return
	}
	f.ref = ref
	f.ready = true
}

// Ready reports whether the upload has finished.
func (f *Future) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

// Ref returns the stored-object reference, or "" while pending.
func (f *Future) Ref() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return ""
	}
	return f.ref
}

// Uploader simulates an object-store upload that completes after a fixed
// delay. Real storage integration sits behind the same Future contract.
type Uploader struct {
	Delay time.Duration
}

// Start begins an upload for the named file and returns its future.
func (u *Uploader) Start(name string) *Future {
	f := NewFuture()
	go func() {
		if u.Delay > 0 {
			time.Sleep(u.Delay)
		}
		f.Complete("uploaded/" + name)
	}()
	return f
}
