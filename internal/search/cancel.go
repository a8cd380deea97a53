// File internal/search/cancel.go
package search

import "sync/atomic"

// cancelToken is a cooperative stop flag: the search polls it (and
// the node budget) between moves rather than being preempted.
type cancelToken struct{ f int32 }

func (c *cancelToken) Abort() {
	atomic.StoreInt32(&c.f, 1)
}

func (c *cancelToken) IsAborted() bool {
	return atomic.LoadInt32(&c.f) == 1
}

func (c *cancelToken) Reset() {
	atomic.StoreInt32(&c.f, 0)
}
