// Package progress provides a concurrency-safe counter for observing
// long-running fan-out work. It is observability only: no pipeline
// stage depends on it for correctness.
package progress

import (
	"fmt"
	"sync/atomic"
)

// Counter tracks completed work items against an expected total. The
// zero value is ready to use; all methods are safe for concurrent use.
type Counter struct {
	total atomic.Int64
	done  atomic.Int64
}

// SetTotal records the expected number of work items.
func (c *Counter) SetTotal(n int64) {
	c.total.Store(n)
}

// Increment records one completed work item. The completed count only
// ever grows.
func (c *Counter) Increment() {
	c.done.Add(1)
}

// Done returns the number of completed work items.
func (c *Counter) Done() int64 {
	return c.done.Load()
}

// Total returns the expected number of work items.
func (c *Counter) Total() int64 {
	return c.total.Load()
}

// String renders the counter as "done/total".
func (c *Counter) String() string {
	return fmt.Sprintf("%d/%d", c.Done(), c.Total())
}
