package experiment

import "sync"

// barrier synchronizes the driver's worker goroutines so none starts its
// graph traversal before every deque has been constructed and every
// goroutine has been launched; startup cost stays outside the timed region.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	total int
	count int
}

func newBarrier(total int) *barrier {
	if total <= 0 {
		panic("experiment: barrier total must be > 0")
	}
	b := &barrier{total: total}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.count++
	if b.count == b.total {
		b.count = 0
		b.cond.Broadcast()
	} else {
		b.cond.Wait()
	}
}
