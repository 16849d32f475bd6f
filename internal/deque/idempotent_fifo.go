package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// IdempotentFIFO is owner-FIFO, thief-FIFO: put/take are owner-only and
// require no CAS; steal advances head via CAS. A stolen task may be
// returned twice under a pathological race with a concurrent take; the
// client (the spanning-tree driver) is expected to tolerate duplicates.
type IdempotentFIFO struct {
	tasks atomic.Pointer[task.Array]
	head  atomic.Int64
	tail  atomic.Int64
}

// NewIdempotentFIFO allocates an IdempotentFIFO deque with the given
// initial capacity.
func NewIdempotentFIFO(size int) (*IdempotentFIFO, error) {
	arr, err := task.NewArray(size)
	if err != nil {
		return nil, err
	}
	d := &IdempotentFIFO{}
	d.tasks.Store(arr)
	return d, nil
}

// Capacity returns the current backing array size.
func (d *IdempotentFIFO) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmpty is exact for the owner (no concurrent owner mutation can happen).
func (d *IdempotentFIFO) IsEmpty() bool {
	return d.head.Load() == d.tail.Load()
}

func (d *IdempotentFIFO) grow() {
	arr := d.tasks.Load()
	newArr, _ := task.NewArray(2 * arr.Size())
	h := d.head.Load()
	t := d.tail.Load()
	for i := h; i < t; i++ {
		v, _ := arr.Get(int(i) % arr.Size())
		_ = newArr.Set(int(i)%newArr.Size(), v)
	}
	d.tasks.Store(newArr)
}

// Put is owner-only.
func (d *IdempotentFIFO) Put(t int32) bool {
	h := d.head.Load()
	tl := d.tail.Load()
	arr := d.tasks.Load()
	if int(tl) == int(h)+arr.Size() {
		d.grow()
		return d.Put(t)
	}
	_ = arr.Set(int(tl)%arr.Size(), t)
	d.tail.Store(tl + 1)
	return true
}

// Take is owner-only.
func (d *IdempotentFIFO) Take() (int32, bool) {
	h := d.head.Load()
	tl := d.tail.Load()
	if h == tl {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(h) % arr.Size())
	d.head.Store(h + 1)
	return v, true
}

// Steal is thief-only.
func (d *IdempotentFIFO) Steal() (int32, bool) {
	for {
		h := d.head.Load()
		tl := d.tail.Load()
		if h == tl {
			return task.Empty, false
		}
		arr := d.tasks.Load()
		v, _ := arr.Get(int(h) % arr.Size())
		if d.head.CompareAndSwap(h, h+1) {
			return v, true
		}
	}
}
