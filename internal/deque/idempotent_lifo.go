package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// IdempotentLIFO is owner-LIFO and thief-LIFO: Steal, like Take, removes the
// most recently put task. The mutable state that a thief must observe
// consistently (top, and a tag bumped on every put and on every grow of the
// backing array) is packed into one atomic.Uint64 anchor, so a steal never
// needs a multi-word CAS. A steal that loses its anchor CAS to a racing put,
// take or grow simply retries; it may also, under the idempotent contract,
// return a task the owner has already re-taken, which callers tolerate.
type IdempotentLIFO struct {
	tasks  atomic.Pointer[task.Array]
	anchor atomic.Uint64
}

// NewIdempotentLIFO allocates an IdempotentLIFO deque with the given initial
// capacity.
func NewIdempotentLIFO(size int) (*IdempotentLIFO, error) {
	arr, err := task.NewArray(size)
	if err != nil {
		return nil, err
	}
	d := &IdempotentLIFO{}
	d.tasks.Store(arr)
	d.anchor.Store(packLIFOAnchor(0, 0))
	return d, nil
}

// Capacity returns the current backing array size.
func (d *IdempotentLIFO) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmpty is exact for the owner.
func (d *IdempotentLIFO) IsEmpty() bool {
	top, _ := unpackLIFOAnchor(d.anchor.Load())
	return top == 0
}

// grow doubles the backing array and bumps tag, invalidating any steal that
// is mid-flight against the old array.
func (d *IdempotentLIFO) grow() {
	old := d.tasks.Load()
	newArr, _ := task.NewArray(2 * old.Size())
	top, tag := unpackLIFOAnchor(d.anchor.Load())
	for i := int32(0); i < top; i++ {
		v, _ := old.Get(int(i) % old.Size())
		_ = newArr.Set(int(i)%newArr.Size(), v)
	}
	d.tasks.Store(newArr)
	d.anchor.Store(packLIFOAnchor(top, tag+1))
}

// Put is owner-only.
func (d *IdempotentLIFO) Put(t int32) bool {
	top, tag := unpackLIFOAnchor(d.anchor.Load())
	arr := d.tasks.Load()
	if int(top) >= arr.Size() {
		d.grow()
		return d.Put(t)
	}
	_ = arr.Set(int(top), t)
	d.anchor.Store(packLIFOAnchor(top+1, tag+1))
	return true
}

// Take is owner-only.
func (d *IdempotentLIFO) Take() (int32, bool) {
	top, tag := unpackLIFOAnchor(d.anchor.Load())
	if top == 0 {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(top - 1))
	d.anchor.Store(packLIFOAnchor(top-1, tag))
	return v, true
}

// Steal is thief-only; it reads the most recently put task, witnessed
// consistent against the owner's grow via the anchor CAS.
func (d *IdempotentLIFO) Steal() (int32, bool) {
	for {
		v := d.anchor.Load()
		top, tag := unpackLIFOAnchor(v)
		if top == 0 {
			return task.Empty, false
		}
		arr := d.tasks.Load()
		val, _ := arr.Get(int(top - 1))
		if d.anchor.CompareAndSwap(v, packLIFOAnchor(top-1, tag)) {
			return val, true
		}
	}
}
