package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// IdempotentDeque is the full idempotent double-ended variant of Michael,
// Vechev, and Saraswat's "Idempotent Work Stealing" (PPoPP 2009): owner-LIFO
// put/take at the tail (head+size), thief-FIFO steal at head. Its whole
// mutable state, head plus size plus an ABA tag, is packed into one
// atomic.Uint64 anchor so steal is a single-word CAS rather than a swap of
// a freshly allocated triplet.
type IdempotentDeque struct {
	tasks  atomic.Pointer[task.Array]
	anchor atomic.Uint64
}

// NewIdempotentDeque allocates an IdempotentDeque with the given initial
// capacity.
func NewIdempotentDeque(size int) (*IdempotentDeque, error) {
	arr, err := task.NewArray(size)
	if err != nil {
		return nil, err
	}
	d := &IdempotentDeque{}
	d.tasks.Store(arr)
	d.anchor.Store(packDequeAnchor(0, 0, 0))
	return d, nil
}

// Capacity returns the current backing array size.
func (d *IdempotentDeque) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmpty is exact for the owner.
func (d *IdempotentDeque) IsEmpty() bool {
	_, size, _ := unpackDequeAnchor(d.anchor.Load())
	return size == 0
}

// grow doubles the backing array, re-homing every live cell at index 0, and
// bumps tag to invalidate any steal mid-flight against the old array.
func (d *IdempotentDeque) grow() {
	old := d.tasks.Load()
	newArr, _ := task.NewArray(2 * old.Size())
	head, size, tag := unpackDequeAnchor(d.anchor.Load())
	for i := int32(0); i < size; i++ {
		v, _ := old.Get(int(head+i) % old.Size())
		_ = newArr.Set(int(i), v)
	}
	d.tasks.Store(newArr)
	d.anchor.Store(packDequeAnchor(0, size, tag+1))
}

// Put is owner-only; appends at the tail (head+size).
func (d *IdempotentDeque) Put(t int32) bool {
	head, size, tag := unpackDequeAnchor(d.anchor.Load())
	arr := d.tasks.Load()
	if int(size) >= arr.Size() {
		d.grow()
		return d.Put(t)
	}
	_ = arr.Set(int(head+size)%arr.Size(), t)
	d.anchor.Store(packDequeAnchor(head, size+1, tag+1))
	return true
}

// Take is owner-only; removes from the tail (LIFO order).
func (d *IdempotentDeque) Take() (int32, bool) {
	head, size, tag := unpackDequeAnchor(d.anchor.Load())
	if size == 0 {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(head+size-1) % arr.Size())
	d.anchor.Store(packDequeAnchor(head, size-1, tag))
	return v, true
}

// Steal is thief-only; removes from head (FIFO order), witnessed consistent
// via the anchor CAS.
func (d *IdempotentDeque) Steal() (int32, bool) {
	for {
		v := d.anchor.Load()
		head, size, tag := unpackDequeAnchor(v)
		if size == 0 {
			return task.Empty, false
		}
		arr := d.tasks.Load()
		idx := int(head) % arr.Size()
		val, _ := arr.Get(idx)
		newHead := int32((idx + 1) % arr.Size())
		newAnchor := packDequeAnchor(newHead, size-1, tag)
		if d.anchor.CompareAndSwap(v, newAnchor) {
			return val, true
		}
	}
}
