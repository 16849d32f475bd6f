package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// WSNCMult ("work stealing with multiplicity") trades the single contended
// head index of the other variants for one private head per registered
// agent, plus a shared Head published as an optimistic hint. Every agent
// first fast-forwards its private head to the hint, so a freshly idle thief
// skips the prefix the rest of the group already consumed; but because each
// private head advances independently, two agents can legitimately walk away
// with the same task. The variant accepts that multiplicity rather than
// serializing every steal through one CAS.
//
// Indices are absolute, never wrapped: tail only grows, and the backing
// array doubles before tail can reach its end, so slot i always means the
// i-th task ever put.
type WSNCMult struct {
	tasks atomic.Pointer[task.Array]
	tail  atomic.Int64
	head  []atomic.Int64
	Head  atomic.Int64
}

// NewWSNCMult allocates a WSNCMult deque with the given initial capacity and
// one private head index per registered agent (label 0 is conventionally the
// owner).
func NewWSNCMult(size, numAgents int) (*WSNCMult, error) {
	arr, err := task.NewArray(size)
	if err != nil {
		return nil, err
	}
	if numAgents <= 0 {
		numAgents = 1
	}
	d := &WSNCMult{head: make([]atomic.Int64, numAgents)}
	d.tasks.Store(arr)
	return d, nil
}

// Capacity returns the current backing array size.
func (d *WSNCMult) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmptyLabel reports whether label's private head has caught up to tail.
// This is the per-label form, the one the variant's own take/steal actually
// consult; the shared Head is only a hint and may run ahead of a label that
// hasn't merged it yet.
func (d *WSNCMult) IsEmptyLabel(label int) bool {
	return d.head[label].Load() >= d.tail.Load()
}

// grow doubles the backing array, copying every cell at its absolute index.
// The old array is never freed: in-flight readers may still be addressing it.
func (d *WSNCMult) grow() {
	old := d.tasks.Load()
	newArr, _ := task.NewArray(2 * old.Size())
	for i := 0; i < old.Size(); i++ {
		v, _ := old.Get(i)
		_ = newArr.Set(i, v)
	}
	d.tasks.Store(newArr)
}

// PutLabel is owner-only; label is accepted for contract symmetry with
// TakeLabel/StealLabel but ignored, since only the owner ever appends. The
// two slots past tail are cleared to BOTTOM before the new task is written,
// so a thief whose stale tail read sends it past the last real task finds a
// sentinel there instead of garbage.
func (d *WSNCMult) PutLabel(t int32, _ int) bool {
	tl := d.tail.Load()
	arr := d.tasks.Load()
	if int(tl) == arr.Size() {
		d.grow()
		arr = d.tasks.Load()
	}
	if int(tl)+1 < arr.Size() {
		_ = arr.Set(int(tl), task.Bottom)
		_ = arr.Set(int(tl)+1, task.Bottom)
	}
	_ = arr.Set(int(tl), t)
	d.tail.Store(tl + 1)
	return true
}

// TakeLabel consumes from label's private head, first fast-forwarded to the
// shared hint, then publishes the advance back into the hint.
func (d *WSNCMult) TakeLabel(label int) (int32, bool) {
	h := d.head[label].Load()
	if hint := d.Head.Load(); hint > h {
		h = hint
		d.head[label].Store(h)
	}
	if h >= d.tail.Load() {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(h))
	d.head[label].Store(h + 1)
	d.Head.Store(h + 1)
	return v, true
}

// StealLabel is TakeLabel plus a sentinel check: a cell still reading BOTTOM
// means the thief got ahead of the owner's task write, so it reports empty
// rather than returning the sentinel as work.
func (d *WSNCMult) StealLabel(label int) (int32, bool) {
	h := d.head[label].Load()
	if hint := d.Head.Load(); hint > h {
		h = hint
		d.head[label].Store(h)
	}
	if h >= d.tail.Load() {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(h))
	if v == task.Bottom {
		return task.Empty, false
	}
	d.head[label].Store(h + 1)
	d.Head.Store(h + 1)
	return v, true
}
