package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// BoundedWSNCMult is WSNCMult plus a per-slot claim flag array B that makes
// thieves mutually exclusive: B[i] == true means slot i may still be claimed,
// and a thief only keeps a task after flipping its flag true -> false with an
// atomic exchange. Two thieves that disagree on Head and read the same slot
// therefore can't both walk away with it; whichever loses the exchange
// advances past the slot and retries. The owner's take does not consult B,
// matching the variant's published form: boundedness is a guarantee among
// thieves.
//
// The constructor seeds B[0] = B[1] = true. The first put's two-slot
// look-ahead raises those same two flags whenever the capacity is at least
// 2; with a capacity of 1 the look-ahead is skipped, and the seed is what
// makes slot 0 stealable.
type BoundedWSNCMult struct {
	tasks atomic.Pointer[task.Array]
	claim atomic.Pointer[claimArray]
	tail  atomic.Int64
	head  []atomic.Int64
	Head  atomic.Int64
}

// claimArray is grown in lockstep with the task array.
type claimArray struct {
	slots []atomic.Bool
}

func newClaimArray(size int) *claimArray {
	return &claimArray{slots: make([]atomic.Bool, size)}
}

// NewBoundedWSNCMult allocates a BoundedWSNCMult deque with the given
// initial capacity and one private head per registered agent.
func NewBoundedWSNCMult(size, numAgents int) (*BoundedWSNCMult, error) {
	arr, err := task.NewArray(size)
	if err != nil {
		return nil, err
	}
	if numAgents <= 0 {
		numAgents = 1
	}
	d := &BoundedWSNCMult{head: make([]atomic.Int64, numAgents)}
	d.tasks.Store(arr)
	c := newClaimArray(size)
	c.slots[0].Store(true)
	if size > 1 {
		c.slots[1].Store(true)
	}
	d.claim.Store(c)
	return d, nil
}

// Capacity returns the current backing array size.
func (d *BoundedWSNCMult) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmptyLabel uses the per-label form, as WSNCMult does.
func (d *BoundedWSNCMult) IsEmptyLabel(label int) bool {
	return d.head[label].Load() >= d.tail.Load()
}

// grow doubles the task and claim arrays together, copying every cell at its
// absolute index. Old arrays are never freed.
func (d *BoundedWSNCMult) grow() {
	old := d.tasks.Load()
	oldClaim := d.claim.Load()
	newArr, _ := task.NewArray(2 * old.Size())
	newClaim := newClaimArray(2 * old.Size())
	for i := 0; i < old.Size(); i++ {
		v, _ := old.Get(i)
		_ = newArr.Set(i, v)
		newClaim.slots[i].Store(oldClaim.slots[i].Load())
	}
	d.tasks.Store(newArr)
	d.claim.Store(newClaim)
}

// PutLabel is owner-only. The look-ahead clears the next two cells to BOTTOM
// and raises their claim flags, keeping the invariant that every slot a thief
// can reach already has B[i] == true by the time a real task lands in it.
func (d *BoundedWSNCMult) PutLabel(t int32, _ int) bool {
	tl := d.tail.Load()
	arr := d.tasks.Load()
	if int(tl) == arr.Size() {
		d.grow()
		arr = d.tasks.Load()
	}
	if int(tl)+1 < arr.Size() {
		claim := d.claim.Load()
		_ = arr.Set(int(tl), task.Bottom)
		_ = arr.Set(int(tl)+1, task.Bottom)
		claim.slots[int(tl)].Store(true)
		claim.slots[int(tl)+1].Store(true)
	}
	_ = arr.Set(int(tl), t)
	d.tail.Store(tl + 1)
	return true
}

// TakeLabel consumes from label's private head without touching B: the owner
// always wins its slot, and a thief that later loses the claim exchange on
// the same position just moves on.
func (d *BoundedWSNCMult) TakeLabel(label int) (int32, bool) {
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

// StealLabel loops until it either claims a slot or runs out of published
// work. Only the thief whose exchange flips B[h] from true to false keeps
// the task and publishes the advanced Head; a loser's head has already moved
// past the contested slot, so the retry starts at the next one.
func (d *BoundedWSNCMult) StealLabel(label int) (int32, bool) {
	for {
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
		if v != task.Bottom {
			d.head[label].Store(h + 1)
			if d.claim.Load().slots[int(h)].Swap(false) {
				d.Head.Store(h + 1)
				return v, true
			}
		}
	}
}
