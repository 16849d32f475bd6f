package deque

import (
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// cacheLineSize separates hot atomic fields that different threads pound on
// so they don't false-share a cache line.
const cacheLineSize = 64

// ChaseLev is the Chase-Lev work-stealing deque ("Dynamic Circular
// Work-Stealing Deque", SPAA 2005): owner-LIFO via put/take, thief-FIFO via
// steal. Only the owner writes bottom; any thread may advance top via CAS.
type ChaseLev struct {
	tasks atomic.Pointer[task.Array]

	_ [cacheLineSize]byte

	top atomic.Int64

	_ [cacheLineSize]byte

	bottom atomic.Int64
}

// NewChaseLev allocates a ChaseLev deque with the given initial capacity.
func NewChaseLev(initialSize int) (*ChaseLev, error) {
	arr, err := task.NewArray(initialSize)
	if err != nil {
		return nil, err
	}
	d := &ChaseLev{}
	d.tasks.Store(arr)
	return d, nil
}

// Capacity returns the current backing array size.
func (d *ChaseLev) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmpty may lag a concurrent mutation; it is eventually consistent.
func (d *ChaseLev) IsEmpty() bool {
	t := d.bottom.Load()
	h := d.top.Load()
	return h >= t
}

// grow doubles the backing array, copying live cells under a plain load and
// publishing the replacement under the atomic.Pointer store. The old array
// is never freed: its lifetime equals the deque's, since in-flight thieves
// may still be addressing it.
func (d *ChaseLev) grow() {
	old := d.tasks.Load()
	newArr, _ := task.NewArray(2 * old.Size())
	h := d.top.Load()
	b := d.bottom.Load()
	for i := h; i < b; i++ {
		v, _ := old.Get(int(i) % old.Size())
		_ = newArr.Set(int(i)%newArr.Size(), v)
	}
	d.tasks.Store(newArr)
}

// Put is owner-only.
func (d *ChaseLev) Put(t int32) bool {
	b := d.bottom.Load()
	arr := d.tasks.Load()
	if int(b) >= arr.Size() {
		d.grow()
		arr = d.tasks.Load()
	}
	_ = arr.Set(int(b)%arr.Size(), t)
	d.bottom.Store(b + 1)
	return true
}

// Take is owner-only. After the speculative bottom decrement there are three
// cases against a racing Steal: clearly non-empty (keep the slot), clearly
// lost (restore bottom), or exactly one task left, where owner and thief
// settle it with a CAS on top.
func (d *ChaseLev) Take() (int32, bool) {
	b := d.bottom.Load() - 1
	d.bottom.Store(b)
	// Sequentially-consistent load gives us the StoreLoad fence this race
	// needs between the bottom store above and this top load.
	h := d.top.Load()
	if b > h {
		arr := d.tasks.Load()
		v, _ := arr.Get(int(b) % arr.Size())
		return v, true
	}
	if b < h {
		d.bottom.Store(h)
		return task.Empty, false
	}
	d.bottom.Store(h + 1)
	if !d.top.CompareAndSwap(h, h+1) {
		return task.Empty, false
	}
	arr := d.tasks.Load()
	v, _ := arr.Get(int(b) % arr.Size())
	return v, true
}

// Steal is thief-only.
func (d *ChaseLev) Steal() (int32, bool) {
	for {
		h := d.top.Load()
		b := d.bottom.Load()
		if h >= b {
			return task.Empty, false
		}
		arr := d.tasks.Load()
		v, _ := arr.Get(int(h) % arr.Size())
		if !d.top.CompareAndSwap(h, h+1) {
			continue
		}
		return v, true
	}
}
