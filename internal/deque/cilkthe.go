package deque

import (
	"sync"
	"sync/atomic"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// CilkTHE is the Cilk "THE" work-stealing deque: same index layout as
// ChaseLev, but races near empty are resolved with a mutex instead of a bare
// CAS retry loop. Thieves always hold the lock for the whole steal.
type CilkTHE struct {
	tasks atomic.Pointer[task.Array]

	_ [cacheLineSize]byte

	top atomic.Int64

	_ [cacheLineSize]byte

	bottom atomic.Int64

	mu sync.Mutex
}

// NewCilkTHE allocates a CilkTHE deque with the given initial capacity.
func NewCilkTHE(initialSize int) (*CilkTHE, error) {
	arr, err := task.NewArray(initialSize)
	if err != nil {
		return nil, err
	}
	d := &CilkTHE{}
	d.tasks.Store(arr)
	return d, nil
}

// Capacity returns the current backing array size.
func (d *CilkTHE) Capacity() int {
	return d.tasks.Load().Size()
}

// IsEmpty may lag a concurrent mutation.
func (d *CilkTHE) IsEmpty() bool {
	t := d.bottom.Load()
	h := d.top.Load()
	return h >= t
}

func (d *CilkTHE) grow() {
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

// Put is owner-only; the fast path never takes the lock.
func (d *CilkTHE) Put(t int32) bool {
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

// Take is owner-only. Only acquires mtx when racing a thief near empty.
func (d *CilkTHE) Take() (int32, bool) {
	b := d.bottom.Load() - 1
	d.bottom.Store(b)
	h := d.top.Load()
	if b >= h {
		arr := d.tasks.Load()
		v, _ := arr.Get(int(b) % arr.Size())
		return v, true
	}
	d.mu.Lock()
	if d.top.Load() >= b+1 {
		d.bottom.Store(b + 1)
		d.mu.Unlock()
		return task.Empty, false
	}
	d.mu.Unlock()
	arr := d.tasks.Load()
	v, _ := arr.Get(int(b) % arr.Size())
	return v, true
}

// Steal always holds mtx for its whole duration.
func (d *CilkTHE) Steal() (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.top.Load()
	d.top.Store(h + 1)
	if h+1 <= d.bottom.Load() {
		arr := d.tasks.Load()
		v, _ := arr.Get(int(h) % arr.Size())
		return v, true
	}
	d.top.Store(h)
	return task.Empty, false
}
