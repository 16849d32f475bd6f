package deque

import (
	"sync"
	"testing"
)

func TestIdempotentFIFOOrder(t *testing.T) {
	d, err := NewIdempotentFIFO(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 3; i++ {
		d.Put(i)
	}
	for i := int32(0); i < 3; i++ {
		v, ok := d.Take()
		if !ok || v != i {
			t.Fatalf("Take() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}

func TestIdempotentFIFOStealTakesFromHead(t *testing.T) {
	d, err := NewIdempotentFIFO(4)
	if err != nil {
		t.Fatal(err)
	}
	d.Put(10)
	d.Put(20)
	v, ok := d.Steal()
	if !ok || v != 10 {
		t.Fatalf("Steal() = (%d, %v), want (10, true)", v, ok)
	}
}

func TestIdempotentFIFOGrows(t *testing.T) {
	d, err := NewIdempotentFIFO(2)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 10; i++ {
		d.Put(i)
	}
	count := 0
	for {
		if _, ok := d.Take(); !ok {
			break
		}
		count++
	}
	if count != 10 {
		t.Fatalf("drained %d tasks, want 10", count)
	}
}

func TestIdempotentLIFOOrder(t *testing.T) {
	d, err := NewIdempotentLIFO(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 3; i++ {
		d.Put(i)
	}
	for i := int32(2); i >= 0; i-- {
		v, ok := d.Take()
		if !ok || v != i {
			t.Fatalf("Take() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}

func TestIdempotentLIFOStealWitnessesMostRecent(t *testing.T) {
	d, err := NewIdempotentLIFO(4)
	if err != nil {
		t.Fatal(err)
	}
	d.Put(10)
	d.Put(20)
	v, ok := d.Steal()
	if !ok || v != 20 {
		t.Fatalf("Steal() = (%d, %v), want (20, true)", v, ok)
	}
}

func TestIdempotentLIFOGrows(t *testing.T) {
	d, err := NewIdempotentLIFO(2)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 40; i++ {
		d.Put(i)
	}
	if d.Capacity() < 40 {
		t.Fatalf("Capacity() = %d, want >= 40", d.Capacity())
	}
	count := 0
	for {
		if _, ok := d.Take(); !ok {
			break
		}
		count++
	}
	if count != 40 {
		t.Fatalf("drained %d tasks, want 40", count)
	}
}

func TestIdempotentDequePutTailTakeTail(t *testing.T) {
	d, err := NewIdempotentDeque(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 3; i++ {
		d.Put(i)
	}
	v, ok := d.Take()
	if !ok || v != 2 {
		t.Fatalf("Take() = (%d, %v), want (2, true)", v, ok)
	}
}

func TestIdempotentDequeStealFromHead(t *testing.T) {
	d, err := NewIdempotentDeque(4)
	if err != nil {
		t.Fatal(err)
	}
	d.Put(10)
	d.Put(20)
	d.Put(30)
	v, ok := d.Steal()
	if !ok || v != 10 {
		t.Fatalf("Steal() = (%d, %v), want (10, true)", v, ok)
	}
	v, ok = d.Take()
	if !ok || v != 30 {
		t.Fatalf("Take() after Steal() = (%d, %v), want (30, true)", v, ok)
	}
}

func TestIdempotentDequeGrows(t *testing.T) {
	d, err := NewIdempotentDeque(2)
	if err != nil {
		t.Fatal(err)
	}
	for i := int32(0); i < 50; i++ {
		d.Put(i)
	}
	count := 0
	for {
		if _, ok := d.Steal(); !ok {
			break
		}
		count++
	}
	if count != 50 {
		t.Fatalf("drained %d tasks via Steal, want 50", count)
	}
}

// TestIdempotentFIFOConcurrentThievesMissNothing checks the idempotent
// contract's floor: duplicates under a race are tolerated, but no pushed
// task may be absent from the union of what the thieves returned.
func TestIdempotentFIFOConcurrentThievesMissNothing(t *testing.T) {
	d, err := NewIdempotentFIFO(64)
	if err != nil {
		t.Fatal(err)
	}
	const n = 2000
	for i := int32(0); i < n; i++ {
		d.Put(i)
	}

	seen := make([]int32, n)
	var mu sync.Mutex
	var wg sync.WaitGroup
	const thieves = 4
	wg.Add(thieves)
	for i := 0; i < thieves; i++ {
		go func() {
			defer wg.Done()
			for {
				v, ok := d.Steal()
				if !ok {
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for i, c := range seen {
		if c == 0 {
			t.Fatalf("task %d never delivered", i)
		}
	}
}
