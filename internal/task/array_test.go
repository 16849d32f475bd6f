package task

import "testing"

func TestNewArrayFillsBottom(t *testing.T) {
	a, err := NewArray(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		v, err := a.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if v != Bottom {
			t.Fatalf("Get(%d) = %d, want BOTTOM", i, v)
		}
	}
}

func TestNewArrayRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewArray(0); err != ErrBadSize {
		t.Fatalf("NewArray(0) error = %v, want ErrBadSize", err)
	}
	if _, err := NewArray(-1); err != ErrBadSize {
		t.Fatalf("NewArray(-1) error = %v, want ErrBadSize", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	a, _ := NewArray(4)
	if err := a.Set(2, 42); err != nil {
		t.Fatal(err)
	}
	v, err := a.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("Get(2) = %d, want 42", v)
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	a, _ := NewArray(4)
	if _, err := a.Get(4); err != ErrBadIndex {
		t.Fatalf("Get(4) error = %v, want ErrBadIndex", err)
	}
	if err := a.Set(-1, 0); err != ErrBadIndex {
		t.Fatalf("Set(-1, 0) error = %v, want ErrBadIndex", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a, _ := NewArray(2)
	a.Set(0, 7)
	b := a.Copy()
	a.Set(0, 99)
	v, _ := b.Get(0)
	if v != 7 {
		t.Fatalf("Copy() shares storage with the original: Get(0) = %d, want 7", v)
	}
}

func TestMoveTransfersOwnership(t *testing.T) {
	a, _ := NewArray(2)
	a.Set(0, 5)
	moved := a.Move()
	v, err := moved.Get(0)
	if err != nil || v != 5 {
		t.Fatalf("moved.Get(0) = (%d, %v), want (5, nil)", v, err)
	}
	if a.Size() != 0 {
		t.Fatalf("donor Size() = %d after Move, want 0", a.Size())
	}
}
