// Package deque implements the seven work-stealing task deque variants
// described by the Chase-Lev, Cilk-THE, idempotent, and WSNCMult families,
// behind a common polymorphic contract.
package deque

import (
	"errors"
	"fmt"

	"github.com/miguelpinia/work-stealing/internal/task"
)

// Re-exported task sentinels, so callers never need to import internal/task
// directly just to compare against EMPTY.
const (
	Empty  = task.Empty
	Bottom = task.Bottom
	Top    = task.Top
)

// ErrUnsupportedOperation is the contract-violation error reported when a
// caller reaches for the wrong overload of an AnyDeque: an unlabelled
// operation against a labelled-only variant, or vice versa.
var ErrUnsupportedOperation = errors.New("deque: operation not supported by this variant")

// Deque is the contract for the unlabelled variants: ChaseLev, CilkTHE,
// IdempotentFIFO, IdempotentLIFO, IdempotentDeque. put/take are owner-only;
// steal is thief-only.
type Deque interface {
	// IsEmpty reports, possibly lagging a concurrent mutation, whether a
	// take on the owning goroutine would currently return EMPTY.
	IsEmpty() bool
	// Put enqueues task, growing the backing array if necessary. Never
	// drops a task; always returns true.
	Put(t int32) bool
	// Take is owner-only. Returns (task, true), or (EMPTY, false).
	Take() (int32, bool)
	// Steal is thief-only. Returns (task, true), or (EMPTY, false).
	Steal() (int32, bool)
	// Capacity returns the current backing array size.
	Capacity() int
}

// LabelledDeque is the contract for the labelled variants: WSNCMult and
// BoundedWSNCMult. Each registered thief (including the owner, under its
// own label) maintains a private head index identified by label.
type LabelledDeque interface {
	IsEmptyLabel(label int) bool
	PutLabel(t int32, label int) bool
	TakeLabel(label int) (int32, bool)
	StealLabel(label int) (int32, bool)
	Capacity() int
}

// Algorithm tags the seven published variants.
type Algorithm int

const (
	ChaseLevAlgorithm Algorithm = iota
	CilkTHEAlgorithm
	IdempotentFIFOAlgorithm
	IdempotentLIFOAlgorithm
	IdempotentDequeAlgorithm
	WSNCMultAlgorithm
	BoundedWSNCMultAlgorithm
)

func (a Algorithm) String() string {
	switch a {
	case ChaseLevAlgorithm:
		return "CHASELEV"
	case CilkTHEAlgorithm:
		return "CILK"
	case IdempotentFIFOAlgorithm:
		return "IDEMPOTENT_FIFO"
	case IdempotentLIFOAlgorithm:
		return "IDEMPOTENT_LIFO"
	case IdempotentDequeAlgorithm:
		return "IDEMPOTENT_DEQUE"
	case WSNCMultAlgorithm:
		return "WS_NC_MULT"
	case BoundedWSNCMultAlgorithm:
		return "B_WS_NC_MULT"
	default:
		return "UNKNOWN"
	}
}

// Algorithms lists every variant in a stable order, used by the experiment
// sweep and the CLI.
var Algorithms = []Algorithm{
	ChaseLevAlgorithm,
	CilkTHEAlgorithm,
	IdempotentFIFOAlgorithm,
	IdempotentLIFOAlgorithm,
	IdempotentDequeAlgorithm,
	WSNCMultAlgorithm,
	BoundedWSNCMultAlgorithm,
}

// ParseAlgorithm parses the String() form back into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("deque: unknown algorithm %q", s)
}

// IsLabelled reports whether alg requires the labelled overloads.
func (a Algorithm) IsLabelled() bool {
	return a == WSNCMultAlgorithm || a == BoundedWSNCMultAlgorithm
}

// AnyDeque is the factory's return type: a tagged union over Deque and
// LabelledDeque. Exactly one of Unlabelled/Labelled succeeds for a given
// instance, matching which contract its Algorithm implements. Calling the
// wrong overload is a reported error rather than a stub silently returning
// -1, while callers who know their algorithm statically can still assert
// once and use the matching interface directly.
type AnyDeque struct {
	kind       Algorithm
	unlabelled Deque
	labelled   LabelledDeque
}

// Kind reports which algorithm this instance implements.
func (a *AnyDeque) Kind() Algorithm { return a.kind }

// IsLabelled reports whether this instance only supports the labelled
// overloads.
func (a *AnyDeque) IsLabelled() bool { return a.labelled != nil }

// Unlabelled returns the unlabelled contract, or ErrUnsupportedOperation if
// this instance is a labelled-only variant.
func (a *AnyDeque) Unlabelled() (Deque, error) {
	if a.unlabelled == nil {
		return nil, ErrUnsupportedOperation
	}
	return a.unlabelled, nil
}

// Labelled returns the labelled contract, or ErrUnsupportedOperation if this
// instance is an unlabelled-only variant.
func (a *AnyDeque) Labelled() (LabelledDeque, error) {
	if a.labelled == nil {
		return nil, ErrUnsupportedOperation
	}
	return a.labelled, nil
}

// Capacity returns the current backing array size regardless of variant.
func (a *AnyDeque) Capacity() int {
	if a.unlabelled != nil {
		return a.unlabelled.Capacity()
	}
	return a.labelled.Capacity()
}
