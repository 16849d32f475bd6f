package deque

import "fmt"

// DefaultCapacity is the initial backing array size handed to a fresh deque
// when the caller does not have a better estimate.
const DefaultCapacity = 32

// New constructs an AnyDeque implementing alg. numThieves is only consulted
// for the labelled variants (WSNCMult, BoundedWSNCMult), where it sizes the
// per-thief head index array; pass the number of goroutines (workers) that
// will ever call StealLabel/TakeLabel against this instance, including the
// owner itself under its own label.
func New(alg Algorithm, capacity, numThieves int) (*AnyDeque, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	switch alg {
	case ChaseLevAlgorithm:
		d, err := NewChaseLev(capacity)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, unlabelled: d}, nil
	case CilkTHEAlgorithm:
		d, err := NewCilkTHE(capacity)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, unlabelled: d}, nil
	case IdempotentFIFOAlgorithm:
		d, err := NewIdempotentFIFO(capacity)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, unlabelled: d}, nil
	case IdempotentLIFOAlgorithm:
		d, err := NewIdempotentLIFO(capacity)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, unlabelled: d}, nil
	case IdempotentDequeAlgorithm:
		d, err := NewIdempotentDeque(capacity)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, unlabelled: d}, nil
	case WSNCMultAlgorithm:
		d, err := NewWSNCMult(capacity, numThieves)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, labelled: d}, nil
	case BoundedWSNCMultAlgorithm:
		d, err := NewBoundedWSNCMult(capacity, numThieves)
		if err != nil {
			return nil, err
		}
		return &AnyDeque{kind: alg, labelled: d}, nil
	default:
		return nil, fmt.Errorf("deque: unknown algorithm %v", alg)
	}
}
