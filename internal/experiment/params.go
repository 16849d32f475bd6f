// Package experiment implements the parallel spanning-tree driver that
// stress-tests the deque variants against torus graphs, and the parameter
// and report types that configure and summarize a run.
package experiment

import (
	"fmt"

	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/graph"
)

// StepSpanningType selects the spanning-tree step strategy. Only Counter is
// implemented; DoubleCollect is accepted for config-shape compatibility and
// rejected at run time.
type StepSpanningType int

const (
	Counter StepSpanningType = iota
	DoubleCollect
)

func (s StepSpanningType) String() string {
	if s == DoubleCollect {
		return "DOUBLE_COLLECT"
	}
	return "COUNTER"
}

// Params configures one spanning-tree experiment. The JSON field names are
// the wire shape the plotting and comparison tooling already consumes; keep
// them stable.
type Params struct {
	GraphType        graph.Type       `json:"graphType"`
	Shape            int              `json:"shape"`
	Report           bool             `json:"report"`
	NumThreads       int              `json:"numThreads"`
	AlgType          deque.Algorithm  `json:"algType"`
	StructSize       int              `json:"structSize"`
	NumIterExps      int              `json:"numIterExps"`
	StepSpanningType StepSpanningType `json:"stepSpanningType"`
	Directed         bool             `json:"directed"`
	StealTime        bool             `json:"stealTime"`
	AllTime          bool             `json:"allTime"`
	SpecialExecution bool             `json:"specialExecution"`
}

// IsSpecial reports whether algType requires the labelled driver path: the
// two multiplicity variants register one head per worker instead of sharing
// a single owner head.
func IsSpecial(alg deque.Algorithm) bool {
	return alg == deque.WSNCMultAlgorithm || alg == deque.BoundedWSNCMultAlgorithm
}

// CalculateStructSize derives a sensible initial task-array capacity from
// the graph topology: the torus builders always need at least one slot per
// vertex, since a worst-case spanning walk could enqueue every vertex before
// taking any of them back out.
func CalculateStructSize(typ graph.Type, shape int) int {
	switch typ {
	case graph.Torus2D, graph.Torus2D60:
		return shape * shape
	case graph.Torus3D, graph.Torus3D40:
		return shape * shape * shape
	default:
		return shape
	}
}

// Validate checks a Params value for the combinations the driver can
// actually run.
func (p Params) Validate() error {
	if p.NumThreads <= 0 {
		return fmt.Errorf("experiment: numThreads must be positive, got %d", p.NumThreads)
	}
	if p.Shape <= 0 {
		return fmt.Errorf("experiment: shape must be positive, got %d", p.Shape)
	}
	if p.StepSpanningType != Counter {
		return fmt.Errorf("experiment: step spanning type %v not implemented", p.StepSpanningType)
	}
	return nil
}

// Result is one experiment's summary. Same stability rule as Params: the
// JSON field names are consumed downstream.
type Result struct {
	NumThreads    int    `json:"numThreads"`
	ExecutionTime int64  `json:"executionTime"`
	Takes         int32  `json:"takes"`
	Puts          int32  `json:"puts"`
	Steals        int32  `json:"steals"`
	GraphType     string `json:"graphType"`
	Algorithm     string `json:"algorithm"`
}
