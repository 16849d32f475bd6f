package experiment

import "sync/atomic"

// Report accumulates one run's operation counts and wall-clock time. Takes,
// Puts, and Steals are updated concurrently by every worker goroutine, so
// they're atomic counters rather than plain ints.
type Report struct {
	Takes  atomic.Int32
	Puts   atomic.Int32
	Steals atomic.Int32

	ExecutionTime int64
	Processors    []int
}

// NewReport allocates a Report with a per-worker processors histogram of
// size numThreads.
func NewReport(numThreads int) *Report {
	return &Report{Processors: make([]int, numThreads)}
}

func (r *Report) incTakes()  { r.Takes.Add(1) }
func (r *Report) incPuts()   { r.Puts.Add(1) }
func (r *Report) incSteals() { r.Steals.Add(1) }

// ToResult snapshots the report into a Result for the given params.
func (r *Report) ToResult(p Params) Result {
	return Result{
		NumThreads:    p.NumThreads,
		ExecutionTime: r.ExecutionTime,
		Takes:         r.Takes.Load(),
		Puts:          r.Puts.Load(),
		Steals:        r.Steals.Load(),
		GraphType:     p.GraphType.String(),
		Algorithm:     p.AlgType.String(),
	}
}
