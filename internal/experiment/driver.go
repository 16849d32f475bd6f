package experiment

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/miguelpinia/work-stealing/internal/affinity"
	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/graph"
	"github.com/miguelpinia/work-stealing/internal/logging"
)

var driverLog = logging.Default().Module("experiment")

// pickRandomThread chooses a random thread index other than self with a
// single draw: a draw that lands on self is moved to the next thread mod
// numThreads. That next thread is therefore twice as likely as each other
// thread when numThreads > 2; the choice is uniform only for numThreads == 2.
func pickRandomThread(rng *rand.Rand, numThreads, self int) int {
	v := rng.Intn(numThreads)
	if v == self {
		return (v + 1) % numThreads
	}
	return v
}

// spanningState is the shared mutable state every worker goroutine reads
// and writes during the traversal: which label colored a vertex, who its
// parent is, whether it has ever been enqueued, and a global count of
// distinct vertices enqueued so far that every worker polls to decide when
// the whole graph has been covered.
type spanningState struct {
	colors  []atomic.Int32
	parents []atomic.Int32
	visited []atomic.Int32
	counter atomic.Int32
}

func newSpanningState(numVertices int) *spanningState {
	s := &spanningState{
		colors:  make([]atomic.Int32, numVertices),
		parents: make([]atomic.Int32, numVertices),
		visited: make([]atomic.Int32, numVertices),
	}
	for i := range s.parents {
		s.parents[i].Store(-1)
	}
	return s
}

func (s *spanningState) markVisited(v int) {
	if s.visited[v].Swap(1) == 0 {
		s.counter.Add(1)
	}
}

// SpanningTree runs the parallel spanning-tree construction: one
// goroutine per params.NumThreads worker, each owning its own deque
// instance (all sharing one algorithm family, all sized params.StructSize),
// started from roots[i] and barrier-synchronized so none begins taking
// before every deque exists. Workers race to color every vertex exactly
// once via colors/visited/counter; steals let an idle worker pull work from
// a busier one instead of terminating early.
func SpanningTree(g *graph.Graph, roots []int, params Params) (*graph.Graph, *Report, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if len(roots) != params.NumThreads {
		return nil, nil, fmt.Errorf("experiment: need %d roots, got %d", params.NumThreads, len(roots))
	}

	algs := make([]*deque.AnyDeque, params.NumThreads)
	for i := range algs {
		d, err := deque.New(params.AlgType, params.StructSize, params.NumThreads)
		if err != nil {
			return nil, nil, err
		}
		algs[i] = d
	}

	state := newSpanningState(g.NumVertices())
	report := NewReport(params.NumThreads)
	bar := newBarrier(params.NumThreads + 1)
	special := params.SpecialExecution && IsSpecial(params.AlgType)

	driverLog.Info("starting spanning tree run", "algorithm", params.AlgType, "threads", params.NumThreads)

	var wg sync.WaitGroup
	wg.Add(params.NumThreads)
	for i := 0; i < params.NumThreads; i++ {
		go func(id int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			if err := affinity.Pin(id); err != nil {
				driverLog.Warn("affinity pin failed, running unpinned", "worker", id, "err", err)
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			bar.wait()
			label := id + 1
			if special {
				specialExecution(roots[id], label, g, state, algs, report, params.NumThreads, rng)
			} else {
				generalExecution(roots[id], label, g, state, algs[id], algs, report, params.NumThreads, rng)
			}
		}(i)
	}
	// This goroutine joins the barrier as well, so the clock starts when the
	// workers are released, after every one has been launched and pinned.
	bar.wait()
	start := time.Now()
	wg.Wait()
	report.ExecutionTime = time.Since(start).Nanoseconds()

	for i := 0; i < g.NumVertices(); i++ {
		if c := state.colors[i].Load(); c != 0 {
			report.Processors[c-1]++
		}
	}

	state.parents[roots[0]].Store(-1)
	for i := 1; i < params.NumThreads; i++ {
		state.parents[roots[i]].Store(int32(roots[i-1]))
	}
	parents := make([]int32, len(state.parents))
	for i := range parents {
		parents[i] = state.parents[i].Load()
	}
	tree := graph.BuildFromParents(parents, roots[0], g.Directed())
	return tree, report, nil
}

// generalExecution is the unlabelled driver path: the owner deque's own
// Put/Take/Steal contract, one shared head per worker.
func generalExecution(root, label int, g *graph.Graph, state *spanningState, own *deque.AnyDeque, algs []*deque.AnyDeque, report *Report, numThreads int, rng *rand.Rand) {
	alg, err := own.Unlabelled()
	if err != nil {
		driverLog.Error("general execution requires an unlabelled deque", "err", err)
		return
	}
	state.colors[root].Store(int32(label))
	alg.Put(int32(root))
	state.markVisited(root)
	report.incPuts()

	for state.counter.Load() < int32(len(state.colors)) {
		for !alg.IsEmpty() {
			v, ok := alg.Take()
			report.incTakes()
			if !ok || v < 0 {
				continue
			}
			for _, w := range g.Neighbours(int(v)) {
				if state.colors[w].Load() == 0 {
					state.colors[w].Store(int32(label))
					state.parents[w].Store(v)
					alg.Put(int32(w))
					state.markVisited(w)
					report.incPuts()
				}
			}
		}
		if numThreads > 1 {
			thread := pickRandomThread(rng, numThreads, label-1)
			other, err := algs[thread].Unlabelled()
			if err != nil {
				continue
			}
			stolen, ok := other.Steal()
			report.incSteals()
			if ok && stolen >= 0 {
				alg.Put(stolen)
				report.incPuts()
			}
		}
	}
}

// specialExecution is the labelled driver path used by the multiplicity
// deque variants: every worker addresses its own private head (label-1)
// into every other worker's deque instance, rather than only ever touching
// its own.
func specialExecution(root, label int, g *graph.Graph, state *spanningState, algs []*deque.AnyDeque, report *Report, numThreads int, rng *rand.Rand) {
	own, err := algs[label-1].Labelled()
	if err != nil {
		driverLog.Error("special execution requires a labelled deque", "err", err)
		return
	}
	ownLabel := label - 1
	state.colors[root].Store(int32(label))
	own.PutLabel(int32(root), ownLabel)
	state.markVisited(root)
	report.incPuts()

	for state.counter.Load() < int32(len(state.colors)) {
		for !own.IsEmptyLabel(ownLabel) {
			v, ok := own.TakeLabel(ownLabel)
			report.incTakes()
			if !ok || v < 0 {
				continue
			}
			for _, w := range g.Neighbours(int(v)) {
				if state.colors[w].Load() == 0 {
					state.colors[w].Store(int32(label))
					state.parents[w].Store(v)
					own.PutLabel(int32(w), ownLabel)
					state.markVisited(w)
					report.incPuts()
				}
			}
		}
		if numThreads > 1 {
			thread := pickRandomThread(rng, numThreads, ownLabel)
			other, err := algs[thread].Labelled()
			if err != nil {
				continue
			}
			stolen, ok := other.StealLabel(ownLabel)
			report.incSteals()
			if ok && stolen >= 0 {
				own.PutLabel(stolen, ownLabel)
				report.incPuts()
			}
		}
	}
}
