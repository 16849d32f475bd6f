// Command wsbench runs the work-stealing spanning-tree benchmark against a
// torus graph, either for one algorithm/thread-count pair or as a full
// sweep across every algorithm and 1..threads worker counts, and writes the
// results as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/experiment"
	"github.com/miguelpinia/work-stealing/internal/graph"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "wsbench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("wsbench", pflag.ContinueOnError)
	graphType := flags.String("graph", "TORUS_2D", "graph topology: TORUS_2D, TORUS_2D_60, TORUS_3D, TORUS_3D_40")
	shape := flags.Int("shape", 8, "per-dimension graph shape (side length)")
	algorithm := flags.String("algorithm", "", "deque algorithm (omit for --sweep over all seven)")
	threads := flags.Int("threads", 4, "worker thread count, or sweep ceiling when --sweep is set")
	special := flags.Bool("special", false, "use the labelled (per-worker-head) driver path")
	sweep := flags.Bool("sweep", false, "run every algorithm across 1..threads worker counts")
	directed := flags.Bool("directed", false, "build the directed variant of the chosen graph topology")
	out := flags.String("out", "", "output file path (default: stdout)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	gt, err := parseGraphType(*graphType)
	if err != nil {
		return err
	}

	var results []experiment.Result
	if *sweep {
		results, err = experiment.Sweep(gt, *shape, *threads)
		if err != nil {
			return err
		}
	} else {
		if *algorithm == "" {
			return fmt.Errorf("--algorithm is required unless --sweep is set")
		}
		alg, err := deque.ParseAlgorithm(*algorithm)
		if err != nil {
			return err
		}
		params := experiment.Params{
			GraphType:        gt,
			Shape:            *shape,
			NumThreads:       *threads,
			AlgType:          alg,
			StructSize:       experiment.CalculateStructSize(gt, *shape),
			NumIterExps:      1,
			StepSpanningType: experiment.Counter,
			SpecialExecution: *special,
			Directed:         *directed,
		}
		result, err := experiment.Run(params)
		if err != nil {
			return err
		}
		results = []experiment.Result{result}
	}

	payload := map[string]any{"values": results}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(*out, data, 0o644)
}

func parseGraphType(s string) (graph.Type, error) {
	switch s {
	case "TORUS_2D":
		return graph.Torus2D, nil
	case "TORUS_2D_60":
		return graph.Torus2D60, nil
	case "TORUS_3D":
		return graph.Torus3D, nil
	case "TORUS_3D_40":
		return graph.Torus3D40, nil
	default:
		return 0, fmt.Errorf("unknown graph type %q", s)
	}
}
