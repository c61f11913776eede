// Command avlgen prints a random workload for avlquery.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"avl/internal/query"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("avlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var w query.Workload
	fs.IntVar(&w.Queries, "n", 1000, "number of queries")
	fs.Int64Var(&w.MinKey, "min", 1, "smallest key")
	fs.Int64Var(&w.MaxKey, "max", 1000000, "largest key")
	fs.Float64Var(&w.InsertProb, "p", 0.5, "probability that a query is an insertion")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if err := w.Validate(); err != nil {
		fmt.Fprintln(stderr, "avlgen:", err)
		return 2
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(*seed))
	if _, err := io.WriteString(stdout, query.Generate(rng, w)); err != nil {
		fmt.Fprintln(stderr, "avlgen:", err)
		return 1
	}
	return 0
}
