// Command avlquery answers range-count workloads with the avl package.
//
// Input is a stream of "k <key>" insertions and "q <low> <high>" queries;
// each query prints the number of inserted keys in [low, high] followed by
// a space:
//
//	$ echo 'k 10 k 20 q 8 31 q 6 9 k 30 k 40 q 15 40' | avlquery
//	2 0 3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"avl"
	"avl/dot"
	"avl/internal/query"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns an exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "avlquery:", err)
		return 2
	}

	log := newLogger(cfg.logLevel, stderr)
	defer func() { _ = log.Sync() }()
	avl.SetLogger(log)
	defer avl.SetLogger(nil)

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			log.Error("open input", zap.Error(err))
			return 1
		}
		defer f.Close()
		in = f
	}

	container := query.Engines[cfg.engine]()
	var stats query.Stats
	if cfg.compare {
		stats, err = query.Compare(ctx, in, container, query.NewBTree(), log)
	} else {
		r := &query.Runner{Container: container, Out: stdout, Quiet: cfg.timing, Log: log}
		stats, err = r.Run(ctx, in)
	}
	if err != nil {
		fmt.Fprintln(stderr, "avlquery:", err)
		return 1
	}

	if cfg.timing {
		fmt.Fprintln(stdout, stats.Elapsed.Milliseconds())
	}
	log.Info("done",
		zap.String("engine", cfg.engine),
		zap.String("inserts", humanize.Comma(int64(stats.Inserts))),
		zap.String("queries", humanize.Comma(int64(stats.Queries))),
		zap.Duration("elapsed", stats.Elapsed))

	if cfg.dotFile != "" {
		tree := container.(*query.AVL).Tree
		if err := dot.WriteFile(cfg.dotFile, tree); err != nil {
			log.Error("write dot", zap.Error(err))
			return 1
		}
		log.Info("tree written",
			zap.String("file", cfg.dotFile),
			zap.String("nodes", humanize.Comma(int64(tree.Len()))),
			zap.Int("height", tree.Height()))
	}
	return 0
}
