package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Stats summarizes a finished run.
type Stats struct {
	Inserts int
	Queries int
	Elapsed time.Duration
}

// Runner reads a workload and answers its range queries.
type Runner struct {
	Container Container
	// Out receives one "<count> " per range query unless Quiet is set.
	Out   io.Writer
	Quiet bool
	Log   *zap.Logger

	// Answers, when non-nil, is called with every computed count.
	Answers func(query int, count int)
}

// Run processes the workload read from r until it ends. A malformed query
// stops the run with an error; answers written before it are kept.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Stats, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	w := r.Out
	if r.Quiet || w == nil {
		w = io.Discard
	}
	out := bufio.NewWriter(w)

	s := &scanner{Scanner: bufio.NewScanner(in)}
	s.Split(bufio.ScanWords)

	var stats Stats
	start := time.Now()
	err := r.runHelper(ctx, s, out, &stats)
	stats.Elapsed = time.Since(start)

	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Debug("workload stopped", zap.Int("query", s.query), zap.Error(err))
		return stats, err
	}
	log.Debug("workload done",
		zap.Int("inserts", stats.Inserts),
		zap.Int("queries", stats.Queries),
		zap.Duration("elapsed", stats.Elapsed))
	return stats, nil
}

// runHelper is a helper function of Run.
func (r *Runner) runHelper(ctx context.Context, s *scanner, out *bufio.Writer, stats *Stats) error {
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.query++

		switch kind := s.Text(); kind {
		case "k":
			key, err := s.number()
			if err != nil {
				return err
			}
			r.Container.Insert(key)
			stats.Inserts++
		case "q":
			low, err := s.number()
			if err != nil {
				return err
			}
			high, err := s.number()
			if err != nil {
				return err
			}
			n := r.Container.CountRange(low, high)
			stats.Queries++
			if r.Answers != nil {
				r.Answers(s.query, n)
			}
			if _, err := fmt.Fprintf(out, "%d ", n); err != nil {
				return err
			}
		default:
			return &ParseError{Query: s.query, Token: kind, Err: ErrUnknownQuery}
		}
	}
	return s.Err()
}

// scanner yields tokens and remembers which query they belong to.
type scanner struct {
	*bufio.Scanner
	query int
}

// number reads the next token as a decimal integer.
func (s *scanner) number() (int64, error) {
	if !s.Scan() {
		err := s.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, &ParseError{Query: s.query, Err: err}
	}
	v, err := strconv.ParseInt(s.Text(), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Query: s.query, Token: s.Text(), Err: err}
	}
	return v, nil
}
