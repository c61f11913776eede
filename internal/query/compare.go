package query

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// MismatchError reports the first range query on which two containers
// disagree.
type MismatchError struct {
	Query     int
	Low, High int64
	Got, Want int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("query %d: q %d %d: got %d, want %d", e.Query, e.Low, e.High, e.Got, e.Want)
}

// mirror feeds every operation to both containers and records the first
// disagreement.
type mirror struct {
	got, want Container
	query     int
	mismatch  *MismatchError
}

func (m *mirror) Insert(key int64) {
	m.got.Insert(key)
	m.want.Insert(key)
}

func (m *mirror) CountRange(low, high int64) int {
	m.query++
	g, w := m.got.CountRange(low, high), m.want.CountRange(low, high)
	if g != w && m.mismatch == nil {
		m.mismatch = &MismatchError{Query: m.query, Low: low, High: high, Got: g, Want: w}
	}
	return g
}

// Compare runs the workload against got and want side by side and returns
// a *MismatchError for the first range query they answer differently.
// The Query field counts range queries only.
func Compare(ctx context.Context, in io.Reader, got, want Container, log *zap.Logger) (Stats, error) {
	m := &mirror{got: got, want: want}
	r := &Runner{Container: m, Quiet: true, Log: log}
	stats, err := r.Run(ctx, in)
	if err != nil {
		return stats, err
	}
	if m.mismatch != nil {
		return stats, m.mismatch
	}
	return stats, nil
}
