package query

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Workload parameterizes Generate.
type Workload struct {
	Queries    int
	MinKey     int64
	MaxKey     int64
	InsertProb float64 // probability that a query is an insertion
}

// Validate reports a workload that Generate cannot produce.
func (w Workload) Validate() error {
	switch {
	case w.Queries < 0:
		return fmt.Errorf("negative query count %d", w.Queries)
	case w.MinKey > w.MaxKey:
		return fmt.Errorf("empty key range [%d, %d]", w.MinKey, w.MaxKey)
	case w.MinKey <= 0 && w.MaxKey >= math.MaxInt64+w.MinKey:
		return fmt.Errorf("key range [%d, %d] too wide", w.MinKey, w.MaxKey)
	case w.InsertProb < 0 || w.InsertProb > 1:
		return fmt.Errorf("insert probability %v outside [0, 1]", w.InsertProb)
	}
	return nil
}

// Generate returns a random workload, one query per line. Range queries
// always have low <= high, both drawn from the key range.
func Generate(rng *rand.Rand, w Workload) string {
	var sb strings.Builder
	for i := 0; i < w.Queries; i++ {
		if rng.Float64() < w.InsertProb {
			fmt.Fprintf(&sb, "k %d\n", randKey(rng, w.MinKey, w.MaxKey))
			continue
		}
		low := randKey(rng, w.MinKey, w.MaxKey)
		high := randKey(rng, low, w.MaxKey)
		fmt.Fprintf(&sb, "q %d %d\n", low, high)
	}
	return sb.String()
}

// randKey returns a uniform key in [lo, hi].
func randKey(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int63n(hi-lo+1)
}
