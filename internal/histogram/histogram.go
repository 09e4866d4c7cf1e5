// Package histogram tallies finished games by the number of pegs left on the
// board.
package histogram

import (
	"errors"
	"fmt"

	"github.com/BradMears/peg-game/internal/board"
)

// Buckets is the number of remaining-peg counts tracked: 0 through
// board.MaxMoves, which is the most pegs a finished game can leave.
const Buckets = board.MaxMoves + 1

var ErrOutOfRange = errors.New("remaining peg count out of range")

// Histogram counts finished games per remaining-peg count. The zero value is
// an empty histogram. It is not safe for concurrent use; searches that run
// apart keep their own and Merge at the end.
type Histogram struct {
	counts [Buckets]uint64
}

// Entry is one line of the report.
type Entry struct {
	Remaining int    `json:"remaining" yaml:"remaining"`
	Games     uint64 `json:"games" yaml:"games"`
}

// Record counts one finished game that left remaining pegs.
func (h *Histogram) Record(remaining int) error {
	if remaining < 0 || remaining >= Buckets {
		return fmt.Errorf("%w: %d must be in range [0, %d)", ErrOutOfRange, remaining, Buckets)
	}
	h.counts[remaining]++
	return nil
}

// Count returns the number of games that left remaining pegs.
func (h *Histogram) Count(remaining int) uint64 {
	if remaining < 0 || remaining >= Buckets {
		return 0
	}
	return h.counts[remaining]
}

// Total returns the number of recorded games.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, n := range h.counts {
		total += n
	}
	return total
}

// Min returns the smallest remaining-peg count with at least one game,
// or -1 for an empty histogram.
func (h *Histogram) Min() int {
	for k, n := range h.counts {
		if n > 0 {
			return k
		}
	}
	return -1
}

// Max returns the largest remaining-peg count with at least one game,
// or -1 for an empty histogram.
func (h *Histogram) Max() int {
	for k := Buckets - 1; k >= 0; k-- {
		if h.counts[k] > 0 {
			return k
		}
	}
	return -1
}

// Merge adds every count of other into h.
func (h *Histogram) Merge(other *Histogram) {
	for k, n := range other.counts {
		h.counts[k] += n
	}
}

// Entries returns every bucket in ascending order, zeros included.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, Buckets)
	for k, n := range h.counts {
		entries[k] = Entry{Remaining: k, Games: n}
	}
	return entries
}
