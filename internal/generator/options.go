package generator

import (
	"github.com/BradMears/peg-game/internal/board"
)

// Options configures which starting boards are produced.
type Options struct {
	Starts   []board.Cell // Explicit empty holes; overrides AllHoles when set
	AllHoles bool         // Every hole instead of one per symmetry class
}

// DefaultOptions returns options producing the canonical starts.
func DefaultOptions() *Options {
	return &Options{
		Starts:   nil, // nil → board.CanonicalStarts
		AllHoles: false,
	}
}
