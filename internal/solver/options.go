package solver

import (
	"log/slog"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/verify"
)

// Options configures the search.
type Options struct {
	Topology *board.Topology // Jump table; nil means board.StandardTopology
	Failer   verify.Failer   // Receives invariant violations; nil means verify.Panic
	Logger   *slog.Logger    // nil means slog.Default

	// OnGame, if set, is called with every finished game before it is
	// validated. The slice belongs to the search branch and must not be kept.
	OnGame func(moves []board.Move, remaining int)
}

// DefaultOptions returns options for the standard board that panic on the
// first violation.
func DefaultOptions() *Options {
	return &Options{
		Topology: board.StandardTopology(),
		Failer:   verify.Panic{},
		Logger:   slog.Default(),
	}
}

func (o *Options) withDefaults() *Options {
	out := *o
	if out.Topology == nil {
		out.Topology = board.StandardTopology()
	}
	if out.Failer == nil {
		out.Failer = verify.Panic{}
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}
