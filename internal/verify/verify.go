// Package verify reports broken invariants. A violation means the search
// itself is wrong, so the usual backends stop the process: Panic behaves like
// a debug assertion, Abort logs the failing location and exits. Collect keeps
// going and records every violation for inspection.
package verify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Violation describes one failed check and where it was made.
type Violation struct {
	File    string
	Line    int
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("verify failure at %s:%d: %s", v.File, v.Line, v.Message)
}

// Failer receives violations.
type Failer interface {
	Fail(v *Violation)
}

// That reports a violation to f when cond is false. The violation carries
// the file and line of That's caller. It returns cond.
func That(f Failer, cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	f.Fail(newViolation(2, format, args...))
	return false
}

func newViolation(skip int, format string, args ...any) *Violation {
	v := &Violation{Message: fmt.Sprintf(format, args...), File: "???"}
	if _, file, line, ok := runtime.Caller(skip); ok {
		v.File = filepath.Base(file)
		v.Line = line
	}
	return v
}

// Panic panics with the *Violation.
type Panic struct{}

func (Panic) Fail(v *Violation) {
	panic(v)
}

// Abort logs the violation and terminates the process.
type Abort struct {
	Logger *slog.Logger
	// Exit defaults to os.Exit.
	Exit func(code int)
}

func (a Abort) Fail(v *Violation) {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("invariant violated",
		"file", v.File,
		"line", v.Line,
		"error", v.Message,
	)
	exit := a.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
}

// Collect records violations instead of stopping.
type Collect struct {
	mu         sync.Mutex
	violations []*Violation
}

func (c *Collect) Fail(v *Violation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.violations = append(c.violations, v)
}

// Violations returns the recorded violations in order.
func (c *Collect) Violations() []*Violation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Violation(nil), c.violations...)
}

// Failed reports whether anything was recorded.
func (c *Collect) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.violations) > 0
}

// Reset discards recorded violations.
func (c *Collect) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.violations = nil
}

// New returns Panic when strict is set and an Abort logging to logger
// otherwise.
func New(strict bool, logger *slog.Logger) Failer {
	if strict {
		return Panic{}
	}
	return Abort{Logger: logger}
}
