package histogram

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BradMears/peg-game/internal/board"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (use text, json or yaml)", ErrUnknownFormat, s)
}

// StartReport is the outcome of the search from one starting hole.
type StartReport struct {
	Start   board.Cell `json:"start" yaml:"start"`
	Games   uint64     `json:"games" yaml:"games"`
	Entries []Entry    `json:"histogram" yaml:"histogram"`
}

// Report collects per-start histograms and their sum.
type Report struct {
	RunID  string        `json:"run_id" yaml:"run_id"`
	Starts []StartReport `json:"starts" yaml:"starts"`
	Games  uint64        `json:"games" yaml:"games"`
	Total  []Entry       `json:"total" yaml:"total"`

	merged Histogram
}

// NewReport returns an empty report for the given run.
func NewReport(runID string) *Report {
	r := &Report{RunID: runID}
	r.Total = r.merged.Entries()
	return r
}

// Add folds the histogram of one start into the report.
func (r *Report) Add(start board.Cell, h *Histogram) {
	r.Starts = append(r.Starts, StartReport{
		Start:   start,
		Games:   h.Total(),
		Entries: h.Entries(),
	})
	r.merged.Merge(h)
	r.Games = r.merged.Total()
	r.Total = r.merged.Entries()
}

// Merged returns the summed histogram.
func (r *Report) Merged() *Histogram {
	h := r.merged
	return &h
}

// Write encodes the report. The text format is one "remaining<TAB>games" line
// per bucket of the summed histogram, in ascending order.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		for _, e := range r.Total {
			if _, err := fmt.Fprintf(w, "%d\t%d\n", e.Remaining, e.Games); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
