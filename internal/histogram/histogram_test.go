package histogram_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/BradMears/peg-game/internal/histogram"
)

func TestHistogram_Empty(t *testing.T) {
	var h histogram.Histogram
	assert.Zero(t, h.Total())
	assert.Equal(t, -1, h.Min())
	assert.Equal(t, -1, h.Max())
	assert.Len(t, h.Entries(), histogram.Buckets)
}

func TestHistogram_Record(t *testing.T) {
	var h histogram.Histogram
	require.NoError(t, h.Record(1))
	require.NoError(t, h.Record(1))
	require.NoError(t, h.Record(5))
	require.NoError(t, h.Record(13))

	assert.Equal(t, uint64(2), h.Count(1))
	assert.Equal(t, uint64(1), h.Count(5))
	assert.Equal(t, uint64(0), h.Count(2))
	assert.Equal(t, uint64(4), h.Total())
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 13, h.Max())
}

func TestHistogram_RecordOutOfRange(t *testing.T) {
	var h histogram.Histogram
	assert.ErrorIs(t, h.Record(-1), histogram.ErrOutOfRange)
	assert.ErrorIs(t, h.Record(14), histogram.ErrOutOfRange)
	assert.Zero(t, h.Total())
	assert.Zero(t, h.Count(14))
}

func TestHistogram_Merge(t *testing.T) {
	var a, b histogram.Histogram
	require.NoError(t, a.Record(1))
	require.NoError(t, b.Record(1))
	require.NoError(t, b.Record(3))

	a.Merge(&b)
	assert.Equal(t, uint64(2), a.Count(1))
	assert.Equal(t, uint64(1), a.Count(3))
	assert.Equal(t, uint64(2), b.Total(), "merge must not modify its argument")
}

func TestHistogram_Entries(t *testing.T) {
	var h histogram.Histogram
	require.NoError(t, h.Record(2))
	entries := h.Entries()
	for k, e := range entries {
		assert.Equal(t, k, e.Remaining)
	}
	assert.Equal(t, uint64(1), entries[2].Games)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]histogram.Format{
		"text": histogram.FormatText,
		"JSON": histogram.FormatJSON,
		" yaml": histogram.FormatYAML,
	} {
		got, err := histogram.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := histogram.ParseFormat("xml")
	assert.ErrorIs(t, err, histogram.ErrUnknownFormat)
}

func sampleReport(t *testing.T) *histogram.Report {
	t.Helper()
	var a, b histogram.Histogram
	require.NoError(t, a.Record(1))
	require.NoError(t, a.Record(2))
	require.NoError(t, b.Record(1))

	r := histogram.NewReport("run-1")
	r.Add(0, &a)
	r.Add(4, &b)
	return r
}

func TestReport_Add(t *testing.T) {
	r := sampleReport(t)
	require.Len(t, r.Starts, 2)
	assert.Equal(t, uint64(2), r.Starts[0].Games)
	assert.Equal(t, uint64(3), r.Games)
	assert.Equal(t, uint64(2), r.Merged().Count(1))
}

func TestReport_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).Write(&buf, histogram.FormatText))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, histogram.Buckets)
	assert.Equal(t, "0\t0", lines[0])
	assert.Equal(t, "1\t2", lines[1])
	assert.Equal(t, "2\t1", lines[2])
	assert.Equal(t, "13\t0", lines[13])
}

func TestReport_WriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, histogram.NewReport("").Write(&buf, histogram.FormatText))
	assert.Equal(t, histogram.Buckets, strings.Count(buf.String(), "\n"))
}

func TestReport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).Write(&buf, histogram.FormatJSON))

	var got struct {
		RunID  string `json:"run_id"`
		Games  uint64 `json:"games"`
		Starts []struct {
			Start int `json:"start"`
		} `json:"starts"`
		Total []histogram.Entry `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, uint64(3), got.Games)
	require.Len(t, got.Starts, 2)
	assert.Equal(t, 4, got.Starts[1].Start)
	assert.Len(t, got.Total, histogram.Buckets)
}

func TestReport_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).Write(&buf, histogram.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, 3, got["games"])
}

func TestReport_WriteUnknownFormat(t *testing.T) {
	err := sampleReport(t).Write(&bytes.Buffer{}, histogram.Format("csv"))
	assert.ErrorIs(t, err, histogram.ErrUnknownFormat)
}
