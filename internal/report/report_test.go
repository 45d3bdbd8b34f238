package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/waterline"
	"github.com/dropcutter/camkernel/internal/weave"
)

func TestNewRunIDIsEightCharsAndUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.Len(t, a, 8)
	assert.Len(t, b, 8)
	assert.NotEqual(t, a, b)
}

type fakeOp struct{ n int64 }

func (f fakeOp) AnomalyCount() int64 { return f.n }

func TestSummarize(t *testing.T) {
	s := Summarize(fakeOp{n: 3})
	assert.Len(t, s.RunID, 8)
	assert.Equal(t, int64(3), s.Anomalies)
}

func TestRenderWaterlinePDFRejectsEmptyResults(t *testing.T) {
	err := RenderWaterlinePDF(filepath.Join(t.TempDir(), "out.pdf"), nil)
	require.Error(t, err)
}

func TestRenderWaterlinePDFWritesFile(t *testing.T) {
	loop := weave.Loop{Points: []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	results := []waterline.Result{{Z: 1, Loops: []weave.Loop{loop}}}
	err := RenderWaterlinePDF(filepath.Join(t.TempDir(), "out.pdf"), results)
	require.NoError(t, err)
}
