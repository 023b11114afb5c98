package builder

import (
	"testing"

	"github.com/canidlogic/scent/value"
	"github.com/stretchr/testify/require"
)

func TestMotionLineRequiresOpenMotionS4(t *testing.T) {
	p := NewPartialPath()
	err := p.MotionLine(value.Point{})
	require.Error(t, err)
	var se *StateError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Error(), "requires open motion")
}

func TestPathHappyPath(t *testing.T) {
	p := NewPartialPath()
	one := mustFixed(t, "1")
	require.NoError(t, p.StartMotion(value.Point{X: 0, Y: 0}))
	require.NoError(t, p.MotionLine(value.Point{X: one, Y: one}))
	require.NoError(t, p.FinishMotion())
	p.SetRule(value.RuleNonzero)

	path, err := FinishPath(p)
	require.NoError(t, err)
	require.Len(t, path.Subpaths, 1)
}

func TestPathFinishRejectsOpenSubpath(t *testing.T) {
	p := NewPartialPath()
	require.NoError(t, p.StartMotion(value.Point{}))
	p.SetRule(value.RuleNonzero)
	_, err := FinishPath(p)
	require.Error(t, err)
}

func TestPathRectReachesFinishPath(t *testing.T) {
	p := NewPartialPath()
	one := mustFixed(t, "1")
	require.NoError(t, p.PathRect(value.Rectangle{Corner: value.Point{X: 0, Y: 0}, Width: one, Height: one}))
	p.SetRule(value.RuleNonzero)

	path, err := FinishPath(p)
	require.NoError(t, err)
	require.Len(t, path.Subpaths, 1)
}

func TestPathIncludeReachesFinishPath(t *testing.T) {
	one := mustFixed(t, "1")
	src := &value.Path{
		Subpaths: []value.Subpath{value.Rectangle{Corner: value.Point{X: 0, Y: 0}, Width: one, Height: one}},
		Rule:     value.RuleNonzero,
	}

	p := NewPartialPath()
	require.NoError(t, p.PathInclude(src))
	p.SetRule(value.RuleEvenOdd)

	path, err := FinishPath(p)
	require.NoError(t, err)
	require.Len(t, path.Subpaths, 1)
}

func TestPathRectThenMoreOpsStillReachFinishPath(t *testing.T) {
	one := mustFixed(t, "1")
	p := NewPartialPath()
	require.NoError(t, p.PathRect(value.Rectangle{Corner: value.Point{X: 0, Y: 0}, Width: one, Height: one}))
	require.NoError(t, p.StartMotion(value.Point{X: 0, Y: 0}))
	require.NoError(t, p.MotionLine(value.Point{X: one, Y: one}))
	require.NoError(t, p.FinishMotion())
	p.SetRule(value.RuleNonzero)

	path, err := FinishPath(p)
	require.NoError(t, err)
	require.Len(t, path.Subpaths, 2)
}
