package builder

import (
	"testing"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/value"
	"github.com/stretchr/testify/require"
)

func mustFixed(t *testing.T, s string) fixed.Value {
	t.Helper()
	v, err := fixed.Parse(s)
	require.NoError(t, err)
	return v
}

func TestReamScenarioS3(t *testing.T) {
	p := NewPartialReam()
	require.NoError(t, p.SetDim(mustFixed(t, "595.27559"), mustFixed(t, "841.88976")))
	m := value.Margins{
		Left: mustFixed(t, "36"), Right: mustFixed(t, "36"),
		Top: mustFixed(t, "36"), Bottom: mustFixed(t, "36"),
	}
	require.NoError(t, p.SetBound(BoxArt, m))
	require.NoError(t, p.SetRotation(0))

	ream, err := FinishReam(p, false)
	require.NoError(t, err)
	require.NotNil(t, ream)

	// Widen the left margin so left+right >= width.
	p2 := NewPartialReam()
	require.NoError(t, p2.SetDim(mustFixed(t, "595.27559"), mustFixed(t, "841.88976")))
	m2 := value.Margins{
		Left: mustFixed(t, "595"), Right: mustFixed(t, "36"),
		Top: mustFixed(t, "36"), Bottom: mustFixed(t, "36"),
	}
	require.NoError(t, p2.SetBound(BoxArt, m2))
	_, err = FinishReam(p2, false)
	require.Error(t, err)
	require.IsType(t, &DomainError{}, err)
}

func TestReamBothArtAndTrimDialectDependent(t *testing.T) {
	dim := func() *PartialReam {
		p := NewPartialReam()
		_ = p.SetDim(mustFixed(t, "600"), mustFixed(t, "800"))
		m := value.Margins{Left: mustFixed(t, "10"), Right: mustFixed(t, "10"), Top: mustFixed(t, "10"), Bottom: mustFixed(t, "10")}
		_ = p.SetBound(BoxArt, m)
		_ = p.SetBound(BoxTrim, m)
		return p
	}

	_, err := FinishReam(dim(), true)
	require.NoError(t, err)

	_, err = FinishReam(dim(), false)
	require.Error(t, err)
}
