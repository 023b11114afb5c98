package value

import (
	"testing"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/stretchr/testify/require"
)

func TestAsFixedPromotion(t *testing.T) {
	f, ok := AsFixed(Integer(100))
	require.True(t, ok)
	want, _ := fixed.FromInt(100)
	require.Equal(t, want, f)

	_, ok = AsFixed(Integer(40000))
	require.False(t, ok)

	_, ok = AsFixed(String("x"))
	require.False(t, ok)
}

func TestKinds(t *testing.T) {
	require.Equal(t, KindNull, Null{}.Kind())
	require.Equal(t, KindDict, Dict{}.Kind())
	require.Equal(t, KindReam, (&Ream{}).Kind())
	require.Equal(t, KindClipping, (&Clipping{}).Kind())
}
