package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	require.True(t, Name("_foo"))
	require.True(t, Name("Foo_Bar9"))
	require.False(t, Name(""))
	require.False(t, Name("9foo"))
	require.False(t, Name("foo-bar"))
	require.False(t, Name("a0123456789012345678901234567890")) // 32 chars
}

func TestCMYK(t *testing.T) {
	require.True(t, CMYK("%00FF80AA"))
	require.False(t, CMYK("00FF80AA"))
	require.False(t, CMYK("%00FF80A"))
	require.False(t, CMYK("%00FF80AZ"))
}

func TestContentString(t *testing.T) {
	require.NoError(t, ContentString("hello world"))
	require.Error(t, ContentString(""))
	require.Error(t, ContentString("\x01"))
	require.Error(t, ContentString("line\nbreak"))
}

func TestBuiltInFont(t *testing.T) {
	require.True(t, BuiltInFont("Helvetica"))
	require.True(t, BuiltInFont("ZapfDingbats"))
	require.False(t, BuiltInFont("Arial"))
	require.Equal(t, 14, len(BuiltInFonts))
}
