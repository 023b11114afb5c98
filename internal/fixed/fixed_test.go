package fixed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	cases := []struct {
		in  string
		val Value
		out string
	}{
		{"-11.0250", -1102500, "-11.025"},
		{"0", 0, "0"},
		{"+5", 500000, "5"},
		{".5", 50000, "0.5"},
		{"-.5", -50000, "-0.5"},
		{"32767", 3276700000, "32767"},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.val, got, c.in)
		require.Equal(t, c.out, Format(got), c.in)

		// round trip: parse(format(v)) == v
		reparsed, err := Parse(Format(got))
		require.NoError(t, err)
		require.Equal(t, got, reparsed)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	bad := []string{"", ".", "1.123456", "123456", "1a", "-", "1.2.3"}
	for _, s := range bad {
		_, err := Parse(s)
		require.Error(t, err, s)
	}
	// "1." has an empty fractional part, which trims to all zeros and
	// is accepted: its integer part alone satisfies "at least one digit".
	v, err := Parse("1.")
	require.NoError(t, err)
	require.Equal(t, Value(100000), v)
}

func TestPromotion(t *testing.T) {
	_, err := FromInt(32767)
	require.NoError(t, err)
	_, err = FromInt(-32767)
	require.NoError(t, err)
	_, err = FromInt(32768)
	require.Error(t, err)
	_, err = FromInt(-32768)
	require.Error(t, err)
}

func TestMiterAngle(t *testing.T) {
	thirty, err := FromInt(30)
	require.NoError(t, err)
	got, err := MiterAngle(thirty)
	require.NoError(t, err)
	require.Equal(t, Value(386370), got)
}

func TestMiterAngleRange(t *testing.T) {
	lo, _ := FromFloat(0.005)
	_, err := MiterAngle(lo)
	require.Error(t, err)

	hi, _ := FromInt(181)
	_, err = MiterAngle(hi)
	require.Error(t, err)
}
