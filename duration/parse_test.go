package duration

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3d", 259_200_000},
		{"2h", 7_200_000},
		{"10m", 600_000},
		{"8s", 8000},
		{"3ms", 3},
		{"-2h", -7_200_000},
		{"100", 100},
		{"1.5h", 5_400_000},
		{".5ms", 0.5},
		{"-.5s", -500},
		{"1   s", 1000},
		{"5 ", 5},
		{"2 HOURS", 7_200_000},
		{"2H", 7_200_000},
		{"1y", 31_557_600_000},
		{"1 Yr", 31_557_600_000},
		{"1w", 604_800_000},
		{"53 milliseconds", 53},
		{"17 msecs", 17},
		{"1 sec", 1000},
		{"007m", 420_000},
		{"0", 0},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	want, err := Parse("2h")
	require.NoError(t, err)

	for _, s := range []string{"2H", "2 HOURS", "2 Hours", "2hOuR", "2 HRS"} {
		got, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Parse(%q)", s)
	}
}

func TestParse_NoMatch(t *testing.T) {
	inputs := []string{
		"banana",
		"",
		"1.",
		"-",
		".",
		"-.",
		" 1s",
		"1s ",
		"1 d a y",
		"1e3",
		"+1",
		"1,000",
		"1.2.3",
		"1 lightyear",
		"1\ts",
		"1s\n",
		"☃",
		"1 mo",
		"--1",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.NoError(t, err)
			assert.True(t, math.IsNaN(got), "Parse(%q) = %v, want NaN", in, got)
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	t.Run("101 digits", func(t *testing.T) {
		_, err := Parse(strings.Repeat("1", 101))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("101 letters", func(t *testing.T) {
		_, err := Parse(strings.Repeat("a", 101))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("valid prefix", func(t *testing.T) {
		_, err := Parse("1s" + strings.Repeat(" ", 99))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("exactly 100", func(t *testing.T) {
		got, err := Parse(strings.Repeat("1", 100))
		require.NoError(t, err)
		assert.False(t, math.IsNaN(got))
	})

	t.Run("counted in UTF-16 units", func(t *testing.T) {
		// 60 runes, 120 bytes: not too long, just unmatched
		got, err := Parse(strings.Repeat("é", 60))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))

		// astral runes take two units each
		_, err = Parse(strings.Repeat("😀", 51))
		assert.ErrorIs(t, err, ErrTooLong)
	})
}

func TestScan(t *testing.T) {
	tests := []struct {
		input string
		num   string
		unit  string
		ok    bool
	}{
		{"10m", "10", "m", true},
		{"-1.5 Days", "-1.5", "Days", true},
		{"42", "42", "", true},
		{".5", ".5", "", true},
		{"1.", "", "", false},
		{"ms", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			num, unit, ok := scan(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.num, num)
			assert.Equal(t, tc.unit, unit)
		})
	}
}
