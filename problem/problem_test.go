package problem_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rookflow/problem"
)

// sampleInput is the reference instance the solver was first benchmarked on.
const sampleInput = "400 15 90 142 116 149 228 167 316 246 297 151 386 228 178 19 251 66 323 230 395 288 202 273 277 350 97 139 174 199 316 335 375 357 283 148 291 192 290 105 335 115 110 0 137 34 88 256 156 304 241 78 316 164 162 285 246 287"

func TestParse_Sample(t *testing.T) {
	p, err := problem.ParseString(sampleInput)
	require.NoError(t, err)
	require.Equal(t, 400, p.Side)
	require.Equal(t, 15, p.Declared)
	// The sample announces 15 rectangles but carries 14.
	require.Len(t, p.Rectangles, 14)
	require.True(t, p.CountMismatch())
	require.Equal(t, problem.Rect(90, 142, 116, 149), p.Rectangles[0])
	require.Equal(t, problem.Rect(162, 285, 246, 287), p.Rectangles[13])
	require.NoError(t, p.Validate())
}

func TestParse_SideOnly(t *testing.T) {
	p, err := problem.ParseString("  7 \n")
	require.NoError(t, err)
	require.Equal(t, 7, p.Side)
	require.Empty(t, p.Rectangles)
}

func TestParse_CountIgnored(t *testing.T) {
	p, err := problem.ParseString("3 5 0 0 1 1")
	require.NoError(t, err)
	require.Len(t, p.Rectangles, 1)
	require.True(t, p.CountMismatch())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", problem.ErrEmptyInput},
		{"Blank", " \t\n", problem.ErrEmptyInput},
		{"BadSide", "x 1", problem.ErrBadToken},
		{"BadCoord", "4 1 0 0 one 1", problem.ErrBadToken},
		{"Trailing", "4 1 0 0 1", problem.ErrTrailingTokens},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.ParseString(tc.input)
			require.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		p    problem.Problem
		err  error
	}{
		{"OK", problem.Problem{Side: 2, Rectangles: []problem.Rectangle{problem.Rect(0, 0, 1, 1)}}, nil},
		{"ZeroSide", problem.Problem{Side: 0}, problem.ErrInvalidSide},
		{"RowPastEdge", problem.Problem{Side: 2, Rectangles: []problem.Rectangle{problem.Rect(0, 0, 2, 1)}}, problem.ErrRectangleBounds},
		{"Inverted", problem.Problem{Side: 3, Rectangles: []problem.Rectangle{problem.Rect(2, 0, 1, 1)}}, problem.ErrRectangleBounds},
		{"Negative", problem.Problem{Side: 3, Rectangles: []problem.Rectangle{problem.Rect(0, -1, 1, 1)}}, problem.ErrRectangleBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}

	var rerr *problem.RectangleError
	err := problem.Problem{Side: 2, Rectangles: []problem.Rectangle{
		problem.Rect(0, 0, 0, 0),
		problem.Rect(1, 1, 1, 5),
	}}.Validate()
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, 1, rerr.Index)
}

func TestFormatRoundTrip(t *testing.T) {
	p, err := problem.ParseString(sampleInput)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, problem.Format(&buf, p))
	require.True(t, strings.HasPrefix(buf.String(), "400 14 90 142 116 149 "))
	require.True(t, strings.HasSuffix(buf.String(), " 162 285 246 287\n"))

	back, err := problem.ParseString(buf.String())
	require.NoError(t, err)
	require.Equal(t, p.Rectangles, back.Rectangles)
	require.False(t, back.CountMismatch())
}

func TestTOML(t *testing.T) {
	doc := `
side = 4

[[rect]]
row0 = 0
col0 = 0
row1 = 1
col1 = 1

[[rect]]
row0 = 2
col0 = 2
row1 = 3
col1 = 3
`
	p, err := problem.LoadTOML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 4, p.Side)
	require.Equal(t, 2, p.Declared)
	require.Equal(t, []problem.Rectangle{problem.Rect(0, 0, 1, 1), problem.Rect(2, 2, 3, 3)}, p.Rectangles)

	var buf bytes.Buffer
	require.NoError(t, problem.EncodeTOML(&buf, p))
	back, err := problem.LoadTOML(&buf)
	require.NoError(t, err)
	require.Equal(t, p, back)
}

func TestTOML_Malformed(t *testing.T) {
	_, err := problem.LoadTOML(strings.NewReader("side = ["))
	require.Error(t, err)
}

func TestRandom(t *testing.T) {
	a := problem.Random(rand.New(rand.NewSource(42)), 50, 30)
	b := problem.Random(rand.New(rand.NewSource(42)), 50, 30)
	require.Equal(t, a, b, "same seed must give the same instance")
	require.Len(t, a.Rectangles, 30)
	require.NoError(t, a.Validate())
}

func TestRandom_NonPositiveSide(t *testing.T) {
	require.Panics(t, func() { problem.Random(rand.New(rand.NewSource(1)), 0, 3) })
}
