package gridtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/grid/gridtext"
	"github.com/louiserondia/npuzzle/vec2"
)

func TestParseSnail10(t *testing.T) {
	g10 := grid.Solved(10)
	raw := gridtext.Render(g10)
	got, err := gridtext.Parse(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(g10))
}

func TestParseWithCommentsAndIrregularWhitespace(t *testing.T) {
	raw := `
# a 3x3 puzzle
  3   # size

3    2 6
1 4     0
  8 7 5
`
	got, err := gridtext.Parse(raw)
	require.NoError(t, err)
	want, err := grid.New([]int{3, 2, 6, 1, 4, 0, 8, 7, 5}, 3)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
	assert.Equal(t, vec2.New(2, 1), got.Zero())
}

func TestParseRejections(t *testing.T) {
	cases := map[string]string{
		"missing size":     "",
		"zero size":        "0\n",
		"negative size":    "-1\n",
		"row count mismatch": "2\n0 1\n",
		"row width mismatch": "2\n0 1 2\n3 0 0\n",
		"duplicate tile":     "2\n0 1\n1 0\n",
		"out of range tile":  "2\n0 1\n2 4\n",
		"non integer token":  "2\nfoo 1\n2 3\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gridtext.Parse(raw)
			assert.ErrorIs(t, err, gridtext.ErrParse, "case %s", name)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	g := grid.Solved(4)
	g.Op(vec2.New(0, -1))
	raw := gridtext.Render(g)
	got, err := gridtext.Parse(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}
