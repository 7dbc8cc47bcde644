package vec2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiserondia/npuzzle/vec2"
)

func TestAdd(t *testing.T) {
	got := vec2.New(1, 2).Add(vec2.New(3, -1))
	assert.Equal(t, vec2.New(4, 1), got)
}

func TestNeg(t *testing.T) {
	assert.Equal(t, vec2.New(-1, 2), vec2.New(1, -2).Neg())
}

func TestScale(t *testing.T) {
	assert.Equal(t, vec2.New(-2, -4), vec2.New(1, 2).Scale(-2))
}

func TestRotateCW90(t *testing.T) {
	// (1,0) -> (0,1) -> (-1,0) -> (0,-1) -> (1,0)
	d := vec2.New(1, 0)
	d = d.RotateCW90()
	assert.Equal(t, vec2.New(0, 1), d)
	d = d.RotateCW90()
	assert.Equal(t, vec2.New(-1, 0), d)
	d = d.RotateCW90()
	assert.Equal(t, vec2.New(0, -1), d)
	d = d.RotateCW90()
	assert.Equal(t, vec2.New(1, 0), d)
}
