package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int
	}{
		{7, 7, 1, 0},
		{6, 7, 0, 6},
		{-1, 7, -1, 6},
		{-7, 7, -1, 0},
		{-8, 7, -2, 6},
		{-13, 12, -2, 11},
		{25, 12, 2, 1},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d/%d", c.a, c.b), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.div, FloorDiv(c.a, c.b))
			assert.Equal(c.mod, Mod(c.a, c.b))
			assert.Equal(c.a, c.div*c.b+c.mod)
		})
	}
}

func TestGetKeysIsSorted(t *testing.T) {
	m := map[string]int{"lydian": 1, "aeolian": 2, "dorian": 3}
	assert.Equal(t, []string{"aeolian", "dorian", "lydian"}, GetKeys(m))
}

func TestMinMaxAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 9))
	assert.Equal(uint8(9), Max(uint8(3), uint8(9)))
	assert.Equal(4, Abs(-4))
	assert.Equal(4, Abs(4))
}
