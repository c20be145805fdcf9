package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type num int

func (n num) Transform(t func(num) num) num { return t(n) }

func double(n num) num { return n * 2 }

func inc(n num) num { return n + 1 }

func TestAll(t *testing.T) {
	assert.Equal(t, []num{2, 4, 6}, All([]num{1, 2, 3}, double))
	assert.Empty(t, All([]num{}, double))
	assert.Nil(t, All[num](nil, double))
}

func TestApply(t *testing.T) {
	assert.Equal(t, num(3), Apply(num(1), double, inc))
	assert.Equal(t, num(4), Apply(num(1), inc, double))
	assert.Equal(t, num(7), Apply[num, func(num) num](num(7)))
}
