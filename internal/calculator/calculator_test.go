package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradelab.com/pkg/xerr"
)

func TestCalculator(t *testing.T) {
	c := New()
	assert.Equal(t, 3, c.Add(1, 2))
	assert.Equal(t, -1, c.Subtract(1, 2))
	assert.Equal(t, 2, c.Multiply(1, 2))

	got, err := c.Divide(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	got, err = c.Divide(-9, 3)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)
}

func TestCalculator_DivideByZero(t *testing.T) {
	_, err := New().Divide(1, 0)
	require.Error(t, err)
	assert.True(t, xerr.Is(err, xerr.InvalidArgument))
	assert.Equal(t, "Division by zero", err.Error())
}
