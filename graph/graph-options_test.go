package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartVertexRange(t *testing.T) {
	assert.Equal(t, uint32(7), toVertex(7))
	assert.Equal(t, uint32(EMPTY_VAL-1), toVertex(uint(EMPTY_VAL-1)))
	assert.Panics(t, func() { toVertex(uint(EMPTY_VAL)) })
	assert.Panics(t, func() { toVertex(1 << 32) })
}
