package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(t, 5.0, Pt(3, 4).Distance(Pt(0, 0)))
	assert.Equal(t, 0.0, Pt(-2, 7).Distance(Pt(-2, 7)))
	assert.Equal(t, Pt(1, 1), Pt(3, -2).Add(Pt(-2, 3)))
}
