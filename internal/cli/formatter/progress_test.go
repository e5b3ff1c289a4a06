package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderScale_Bounds(t *testing.T) {
	assert.Contains(t, RenderScale(-0.5, 8), "0.00")
	assert.Contains(t, RenderScale(1.5, 8), "1.00")
}

func TestRenderScale_FillCount(t *testing.T) {
	out := RenderScale(0.5, 8)
	assert.Equal(t, 4, strings.Count(out, filledBlock))
	assert.Equal(t, 4, strings.Count(out, emptyBlock))
}

func TestRenderTiming_FillCount(t *testing.T) {
	out := RenderTiming(0.25, 8)
	assert.Equal(t, 2, strings.Count(out, filledBlock))
	assert.Equal(t, 6, strings.Count(out, emptyBlock))
	assert.Contains(t, out, "0.25")
}

func TestRenderScale_MinimumWidth(t *testing.T) {
	out := RenderScale(1.0, 0)
	assert.Equal(t, 2, strings.Count(out, filledBlock))
}
