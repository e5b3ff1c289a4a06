package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScale renders a 0..1 scalar as a bar like [████░░░░] 0.52. Unlike a
// progress bar, high is not good here: the bar turns red as it fills.
func RenderScale(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(v * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if v >= 0.66 {
		style = StyleRed
	} else if v >= 0.33 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %.2f", style.Render(bar), v)
}

// RenderTiming renders a timing score bar where high is good: green when the
// moment is right, red when it is not.
func RenderTiming(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(v * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	if v >= 0.66 {
		style = StyleGreen
	} else if v >= 0.33 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %.2f", style.Render(bar), v)
}
