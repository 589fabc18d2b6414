package systems

import (
	"strings"

	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/fonts"
)

// textWidth measures s at scale in reference units. Faces are built at the
// reference pixel size so no conversion is needed.
func textWidth(s string, font core.Font, scale float64) float64 {
	if s == "" {
		return 0
	}
	face := fonts.Face(font, scale*core.TextUnit)
	widest := 0.0
	for _, line := range strings.Split(s, "\n") {
		if w := fonts.Measure(face, line); w > widest {
			widest = w
		}
	}
	return widest
}

// lineCount returns how many lines s takes when wrapped at wrap reference
// units. A wrap of zero or less only honors explicit line breaks.
func lineCount(s string, font core.Font, scale, wrap float64) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	face := fonts.Face(font, scale*core.TextUnit)
	return len(fonts.Wrap(face, s, wrap))
}
