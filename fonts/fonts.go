package fonts

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/overlaymenu/core"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	font core.Font
	size int
}

var (
	sources = map[core.Font]*truetype.Font{}
	faces   = map[faceKey]font.Face{}
)

// Load registers a TrueType font for f.
func Load(f core.Font, ttf []byte) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse font %d: %w", f, err)
	}
	sources[f] = parsed
	for k := range faces {
		if k.font == f {
			delete(faces, k)
		}
	}
	return nil
}

// LoadDefaults registers the Go fonts for every core.Font.
func LoadDefaults() error {
	defaults := map[core.Font][]byte{
		core.FontChaletLondon:          goregular.TTF,
		core.FontHouseScript:           gobolditalic.TTF,
		core.FontChaletComprimeCologne: gomedium.TTF,
	}
	for f, ttf := range defaults {
		if _, ok := sources[f]; ok {
			continue
		}
		if err := Load(f, ttf); err != nil {
			return err
		}
	}
	return nil
}

// Face returns f at the given pixel size. Unknown fonts fall back to
// FontChaletLondon.
func Face(f core.Font, size float64) font.Face {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	key := faceKey{font: f, size: px}
	if face, ok := faces[key]; ok {
		return face
	}
	src, ok := sources[f]
	if !ok {
		src, ok = sources[core.FontChaletLondon]
		if !ok {
			panic(fmt.Sprintf("Font %d not loaded", f))
		}
	}
	face := truetype.NewFace(src, &truetype.Options{Size: float64(px), Hinting: font.HintingFull})
	faces[key] = face
	return face
}

// Measure returns the advance of s in pixels.
func Measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// Wrap breaks s into lines no wider than width. Words longer than a line get a
// line of their own. A width of zero keeps explicit line breaks only.
func Wrap(face font.Face, s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if Measure(face, candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
