// Package core holds the types shared by every overlay object: geometry in
// reference units, the capabilities the host must provide, typed events and
// the error kinds raised by menus and pools.
package core

// ReferenceHeight is the height of the virtual screen every layout is
// computed in. The reference width follows the aspect ratio of the real
// resolution.
const ReferenceHeight = 1080.0

// Point is a position in reference units or pixels depending on context.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// IsZero reports whether either dimension collapses the area to nothing.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// Alignment is the horizontal anchor of an element.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Font identifies a typeface understood by the host.
type Font int

const (
	FontChaletLondon Font = iota
	FontHouseScript
	FontChaletComprimeCologne
)

// ReferenceWidth returns the width of the virtual screen for a resolution.
// A degenerate resolution falls back to 16:9.
func ReferenceWidth(resolution Size) float64 {
	if resolution.H <= 0 || resolution.W <= 0 {
		return ReferenceHeight * 16 / 9
	}
	return ReferenceHeight * resolution.W / resolution.H
}

// PixelScale converts reference units into pixels for a resolution.
func PixelScale(resolution Size) float64 {
	if resolution.H <= 0 {
		return 1
	}
	return resolution.H / ReferenceHeight
}

// Contains reports whether p lies inside the box at pos with the given size.
// Edges are inclusive on the top-left and exclusive on the bottom-right.
func Contains(p, pos Point, size Size) bool {
	if size.IsZero() {
		return false
	}
	return p.X >= pos.X && p.X < pos.X+size.W &&
		p.Y >= pos.Y && p.Y < pos.Y+size.H
}

// TextUnit is the height in reference units of text drawn at scale 1.
const TextUnit = 48.0
