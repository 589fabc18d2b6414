package systems

import (
	"github.com/automoto/overlaymenu/core"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// pointInRect tests p against the box at pos using a resolv polygon.
func pointInRect(p, pos core.Point, size core.Size) bool {
	if size.IsZero() {
		return false
	}
	shape := resolv.NewRectangle(pos.X, pos.Y, size.W, size.H)
	return shape.PointInside(vector.Vector{p.X, p.Y})
}
