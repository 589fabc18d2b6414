package elements

import (
	"image/color"

	"github.com/automoto/overlaymenu/core"
)

// Rectangle is a solid colored box.
type Rectangle struct {
	element
	Color color.RGBA
}

// NewRectangle creates a rectangle at pos with the given size.
func NewRectangle(display core.Display, pos core.Point, size core.Size, c color.RGBA) *Rectangle {
	return &Rectangle{
		element: newElement(display, pos, size),
		Color:   c,
	}
}

// Draw fills the rectangle. Zero sized rectangles draw nothing.
func (r *Rectangle) Draw(c core.Canvas) {
	if r.absoluteSize.IsZero() {
		return
	}
	c.FillRect(r.absolutePos, r.absoluteSize, r.Color)
}

// Sprite is a texture from a texture dictionary.
type Sprite struct {
	element
	Dictionary string
	Texture    string
	Color      color.RGBA
}

// NewSprite creates a sprite with a white tint.
func NewSprite(display core.Display, pos core.Point, size core.Size, dictionary, texture string) *Sprite {
	return &Sprite{
		element:    newElement(display, pos, size),
		Dictionary: dictionary,
		Texture:    texture,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Draw renders the texture. Zero sized sprites draw nothing.
func (s *Sprite) Draw(c core.Canvas) {
	if s.absoluteSize.IsZero() || s.Texture == "" {
		return
	}
	c.DrawSprite(s.Dictionary, s.Texture, s.absolutePos, s.absoluteSize, s.Color)
}
