package config

import "image/color"

// LayoutConfig contains the fixed geometry of a menu, in reference units
// (1080 units tall screen).
type LayoutConfig struct {
	DefaultWidth    float64
	DefaultMaxItems int
	BannerHeight    float64
	SubtitleHeight  float64
	ItemHeight      float64

	// Title text offset inside a row
	ItemOffsetX float64
	ItemOffsetY float64

	// Description box
	DescriptionGap        float64 // between the last row and the box
	DescriptionTextOffset float64 // between the box top and the text
	DescriptionTextX      float64
	DescriptionLineHeight float64

	// Banner and subtitle texts
	BannerTextY     float64
	SubtitleTextX   float64
	SubtitleTextY   float64
	CheckboxSize    float64
	CheckboxOffsetY float64
	ArrowSize       float64
	ArrowOffsetX    float64 // right arrow distance from the right edge
	ArrowOffsetY    float64
	ValueOffsetY    float64
	SliderBarWidth  float64
	SliderBarHeight float64
	SliderBarY      float64
}

// Config holds general window configuration for the demo host
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool // Outline hit-test zones
}

// Global configuration instances
var C *Config
var Layout LayoutConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WhiteSmoke = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Disabled   = color.RGBA{R: 163, G: 159, B: 148, A: 255}
	DebugPink  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "overlaymenu",
	}

	Layout = LayoutConfig{
		DefaultWidth:    433,
		DefaultMaxItems: 10,
		BannerHeight:    108,
		SubtitleHeight:  38,
		ItemHeight:      37.4,

		ItemOffsetX: 6,
		ItemOffsetY: 3,

		DescriptionGap:        4,
		DescriptionTextOffset: 3,
		DescriptionTextX:      6,
		DescriptionLineHeight: 35,

		BannerTextY:     22,
		SubtitleTextX:   6,
		SubtitleTextY:   4.2,
		CheckboxSize:    50,
		CheckboxOffsetY: -6,
		ArrowSize:       30,
		ArrowOffsetX:    35,
		ArrowOffsetY:    4,
		ValueOffsetY:    3,
		SliderBarWidth:  150,
		SliderBarHeight: 9,
		SliderBarY:      14,
	}
}
