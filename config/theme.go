package config

import "image/color"

// TextureRef names a texture inside a texture dictionary
type TextureRef struct {
	Dictionary string
	Name       string
}

// CheckboxTextures holds the four checkbox glyph states
type CheckboxTextures struct {
	Blank         string
	Tick          string
	BlankSelected string
	TickSelected  string
}

// Pick returns the glyph for a checked/selected combination.
func (c CheckboxTextures) Pick(checked, selected bool) string {
	switch {
	case selected && checked:
		return c.TickSelected
	case selected:
		return c.BlankSelected
	case checked:
		return c.Tick
	}
	return c.Blank
}

// Theme is the look of one menu. Menus copy it on creation, so changing a
// theme value afterwards never affects menus that already exist.
type Theme struct {
	Name string

	// Colors
	TitleColor        color.RGBA
	SubtitleColor     color.RGBA
	SubtitleBarColor  color.RGBA
	ItemColor         color.RGBA
	ItemSelectedColor color.RGBA
	ItemDisabledColor color.RGBA
	DescriptionColor  color.RGBA
	SliderBackColor   color.RGBA
	SliderFillColor   color.RGBA

	// Textures
	Dictionary         string
	BannerTexture      string
	BackgroundTexture  string
	HighlightTexture   string
	DescriptionTexture string
	ArrowLeftTexture   string
	ArrowRightTexture  string
	Checkbox           CheckboxTextures

	// Text scales
	TitleScale       float64
	SubtitleScale    float64
	ItemScale        float64
	DescriptionScale float64

	// Texts
	NoItemsText string
	SelectLabel string
	BackLabel   string
}

// DefaultTheme returns the Rockstar-like look.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		TitleColor:        White,
		SubtitleColor:     WhiteSmoke,
		SubtitleBarColor:  Black,
		ItemColor:         WhiteSmoke,
		ItemSelectedColor: Black,
		ItemDisabledColor: Disabled,
		DescriptionColor:  WhiteSmoke,
		SliderBackColor:   color.RGBA{R: 4, G: 32, B: 57, A: 255},
		SliderFillColor:   color.RGBA{R: 57, G: 116, B: 200, A: 255},

		Dictionary:         "commonmenu",
		BannerTexture:      "interaction_bgd",
		BackgroundTexture:  "gradient_bgd",
		HighlightTexture:   "gradient_nav",
		DescriptionTexture: "gradient_bgd",
		ArrowLeftTexture:   "arrowleft",
		ArrowRightTexture:  "arrowright",
		Checkbox: CheckboxTextures{
			Blank:         "shop_box_blank",
			Tick:          "shop_box_tick",
			BlankSelected: "shop_box_blankb",
			TickSelected:  "shop_box_tickb",
		},

		TitleScale:       1.02,
		SubtitleScale:    0.345,
		ItemScale:        0.345,
		DescriptionScale: 0.351,

		NoItemsText: "There are no items available",
		SelectLabel: "Select",
		BackLabel:   "Back",
	}
}
