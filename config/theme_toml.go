package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme. Every field
// is optional; missing values keep the default theme's value.
type tomlTheme struct {
	Name   string      `toml:"name"`
	Colors tomlColors  `toml:"colors"`
	Scales tomlScales  `toml:"scales"`
	Texts  tomlTexts   `toml:"texts"`
	Tex    tomlTexture `toml:"textures"`
}

type tomlColors struct {
	Title        string `toml:"title"`
	Subtitle     string `toml:"subtitle"`
	SubtitleBar  string `toml:"subtitle_bar"`
	Item         string `toml:"item"`
	ItemSelected string `toml:"item_selected"`
	ItemDisabled string `toml:"item_disabled"`
	Description  string `toml:"description"`
	SliderBack   string `toml:"slider_back"`
	SliderFill   string `toml:"slider_fill"`
}

type tomlScales struct {
	Title       float64 `toml:"title"`
	Subtitle    float64 `toml:"subtitle"`
	Item        float64 `toml:"item"`
	Description float64 `toml:"description"`
}

type tomlTexts struct {
	NoItems string `toml:"no_items"`
	Select  string `toml:"select"`
	Back    string `toml:"back"`
}

type tomlTexture struct {
	Dictionary  string `toml:"dictionary"`
	Banner      string `toml:"banner"`
	Background  string `toml:"background"`
	Highlight   string `toml:"highlight"`
	Description string `toml:"description"`
}

// LoadTheme reads a TOML theme file and applies it over DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme parses TOML theme bytes and applies them over DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := DefaultTheme()
	if tt.Name != "" {
		t.Name = tt.Name
	}

	colors := []struct {
		field string
		value string
		dst   *color.RGBA
	}{
		{"title", tt.Colors.Title, &t.TitleColor},
		{"subtitle", tt.Colors.Subtitle, &t.SubtitleColor},
		{"subtitle_bar", tt.Colors.SubtitleBar, &t.SubtitleBarColor},
		{"item", tt.Colors.Item, &t.ItemColor},
		{"item_selected", tt.Colors.ItemSelected, &t.ItemSelectedColor},
		{"item_disabled", tt.Colors.ItemDisabled, &t.ItemDisabledColor},
		{"description", tt.Colors.Description, &t.DescriptionColor},
		{"slider_back", tt.Colors.SliderBack, &t.SliderBackColor},
		{"slider_fill", tt.Colors.SliderFill, &t.SliderFillColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseHexColor(c.value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: colors.%s: %w", c.field, err)
		}
		*c.dst = parsed
	}

	scales := []struct {
		value float64
		dst   *float64
	}{
		{tt.Scales.Title, &t.TitleScale},
		{tt.Scales.Subtitle, &t.SubtitleScale},
		{tt.Scales.Item, &t.ItemScale},
		{tt.Scales.Description, &t.DescriptionScale},
	}
	for _, s := range scales {
		if s.value > 0 {
			*s.dst = s.value
		}
	}

	setString(&t.NoItemsText, tt.Texts.NoItems)
	setString(&t.SelectLabel, tt.Texts.Select)
	setString(&t.BackLabel, tt.Texts.Back)
	setString(&t.Dictionary, tt.Tex.Dictionary)
	setString(&t.BannerTexture, tt.Tex.Banner)
	setString(&t.BackgroundTexture, tt.Tex.Background)
	setString(&t.HighlightTexture, tt.Tex.Highlight)
	setString(&t.DescriptionTexture, tt.Tex.Description)

	return t, nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
