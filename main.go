package main

import (
	"log"
	"os"

	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/fonts"
	"github.com/automoto/overlaymenu/menu"
	"github.com/automoto/overlaymenu/scenes"
	"github.com/automoto/overlaymenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Quit() bool
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps a 1:1 pixel mapping so menus are laid out for the real window.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

type options struct {
	themePath string
	soundDir  string
	width     float64
	maxItems  int
	right     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "overlaymenu",
		Short:        "Overlay menu demo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.soundDir, "sounds", "", "directory with wav/ogg menu sounds")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "menu width in reference units (overrides saved settings)")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", config.Layout.DefaultMaxItems, "rows shown before a menu scrolls")
	cmd.Flags().BoolVar(&opts.right, "right", false, "align menus to the right (overrides saved settings)")
	cmd.Flags().BoolVar(&config.Debug.ShowBounds, "debug", false, "outline every drawn element")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	var menuOpts []menu.Option
	if opts.themePath != "" {
		theme, err := config.LoadTheme(opts.themePath)
		if err != nil {
			return err
		}
		menuOpts = append(menuOpts, menu.WithTheme(theme))
	}
	menuOpts = append(menuOpts, menu.WithMaxItems(opts.maxItems))

	if opts.soundDir != "" {
		systems.SetSoundDir(os.DirFS(opts.soundDir))
	}
	systems.PreloadAllSFX()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	if saved == nil {
		def := systems.DefaultSettings()
		saved = &def
	}
	if cmd.Flags().Changed("right") {
		saved.RightAligned = opts.right
	}
	if cmd.Flags().Changed("width") {
		saved.WidthIndex = closestWidth(opts.width)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(scenes.NewMenuScene(saved, menuOpts...)))
}

// closestWidth picks the configured width nearest to w
func closestWidth(w float64) int {
	best := 0
	for i, candidate := range config.SettingsMenu.Widths {
		if abs(candidate-w) < abs(config.SettingsMenu.Widths[best]-w) {
			best = i
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
