package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/inkstar/trigonometric-function/internal/config"
	"github.com/inkstar/trigonometric-function/internal/game"
)

var (
	flagScene  string
	flagWidth  int
	flagHeight int
	flagSpeed  float64
	flagPaused bool
	flagMute   bool
)

func main() {
	root := &cobra.Command{
		Use:   "trigview",
		Short: "Interactive visualization of the trig functions and their mechanical analogues",
		Long: "trigview animates a shared angle parameter through a unit circle,\n" +
			"a spring-mass oscillator, uniform circular motion and a pendulum,\n" +
			"with synchronized wave plots. Drag the point or the waves to scrub.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			// Flags win over TRIGVIEW_* environment variables.
			if cmd.Flags().Changed("scene") {
				settings.Scene = flagScene
			}
			if cmd.Flags().Changed("width") {
				settings.Width = flagWidth
			}
			if cmd.Flags().Changed("height") {
				settings.Height = flagHeight
			}
			if cmd.Flags().Changed("speed") {
				settings.Speed = flagSpeed
			}
			if cmd.Flags().Changed("paused") {
				settings.Paused = flagPaused
			}
			if cmd.Flags().Changed("mute") {
				settings.Mute = flagMute
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			return run(settings)
		},
	}

	root.Flags().StringVar(&flagScene, "scene", "circle", "starting scene: circle, spring, circular or pendulum")
	root.Flags().IntVar(&flagWidth, "width", config.DefaultWidth, "window width in pixels")
	root.Flags().IntVar(&flagHeight, "height", config.DefaultHeight, "window height in pixels")
	root.Flags().Float64Var(&flagSpeed, "speed", 1.0, "angular speed in rad/s")
	root.Flags().BoolVar(&flagPaused, "paused", false, "start with the animation paused")
	root.Flags().BoolVar(&flagMute, "mute", false, "start with the reference tone muted")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trigview:", err)
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	g, err := game.New(settings)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("trigview - trig functions in motion")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
