// Package config carries the fixed layout constants and the runtime
// settings loaded from the environment (flags override them later).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720

	TPS = 60

	// Angular speed range exposed by the slider, rad/s.
	SpeedMin = 0.1
	SpeedMax = 4.0

	// Plot sampling
	PlotSteps = 512
	TanClip   = 4.0

	// Shared layout
	Margin     = 20
	HUDHeight  = 90
	ButtonW    = 110
	ButtonH    = 28
	CheckSize  = 14
	SliderW    = 180
	SliderH    = 20
	FieldW     = 80
	FieldH     = 22
	GrabRadius = 14
	MarkerSize = 5
)

// Settings are the tunables read from TRIGVIEW_* variables.
type Settings struct {
	Width  int     `env:"TRIGVIEW_WIDTH" envDefault:"1280"`
	Height int     `env:"TRIGVIEW_HEIGHT" envDefault:"720"`
	Scene  string  `env:"TRIGVIEW_SCENE" envDefault:"circle"`
	Speed  float64 `env:"TRIGVIEW_SPEED" envDefault:"1.0"`
	Paused bool    `env:"TRIGVIEW_PAUSED"`
	Mute   bool    `env:"TRIGVIEW_MUTE"`
}

// Load reads settings from the environment and validates them.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects window sizes too small to lay out the panels and
// clamps the speed into the slider range.
func (s *Settings) Validate() error {
	if s.Width < 640 || s.Height < 480 {
		return fmt.Errorf("window %dx%d too small, need at least 640x480", s.Width, s.Height)
	}
	if s.Speed < SpeedMin {
		s.Speed = SpeedMin
	}
	if s.Speed > SpeedMax {
		s.Speed = SpeedMax
	}
	return nil
}
