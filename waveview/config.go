// SPDX-License-Identifier: EPL-2.0

package waveview

import (
	"github.com/ik5/waveloop/render"
	"github.com/sirupsen/logrus"
)

// Config holds the interaction constants of a View.
type Config struct {
	// MinGap is the shortest selection in seconds.
	MinGap float64
	// HitSlop is the marker grab distance in pixels.
	HitSlop float64

	// ZoomIn and ZoomOut are the wheel factors for one notch up and down.
	ZoomIn, ZoomOut float64
	// PanStep is the share of the view width one Pan(±1) moves.
	PanStep float64

	MinVerticalZoom, MaxVerticalZoom float64

	Theme  render.Theme
	Logger logrus.FieldLogger
}

func DefaultConfig() Config {
	return Config{
		MinGap:          DefaultMinGap,
		HitSlop:         DefaultHitSlop,
		ZoomIn:          0.8,
		ZoomOut:         1.25,
		PanStep:         0.1,
		MinVerticalZoom: 0.5,
		MaxVerticalZoom: 3.0,
		Theme:           render.DefaultTheme(),
		Logger:          logrus.StandardLogger(),
	}
}
