// SPDX-License-Identifier: EPL-2.0

// Package cli builds the waveloop command tree. Commands that need a window
// are added by the binary.
package cli

import (
	"fmt"

	"github.com/ik5/waveloop/envelope"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options are the global flags shared by every subcommand.
type Options struct {
	Resolution int
	Smooth     bool
	LogLevel   string

	Log *logrus.Logger
}

// Extractor builds an envelope extractor from the global flags.
func (o *Options) Extractor() *envelope.Extractor {
	return envelope.NewExtractor(
		envelope.WithResolution(o.Resolution),
		envelope.WithSmoothing(o.Smooth),
		envelope.WithLogger(o.Log),
	)
}

func (o *Options) setup() error {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}

	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	o.Log.SetLevel(level)

	return nil
}

// NewRoot returns the root command with the headless subcommands attached.
func NewRoot(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "waveloop",
		Short: "Waveform display and loop selection for audio files",
		Long: `waveloop draws the amplitude envelope of an audio track and lets you
pick a loop range on it with two draggable markers.

Supported formats: WAV, AIFF, MP3 and Ogg Vorbis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().IntVar(&opts.Resolution, "resolution", envelope.DefaultResolution,
		"Maximum number of min/max pairs in the envelope")
	root.PersistentFlags().BoolVar(&opts.Smooth, "smooth", true,
		"Apply 3-tap smoothing to the envelope")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warning",
		"Log level (trace, debug, info, warning, error)")

	root.AddCommand(
		newPeaksCommand(opts),
		newExportCommand(opts),
		newSnapshotCommand(opts),
	)

	return root
}
