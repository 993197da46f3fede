// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/ik5/waveloop/transport"
	"github.com/ik5/waveloop/waveview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// fixedPosition is a transport parked at one position.
type fixedPosition time.Duration

func (p fixedPosition) Position() (time.Duration, bool) { return time.Duration(p), true }
func (fixedPosition) Duration() (time.Duration, bool)   { return 0, false }

type snapshotFlags struct {
	start, end    float64
	position      float64
	width, height int
	vzoom         float64
	zoom          bool
}

func newSnapshotCommand(opts *Options) *cobra.Command {
	var f snapshotFlags

	cmd := &cobra.Command{
		Use:   "snapshot FILE OUT.png",
		Short: "Render one frame of the waveform view to a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.width <= 0 || f.height <= 0 {
				return fmt.Errorf("invalid size %dx%d", f.width, f.height)
			}

			env, err := opts.Extractor().ExtractContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfg := waveview.DefaultConfig()
			cfg.Logger = opts.Log
			v := waveview.New(cfg, nil)
			v.SetEnvelope(env)
			v.Resize(f.width, f.height)
			v.SetVerticalZoom(f.vzoom)

			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				end := f.end
				if !cmd.Flags().Changed("end") {
					end = v.Selection().Duration()
				}
				v.SetSelection(f.start, end)
			}
			if f.zoom {
				v.ZoomToSelection()
			}

			frame, err := v.Render(fixedPosition(transport.Seconds(f.position)))
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := png.Encode(out, frame); err != nil {
				out.Close()
				return fmt.Errorf("encoding png: %w", err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			opts.Log.WithFields(logrus.Fields{
				"function": "snapshot",
				"path":     args[1],
				"width":    f.width,
				"height":   f.height,
			}).Info("Snapshot written")

			return nil
		},
	}

	cmd.Flags().Float64Var(&f.start, "start", 0, "Selection start in seconds")
	cmd.Flags().Float64Var(&f.end, "end", 0, "Selection end in seconds")
	cmd.Flags().Float64Var(&f.position, "position", 0, "Playback cursor position in seconds")
	cmd.Flags().IntVar(&f.width, "width", 800, "Image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 200, "Image height in pixels")
	cmd.Flags().Float64Var(&f.vzoom, "vzoom", 1, "Vertical zoom, 0.5 to 3")
	cmd.Flags().BoolVar(&f.zoom, "zoom", false, "Frame the selection instead of the whole track")

	return cmd
}
