// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/ik5/waveloop/clip"
	"github.com/ik5/waveloop/transport"
	"github.com/spf13/cobra"
)

// ErrSameFile is returned when the export target is the source itself.
var ErrSameFile = errors.New("output file is the input file")

func newExportCommand(opts *Options) *cobra.Command {
	var start, end float64

	cmd := &cobra.Command{
		Use:   "export FILE OUT.wav",
		Short: "Write a time range of FILE as a mono 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, target := args[0], args[1]
			if err := checkDistinct(in, target); err != nil {
				return err
			}

			// The clip goes to a temporary file next to target, which only
			// replaces target once the export succeeded.
			out, err := os.CreateTemp(filepath.Dir(target), ".waveloop-*.wav")
			if err != nil {
				return err
			}
			defer os.Remove(out.Name())

			x := clip.NewExporter(clip.WithLogger(opts.Log))
			info, err := x.Export(cmd.Context(), in, transport.Seconds(start), transport.Seconds(end), out)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			if err := os.Rename(out.Name(), target); err != nil {
				return fmt.Errorf("saving %s: %w", target, err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "wrote %s: %d frames, %s\n",
				target, info.Frames, info.Duration())
			return nil
		},
	}

	cmd.Flags().Float64Var(&start, "start", 0, "Clip start in seconds")
	cmd.Flags().Float64Var(&end, "end", 0, "Clip end in seconds")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func checkDistinct(in, target string) error {
	inInfo, err := os.Stat(in)
	if err != nil {
		return err
	}

	outInfo, err := os.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%s: %w", target, ErrSameFile)
	}
	return nil
}
