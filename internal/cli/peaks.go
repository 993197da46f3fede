// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	label = color.New(color.FgYellow)
	value = color.New(color.FgCyan, color.Bold)
)

func newPeaksCommand(opts *Options) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "peaks FILE",
		Short: "Print the envelope summary of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.Extractor().ExtractContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			field := func(name string, format string, a ...any) {
				label.Fprintf(w, "%-9s", name)
				value.Fprintf(w, format+"\n", a...)
			}

			field("file", "%s", args[0])
			field("pairs", "%d", env.Len())
			field("step", "%d", env.Step())
			field("rate", "%d Hz", env.SampleRate())
			field("frames", "%d", env.Frames())
			field("duration", "%s", env.Duration())

			if dump {
				for i := range env.Len() {
					lo, hi := env.Pair(i)
					fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", i, lo, hi)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Also print every min/max pair")

	return cmd
}
