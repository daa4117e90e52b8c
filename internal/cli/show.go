// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvindex/indexed"
	"github.com/katalvlaran/lvindex/matrix"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [flags] description.yaml",
		Short: "print the coefficients of an indexed view.",
		Long: `Print the coefficients of the view described by the given file, row by row.
With --materialize the view is first copied into an independent matrix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadView(args[0])
			if err != nil {
				return err
			}
			var out matrix.Expr = v
			if getFlag(cmd, "materialize") {
				d, err := indexed.Materialize(v)
				if err != nil {
					return err
				}
				log.Debugf("materialized %dx%d %s copy", d.Rows(), d.Cols(), d.Order())
				out = d
			}
			if getFlag(cmd, "nested") {
				fmt.Fprint(cmd.OutOrStdout(), matrix.Format(v.NestedExpression()))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			text := matrix.Format(out)
			warnIfTooWide(cmd.OutOrStdout(), text)
			fmt.Fprint(cmd.OutOrStdout(), text)

			return nil
		},
	}
	cmd.Flags().Bool("materialize", false, "copy the view into a new matrix before printing")
	cmd.Flags().Bool("nested", false, "print the nested matrix before the view")

	return cmd
}

// warnIfTooWide logs a warning when w is a terminal narrower than the
// longest rendered row. Non-terminal writers are left alone.
func warnIfTooWide(w io.Writer, text string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if len(line) > width {
			log.Warnf("widest view row has %d characters, terminal has %d columns", len(line), width)

			return
		}
	}
}
