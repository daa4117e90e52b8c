// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvindex/indexed"
)

func newTraitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traits description.yaml",
		Short: "print the inferred static traits of an indexed view.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadView(args[0])
			if err != nil {
				return err
			}
			writeTraits(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

// writeTraits prints one "key: value" line per trait, in a fixed order.
func writeTraits(w io.Writer, v *indexed.View) {
	t := v.ViewTraits()
	rd, cd := v.RowIndices().Descriptor(), v.ColIndices().Descriptor()
	fmt.Fprintf(w, "shape: %dx%d\n", v.Rows(), v.Cols())
	fmt.Fprintf(w, "selectors: %s x %s\n", rd.Kind, cd.Kind)
	fmt.Fprintf(w, "rows: %s (max %s)\n", t.Rows, t.MaxRows)
	fmt.Fprintf(w, "cols: %s (max %s)\n", t.Cols, t.MaxCols)
	fmt.Fprintf(w, "order: %s\n", t.Order())
	fmt.Fprintf(w, "incr: row=%s col=%s inner=%s outer=%s\n", t.RowIncr, t.ColIncr, t.InnerIncr, t.OuterIncr)
	fmt.Fprintf(w, "stride: inner=%s outer=%s\n", t.InnerStride, t.OuterStride)
	fmt.Fprintf(w, "direct-access: %t\n", t.DirectAccess)
	fmt.Fprintf(w, "block-alike: %t\n", t.BlockAlike)
	fmt.Fprintf(w, "inner-panel: %t\n", t.InnerPanel)
	fmt.Fprintf(w, "flags: %s\n", t.Flags)
	fmt.Fprintf(w, "evaluator: %s\n", indexed.StrategyOf(v.Evaluator()))
}
