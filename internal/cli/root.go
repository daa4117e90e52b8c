// SPDX-License-Identifier: MIT

// Package cli implements the ixview command: build an indexed view from a
// YAML description and print either its coefficients or its static traits.
package cli

import (
	"fmt"
	"io"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvindex/indexed"
	"github.com/katalvlaran/lvindex/internal/config"
)

// Version is filled when building with -ldflags, but not via "go install".
var Version string

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ixview",
		Short:         "Inspect lazy indexed views over dense matrices.",
		Long:          "Build an indexed view from a YAML description of a matrix and two selectors, then print it or its inferred traits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				printVersion(cmd.OutOrStdout())

				return nil
			}

			return cmd.Help()
		},
	}
	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.AddCommand(newShowCmd(), newTraitsCmd())

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func printVersion(w io.Writer) {
	switch {
	case Version != "":
		fmt.Fprintf(w, "ixview %s\n", Version)
	default:
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprintf(w, "ixview %s\n", info.Main.Version)
		} else {
			fmt.Fprintln(w, "ixview (unknown version)")
		}
	}
}

// getFlag returns a boolean flag, false when it is not defined on cmd.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		return false
	}

	return r
}

// loadView reads the description at path and builds a borrowed view.
func loadView(path string) (*indexed.View, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	m, rows, cols, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %dx%d %s matrix from %s", m.Rows(), m.Cols(), m.Order(), path)

	return indexed.Borrow(m, rows, cols)
}
