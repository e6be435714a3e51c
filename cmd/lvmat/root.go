// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	xlog "github.com/katalvlaran/lvmat/internal/log"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// ErrUnknownFormat is returned for a --format value other than text or json.
var ErrUnknownFormat = errors.New("lvmat: unknown output format")

// ErrNonFinite is returned when a numeric flag is NaN or ±Inf.
var ErrNonFinite = errors.New("lvmat: value must be finite")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	format   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "lvmat",
		Short:         "Dense matrix arithmetic demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			xlog.Configure(xlog.Config{
				Level:  opts.logLevel,
				Output: cmd.ErrOrStderr(),
			})
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("--format %q: %w", opts.format, ErrUnknownFormat)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level (debug, info, warn, error); defaults to $"+xlog.EnvLevel+" or info")
	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format: text or json")

	root.AddCommand(
		newRotateCmd(opts),
		newIdentityCmd(opts),
		newAddCmd(opts),
	)

	return root
}
