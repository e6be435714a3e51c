// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	xlog "github.com/katalvlaran/lvmat/internal/log"
	"github.com/katalvlaran/lvmat/matrix"
)

// newRotateCmd multiplies a 2-D rotation matrix by the column vector (x, y)
// and prints the product together with its transpose.
func newRotateCmd(opts *rootOptions) *cobra.Command {
	var x, y, angle float64
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate a 2-D column vector by an angle in radians",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := xlog.WithComponent("rotate")
			if err := requireFinite(map[string]float64{"x": x, "y": y, "angle": angle}); err != nil {
				return err
			}

			rot, err := matrix.FromRows([][]float64{
				{math.Cos(angle), -math.Sin(angle)},
				{math.Sin(angle), math.Cos(angle)},
			})
			if err != nil {
				return err
			}
			vec, err := matrix.FromRows([][]float64{{x}, {y}})
			if err != nil {
				return err
			}
			out, err := matrix.Product(rot, vec)
			if err != nil {
				return err
			}
			tr, err := matrix.Transposed(out)
			if err != nil {
				return err
			}
			r, c := out.Size()
			logger.Debug().Float64("angle", angle).Int("rows", r).Int("cols", c).Msg("rotated")

			p := newPrinter(cmd.OutOrStdout(), opts.format)
			if err = writeMatrix(p, "rotated", out); err != nil {
				return err
			}

			return writeMatrix(p, "transposed", tr)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 4, "x component of the vector")
	cmd.Flags().Float64Var(&y, "y", 2, "y component of the vector")
	cmd.Flags().Float64Var(&angle, "angle", math.Pi, "rotation angle in radians")

	return cmd
}

// newIdentityCmd prints an int32 identity of the requested order.
func newIdentityCmd(opts *rootOptions) *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Print the int32 identity matrix of a given order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := matrix.NewIdentity[int32](order)
			if err != nil {
				return err
			}
			logger := xlog.WithComponent("identity")
			logger.Debug().Int("order", order).Msg("built")

			return writeMatrix(newPrinter(cmd.OutOrStdout(), opts.format), "identity", id)
		},
	}
	cmd.Flags().IntVar(&order, "order", 3, "number of rows and columns")

	return cmd
}

// newAddCmd prints [[1,2],[3,4]] + [[5,6],[7,8]].
func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add two fixed 2x2 integer matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
			b := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})
			sum, err := matrix.Sum(a, b)
			if err != nil {
				return err
			}
			logger := xlog.WithComponent("add")
			logger.Debug().Msg("summed")

			return writeMatrix(newPrinter(cmd.OutOrStdout(), opts.format), "sum", sum)
		},
	}
}

// requireFinite rejects NaN and ±Inf flag values; JSON cannot encode them.
func requireFinite(flags map[string]float64) error {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := flags[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("--%s %v: %w", name, v, ErrNonFinite)
		}
	}

	return nil
}
