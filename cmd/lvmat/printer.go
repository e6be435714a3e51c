// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/matrix"
)

// printer renders labelled matrices in one of the --format styles.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) printer {
	return printer{w: w, format: format}
}

// matrixRecord is the JSON shape of one printed matrix.
type matrixRecord[T matrix.Numeric] struct {
	Label string `json:"label"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Data  [][]T  `json:"data"`
}

// writeMatrix prints "label RxC: [[...]]" in text mode or one JSON object
// per line in json mode.
func writeMatrix[T matrix.Numeric](p printer, label string, m *matrix.Dense[T]) error {
	r, c := m.Size()
	if p.format == formatJSON {
		return json.NewEncoder(p.w).Encode(matrixRecord[T]{Label: label, Rows: r, Cols: c, Data: m.ToRows()})
	}
	_, err := fmt.Fprintf(p.w, "%s %dx%d: %s\n", label, r, c, m)

	return err
}
