package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Table is an assembled potential table ready for serialization. The
// column count has already been validated against the model formula
// by the time a Table exists
type Table struct {
	Model   string
	Ntypes  int
	Cutoff  float64
	Columns []*Column
	ChemPot bool
	Global  bool
	Rand    *Rand
}

// Write renders t in potfit's analytic potential format: the #F/#T/
// #I/#E header, the optional chemical potential and global cutoff
// blocks, and one blank-line-separated block per column
func (t *Table) Write(w io.Writer) error {
	nw := bufio.NewWriter(w)
	fmt.Fprintf(nw, "#F 0 %d\n", len(t.Columns))
	fmt.Fprintf(nw, "#T %s\n", strings.ToUpper(t.Model))
	fmt.Fprint(nw, "#I")
	for range t.Columns {
		fmt.Fprint(nw, " 0")
	}
	fmt.Fprint(nw, "\n#E\n")
	// chemical potentials only make sense for pair potentials
	if t.ChemPot && t.Model == "pair" {
		fmt.Fprint(nw, "\n")
		for i := 0; i < t.Ntypes; i++ {
			fmt.Fprintf(nw, "cp_%d -1 10 0\n", i)
		}
	}
	if t.Global {
		fmt.Fprint(nw, "\nglobal 1\n")
		if t.Rand != nil {
			fmt.Fprintf(nw, "h %.2f 0.5 2\n", t.Rand.Uniform(0.5, 2.0))
		} else {
			fmt.Fprint(nw, "h 1 0.5 2\n")
		}
	}
	for _, col := range t.Columns {
		fmt.Fprint(nw, "\n")
		fmt.Fprint(nw, col.String())
	}
	return nw.Flush()
}
