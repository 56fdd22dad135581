package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Cols returns the number of potential-table columns required by an
// interaction model with ntypes atom types, or 0 if the model is not
// recognized
func Cols(model string, ntypes int) int {
	pairs := ntypes * (ntypes + 1) / 2
	switch model {
	case "pair":
		return pairs
	case "eam":
		return pairs + 2*ntypes
	case "adp":
		return 3*pairs + 2*ntypes
	case "meam":
		return 2*pairs + 3*ntypes
	case "stiweb":
		return 2*pairs + 1
	case "tersoff":
		return ntypes * ntypes
	}
	return 0
}

// ParseFunctions expands a list of function selectors of the form
// `pot` or `3*pot` into a table of configured Columns, preserving
// both token order and within-token repetition order. A trailing _sc
// on the function name selects smoothing: fixed-order normally,
// global-order when global is set
func ParseFunctions(tokens []string, cutoff float64, global bool,
	rng *Rand) ([]*Column, error) {
	var table []*Column
	for _, tok := range tokens {
		count := 1
		name := tok
		split := strings.Split(tok, "*")
		switch len(split) {
		case 1:
		case 2:
			n, err := strconv.Atoi(split[0])
			if err != nil || n < 1 {
				return nil, fmt.Errorf(
					"%w %q, expected `pot` or `3*pot`",
					ErrBadToken, tok,
				)
			}
			count = n
			name = split[1]
		default:
			return nil, fmt.Errorf(
				"%w %q, expected `pot` or `3*pot`",
				ErrBadToken, tok,
			)
		}
		smooth := SmoothNone
		if strings.HasSuffix(name, "_sc") {
			name = strings.TrimSuffix(name, "_sc")
			smooth = SmoothFixed
			if global {
				smooth = SmoothGlobal
			}
		}
		for i := 0; i < count; i++ {
			col, err := NewColumn(name)
			if err != nil {
				return nil, err
			}
			col.Configure(cutoff, smooth, rng)
			table = append(table, col)
		}
	}
	return table, nil
}

// TersoffTable builds the fixed-form Tersoff table: one tersoff_pot
// column per unordered type pair, then one tersoff_mix column per
// mixed pair. The total must agree with Cols, which counts n² for
// tersoff; 2p-n = n² for p = n(n+1)/2, but the builder checks rather
// than trusting the identity
func TersoffTable(ntypes int, cutoff float64, rng *Rand) ([]*Column, error) {
	pairs := ntypes * (ntypes + 1) / 2
	table := make([]*Column, 0, 2*pairs-ntypes)
	for i := 0; i < pairs; i++ {
		col, err := NewColumn("tersoff_pot")
		if err != nil {
			return nil, err
		}
		col.Configure(cutoff, SmoothNone, rng)
		table = append(table, col)
	}
	for i := 0; i < pairs-ntypes; i++ {
		col, err := NewColumn("tersoff_mix")
		if err != nil {
			return nil, err
		}
		col.Configure(cutoff, SmoothNone, rng)
		table = append(table, col)
	}
	if want := Cols("tersoff", ntypes); len(table) != want {
		return nil, fmt.Errorf(
			"tersoff table built %d columns for %d atom types, formula requires %d",
			len(table), ntypes, want,
		)
	}
	return table, nil
}

// StiwebTable builds the fixed-form Stillinger-Weber table: one
// stiweb_2 column per unordered type pair, then one stiweb_3 column
// per pair, then the stiweb_lambda record carrying one scalar per
// (i, j, k) triple with j <= k. The lambda record is the final column
// counted by the stiweb formula's +1
func StiwebTable(ntypes int, cutoff float64, rng *Rand) ([]*Column, error) {
	pairs := ntypes * (ntypes + 1) / 2
	table := make([]*Column, 0, 2*pairs+1)
	for _, name := range []string{"stiweb_2", "stiweb_3"} {
		for i := 0; i < pairs; i++ {
			col, err := NewColumn(name)
			if err != nil {
				return nil, err
			}
			col.Configure(cutoff, SmoothNone, rng)
			table = append(table, col)
		}
	}
	return append(table, stiwebLambda(ntypes, cutoff)), nil
}

// stiwebLambda builds the trailing lambda record. The lambda values
// are never randomized; potfit expects the 2 0 3 defaults as a start
func stiwebLambda(ntypes int, cutoff float64) *Column {
	var params []Param
	for i := 0; i < ntypes; i++ {
		for j := 0; j < ntypes; j++ {
			for k := j; k < ntypes; k++ {
				params = append(params, Param{
					Name:  fmt.Sprintf("lambda_%d%d%d", i, j, k),
					Value: 2,
					Min:   0,
					Max:   3,
				})
			}
		}
	}
	return &Column{Name: "stiweb_lambda", Cutoff: cutoff, Params: params}
}

// BuildTable assembles the potential table for conf, dispatching to
// the fixed-form builders for tersoff and stiweb and to the function
// list parser for everything else, and enforces that the result has
// exactly the number of columns the model formula requires
func BuildTable(conf Config, rng *Rand) (*Table, error) {
	cols := Cols(conf.Model, conf.Ntypes)
	if cols == 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownModel, conf.Model)
	}
	var (
		table []*Column
		err   error
	)
	switch conf.Model {
	case "tersoff":
		table, err = TersoffTable(conf.Ntypes, conf.Cutoff, rng)
	case "stiweb":
		table, err = StiwebTable(conf.Ntypes, conf.Cutoff, rng)
	default:
		if len(conf.Functions) == 0 {
			return nil, fmt.Errorf("%w for the %s model",
				ErrNoFunctions, conf.Model)
		}
		table, err = ParseFunctions(
			conf.Functions, conf.Cutoff, conf.Global, rng,
		)
	}
	if err != nil {
		return nil, err
	}
	if len(table) != cols {
		return nil, fmt.Errorf(
			"%w: %s with %d atom types requires %d, got %d",
			ErrWrongCount, conf.Model, conf.Ntypes, cols, len(table),
		)
	}
	return &Table{
		Model:   conf.Model,
		Ntypes:  conf.Ntypes,
		Cutoff:  conf.Cutoff,
		Columns: table,
		ChemPot: conf.ChemPot,
		Global:  conf.Global,
		Rand:    rng,
	}, nil
}
