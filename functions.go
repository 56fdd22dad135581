package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Param is one adjustable parameter of an analytic potential
// function, with its starting value and fitting bounds
type Param struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

func (p Param) String() string {
	return fmt.Sprintf(
		"%s %g %g %g\n",
		p.Name, p.Value, p.Min, p.Max,
	)
}

// Smoothing selects how a function's cutoff behavior is smoothed: not
// at all, with the column's own order parameter, or with the global
// one shared across the table
type Smoothing int

const (
	SmoothNone Smoothing = iota
	SmoothFixed
	SmoothGlobal
)

// functions is the catalog of analytic function shapes, keyed by the
// identifier used in selector tokens and in the output `type` line.
// Each entry is the parameter layout copied into fresh Columns. The
// tersoff_* and stiweb_* shapes are normally reached only through the
// fixed-form table builders
var functions = map[string][]Param{
	"lj":     {{"epsilon", 0.1, 0, 1}, {"sigma", 2.5, 1, 4}},
	"morse":  {{"d_e", 0.1, 0, 1}, {"a", 2, 1, 5}, {"r_e", 2.5, 1, 5}},
	"ms":     {{"d_e", 0.1, 0, 1}, {"a", 2, 1, 5}, {"r_0", 2.5, 1, 5}},
	"buck":   {{"a", 1, 0, 100}, {"sigma", 1, 0.5, 5}, {"c", 1, 0, 10}},
	"born": {
		{"alpha", 1, 0, 100}, {"beta", 2, 1, 10}, {"sigma", 2.5, 1, 4},
		{"c", 1, 0, 10}, {"d", 1, 0, 10},
	},
	"softshell": {{"alpha", 1, 0.1, 10}, {"beta", 2, 1, 5}},
	"eopp": {
		{"c_1", 15, 0.5, 10000}, {"eta_1", 6, 1, 20},
		{"c_2", 5, -100, 100}, {"eta_2", 3, 1, 10},
		{"k", 2.5, 0, 6}, {"phi", 3, 0, 6.3},
	},
	"eopp_exp": {
		{"c_1", 15, 0.5, 10000}, {"eta_1", 6, 1, 20},
		{"c_2", 5, -100, 100}, {"eta_2", 3, 1, 10},
		{"k", 2.5, 0, 6}, {"phi", 3, 0, 6.3},
	},
	"meopp": {
		{"c_1", 15, 0.5, 10000}, {"eta_1", 6, 1, 20},
		{"c_2", 5, -100, 100}, {"eta_2", 3, 1, 10},
		{"k", 2.5, 0, 6}, {"phi", 3, 0, 6.3},
		{"r_0", 2.5, 0.5, 6},
	},
	"power_decay": {{"a", 1, 0, 10}, {"b", 2, 1, 10}},
	"exp_decay":   {{"a", 1, 0, 10}, {"b", 2, 1, 10}},
	"mexp_decay":  {{"a", 1, 0, 10}, {"b", 2, 1, 10}, {"r_0", 2.5, 0.5, 6}},
	"bjs":         {{"f_0", -0.2, -10, 0}, {"gamma", 2, 0.1, 5}, {"f_1", 0, -1, 1}},
	"parabola":    {{"a", 1, -10, 10}, {"b", 1, -10, 10}, {"c", 1, -10, 10}},
	"csw": {
		{"a_1", 0.2, -2, 2}, {"a_2", 0.2, -2, 2},
		{"alpha", 2, 1, 6}, {"beta", 3, 0.5, 5},
	},
	"csw2": {
		{"a", 0.2, -2, 2}, {"alpha", 2, 1, 6},
		{"beta", 3, 0.5, 5}, {"r_0", 2.5, 0.5, 6},
	},
	"universal": {
		{"f_0", -1, -10, 0}, {"p", 1, 0.1, 5},
		{"q", 2, 0.1, 5}, {"f_1", 0, -1, 1},
	},
	"const": {{"c", 1, -10, 10}},
	"sqrt":  {{"f_0", 1, -10, 10}, {"p", 1, 0.1, 5}},
	"strmm": {
		{"a", 1, -10, 10}, {"b", 1, -10, 10}, {"c", 1, -10, 10},
		{"d", 1, -10, 10}, {"e", 1, -10, 10},
	},
	"double_morse": {
		{"e_1", 0.1, 0, 1}, {"a_1", 2, 1, 5}, {"r_1", 2.5, 1, 5},
		{"e_2", 0.1, 0, 1}, {"a_2", 2, 1, 5}, {"r_2", 3, 1, 5},
		{"delta", 0, -1, 1},
	},
	"double_exp": {
		{"a", 0.1, 0, 1}, {"beta_1", 2, 1, 10},
		{"beta_2", 1, 1, 10}, {"r_0", 2.5, 0.5, 6},
	},
	"poly_5": {
		{"f_0", 0, -5, 5}, {"f_2", 1, -5, 5}, {"q_1", 1, -5, 5},
		{"q_2", 1, -5, 5}, {"q_3", 1, -5, 5},
	},
	"exp_plus": {{"a", 1, 0, 10}, {"b", 2, 1, 10}, {"c", 0, -5, 5}},
	"tersoff_pot": {
		{"A", 200, 100, 10000}, {"B", 100, 50, 1000},
		{"lambda", 2, 1, 10}, {"mu", 1, 0.5, 5},
		{"gamma", 0.1, 0.001, 1}, {"n", 1, 0.5, 10},
		{"c", 100, 1, 100000}, {"d", 10, 0.5, 100},
		{"h", -0.5, -1, 1}, {"S", 2.5, 1, 5}, {"R", 2, 0.5, 4},
	},
	"tersoff_mix": {{"chi", 1, 0.5, 2}, {"omega", 1, 0.5, 2}},
	"stiweb_2": {
		{"A", 10, 0, 100}, {"B", 1, 0, 10}, {"p", 4, 0, 10},
		{"q", 0, 0, 10}, {"delta", 0, -10, 10}, {"a_1", 1.8, 0, 5},
	},
	"stiweb_3": {{"gamma", 1, 0, 5}, {"a_2", 1.8, 0, 5}},
}

// Column is one functional slot in the potential table: a catalog
// shape bound to a cutoff, a smoothing mode, and its own copy of the
// parameter layout
type Column struct {
	Name   string
	Cutoff float64
	Smooth Smoothing
	Params []Param
}

// NewColumn instantiates a fresh Column for the named catalog
// function. Each call returns an independent copy of the parameter
// layout so that repeated instances can be randomized separately
func NewColumn(name string) (*Column, error) {
	layout, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFunction, name)
	}
	params := make([]Param, len(layout))
	copy(params, layout)
	return &Column{Name: name, Params: params}, nil
}

// Configure sets the cutoff and smoothing mode on c and, when rng is
// non-nil, redraws every starting value uniformly within its bounds.
// Fixed-order smoothing appends the column's own order parameter;
// global-order columns reference the shared one at render time
func (c *Column) Configure(cutoff float64, smooth Smoothing, rng *Rand) {
	c.Cutoff = cutoff
	c.Smooth = smooth
	if smooth == SmoothFixed {
		c.Params = append(c.Params, Param{"h", 1, 0.5, 2})
	}
	if rng != nil {
		for i := range c.Params {
			c.Params[i].Value = rng.Uniform(
				c.Params[i].Min, c.Params[i].Max,
			)
		}
	}
}

func (c *Column) String() string {
	var buf strings.Builder
	name := c.Name
	if c.Smooth != SmoothNone {
		name += "_sc"
	}
	fmt.Fprintf(&buf, "type %s\n", name)
	fmt.Fprintf(&buf, "cutoff %g\n", c.Cutoff)
	for _, p := range c.Params {
		buf.WriteString(p.String())
	}
	if c.Smooth == SmoothGlobal {
		buf.WriteString("h!\n")
	}
	return buf.String()
}

// ListFunctions writes the catalog, sorted by name, to w
func ListFunctions(w io.Writer) {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "available analytic functions:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %2d parameters\n",
			name, len(functions[name]),
		)
	}
}
