package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewColumn(t *testing.T) {
	col, err := NewColumn("lj")
	if err != nil {
		t.Fatalf("unexpected error %v\n", err)
	}
	col.Params[0].Value = 99
	if functions["lj"][0].Value != 0.1 {
		t.Errorf("catalog layout mutated to %v\n", functions["lj"][0])
	}
}

func TestColumnString(t *testing.T) {
	col, _ := NewColumn("lj")
	col.Configure(6.0, SmoothNone, nil)
	got := col.String()
	want := `type lj
cutoff 6
epsilon 0.1 0 1
sigma 2.5 1 4
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestColumnStringSmooth(t *testing.T) {
	col, _ := NewColumn("lj")
	col.Configure(6.0, SmoothFixed, nil)
	got := col.String()
	want := `type lj_sc
cutoff 6
epsilon 0.1 0 1
sigma 2.5 1 4
h 1 0.5 2
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}

	col, _ = NewColumn("lj")
	col.Configure(6.0, SmoothGlobal, nil)
	got = col.String()
	want = `type lj_sc
cutoff 6
epsilon 0.1 0 1
sigma 2.5 1 4
h!
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestConfigureRandomize(t *testing.T) {
	col, _ := NewColumn("eopp")
	col.Configure(6.0, SmoothNone, NewRand(42))
	for i, p := range col.Params {
		if p.Value < p.Min || p.Value >= p.Max {
			t.Errorf("param %d: %v outside [%v, %v)\n",
				i, p.Value, p.Min, p.Max)
		}
	}
}

func TestListFunctions(t *testing.T) {
	var buf bytes.Buffer
	ListFunctions(&buf)
	got := buf.String()
	for _, name := range []string{"lj", "eopp", "tersoff_pot", "stiweb_2"} {
		if !strings.Contains(got, name) {
			t.Errorf("listing is missing %q\n", name)
		}
	}
}
