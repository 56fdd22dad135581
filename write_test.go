package main

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"
)

func TestWriteTable(t *testing.T) {
	table, err := BuildTable(Config{
		Ntypes:    1,
		Model:     "pair",
		Cutoff:    6.0,
		ChemPot:   true,
		Functions: []string{"lj"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v\n", err)
	}
	var buf bytes.Buffer
	table.Write(&buf)
	got := buf.String()
	want := `#F 0 1
#T PAIR
#I 0
#E

cp_0 -1 10 0

type lj
cutoff 6
epsilon 0.1 0 1
sigma 2.5 1 4
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestWriteTableGlobal(t *testing.T) {
	table, err := BuildTable(Config{
		Ntypes:    1,
		Model:     "pair",
		Cutoff:    6.0,
		Global:    true,
		Functions: []string{"lj_sc"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v\n", err)
	}
	var buf bytes.Buffer
	table.Write(&buf)
	got := buf.String()
	want := `#F 0 1
#T PAIR
#I 0
#E

global 1
h 1 0.5 2

type lj_sc
cutoff 6
epsilon 0.1 0 1
sigma 2.5 1 4
h!
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

// the randomized global order parameter is drawn from [0.5, 2.0) and
// printed with two decimals
func TestWriteTableGlobalRandom(t *testing.T) {
	hline := regexp.MustCompile(`(?m)^h (\d\.\d\d) 0\.5 2$`)
	for seed := uint64(0); seed < 10; seed++ {
		table, err := BuildTable(Config{
			Ntypes:    1,
			Model:     "pair",
			Cutoff:    6.0,
			Global:    true,
			Randomize: true,
			Functions: []string{"lj"},
		}, NewRand(seed))
		if err != nil {
			t.Fatalf("unexpected error %v\n", err)
		}
		var buf bytes.Buffer
		table.Write(&buf)
		m := hline.FindStringSubmatch(buf.String())
		if m == nil {
			t.Fatalf("no global h line in\n%s", buf.String())
		}
		h, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			t.Fatalf("unexpected error %v\n", err)
		}
		// the draw is from [0.5, 2.0) but the printed value is
		// rounded to two decimals
		if h < 0.5 || h > 2.0 {
			t.Errorf("seed %d: h = %v outside [0.5, 2.0]\n", seed, h)
		}
	}
}

// the declared column count must match the number of emitted column
// blocks for every model, the fixed-form ones included
func TestWriteTableCounts(t *testing.T) {
	typeLine := regexp.MustCompile(`(?m)^type `)
	declared := regexp.MustCompile(`#F 0 (\d+)`)
	tests := []Config{
		{Ntypes: 2, Model: "pair", Cutoff: 6.0,
			Functions: []string{"3*lj"}},
		{Ntypes: 2, Model: "eam", Cutoff: 6.0,
			Functions: []string{"3*eopp", "2*csw", "2*universal"}},
		{Ntypes: 2, Model: "tersoff", Cutoff: 4.0},
		{Ntypes: 2, Model: "stiweb", Cutoff: 4.0},
		{Ntypes: 3, Model: "stiweb", Cutoff: 4.0},
	}
	for _, conf := range tests {
		table, err := BuildTable(conf, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error %v\n", conf.Model, err)
		}
		var buf bytes.Buffer
		table.Write(&buf)
		out := buf.String()
		m := declared.FindStringSubmatch(out)
		if m == nil {
			t.Fatalf("%s: no #F header in\n%s", conf.Model, out)
		}
		want, _ := strconv.Atoi(m[1])
		got := len(typeLine.FindAllString(out, -1))
		if got != want {
			t.Errorf("%s n=%d: got %d column blocks, header declares %d\n",
				conf.Model, conf.Ntypes, got, want)
		}
	}
}
