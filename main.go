/*
makeapot generates starting potentials in the analytic potential
format read by potfit. Pick an interaction model and a number of atom
types, and either list the functions to put in each column of the
potential table or, for the fixed-form models (tersoff, stiweb), let
the model dictate the table.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

const help = `usage: makeapot [flags] [function ...]

The interaction models are pair, eam, adp, meam, stiweb, and tersoff.
A function is either a catalog name like "lj" or a repeated form like
"3*lj". A _sc suffix, as in "eopp_sc", requests cutoff smoothing.
The tersoff and stiweb models build their own tables and take no
function list.
Flags:
`

// Flags
var (
	ntypes  = flag.Int("n", 1, "number of atom types")
	model   = flag.String("i", "pair", "interaction model")
	cutoff  = flag.Float64("c", 6.0, "cutoff radius")
	global  = flag.Bool("g", false, "use a global cutoff smoothing parameter")
	random  = flag.Bool("r", false, "randomize the starting values")
	chemPot = flag.Bool("cp", false, "add chemical potentials (pair model only)")
	list    = flag.Bool("l", false, "list the models and available functions, then exit")
	parfile = flag.String("p", "", "read the settings from a TOML parameter `file`")
	outfile = flag.String("o", "", "write the potential to `file` instead of stdout")
)

// Errors
var (
	ErrUnknownModel    = errors.New("unrecognized interaction model")
	ErrNoFunctions     = errors.New("no potential functions given")
	ErrBadToken        = errors.New("malformed function selector")
	ErrUnknownFunction = errors.New("unknown function type")
	ErrWrongCount      = errors.New("wrong number of potential functions")
)

var models = []string{"pair", "eam", "adp", "meam", "stiweb", "tersoff"}

// ListModels writes the supported interaction models and their column
// counts for the current number of atom types to w
func ListModels(w io.Writer, ntypes int) {
	fmt.Fprintf(w, "interaction models (columns for %d atom types):\n", ntypes)
	for _, m := range models {
		fmt.Fprintf(w, "  %-8s %2d\n", m, Cols(m, ntypes))
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *list {
		ListModels(os.Stdout, *ntypes)
		ListFunctions(os.Stdout)
		return
	}
	conf := Config{
		Ntypes:    *ntypes,
		Model:     *model,
		Cutoff:    *cutoff,
		Global:    *global,
		Randomize: *random,
		ChemPot:   *chemPot,
		Functions: flag.Args(),
		Outfile:   *outfile,
	}
	if *parfile != "" {
		conf = LoadConfig(*parfile)
		if conf.Outfile == "" {
			conf.Outfile = *outfile
		}
	}
	if conf.Ntypes < 1 {
		log.Fatalf("invalid number of atom types %d, must be positive\n",
			conf.Ntypes)
	}
	if conf.Cutoff < 0 {
		log.Fatalf("invalid cutoff %g, must be non-negative\n", conf.Cutoff)
	}
	var rng *Rand
	if conf.Randomize {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	table, err := BuildTable(conf, rng)
	if err != nil {
		if errors.Is(err, ErrUnknownFunction) {
			ListFunctions(os.Stderr)
		}
		log.Fatal(err)
	}
	w := os.Stdout
	if conf.Outfile != "" {
		f, err := os.Create(conf.Outfile)
		if err != nil {
			log.Fatalf("failed to create %q: %v\n", conf.Outfile, err)
		}
		defer f.Close()
		w = f
	}
	if err := table.Write(w); err != nil {
		log.Fatal(err)
	}
}
