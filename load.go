package main

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// RawConf is the TOML parameter file as written by the user. The
// function list is a single whitespace-separated string to keep the
// file close to the command line it replaces
type RawConf struct {
	Ntypes    int
	Model     string
	Cutoff    float64
	Global    bool
	Randomize bool
	ChemPot   bool
	Functions string
	Outfile   string
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.Ntypes = rc.Ntypes
	conf.Model = rc.Model
	conf.Cutoff = rc.Cutoff
	conf.Global = rc.Global
	conf.Randomize = rc.Randomize
	conf.ChemPot = rc.ChemPot
	conf.Functions = strings.Fields(rc.Functions)
	conf.Outfile = rc.Outfile
	return
}

// Config is the validated input to the table-building pipeline,
// whether it came from flags or from a parameter file
type Config struct {
	Ntypes    int
	Model     string
	Cutoff    float64
	Global    bool
	Randomize bool
	ChemPot   bool
	Functions []string
	Outfile   string
}

func LoadConfig(filename string) Config {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		panic(err)
	}
	cont, err := io.ReadAll(f)
	if err != nil {
		panic(err)
	}
	// Defaults
	rc := RawConf{
		Ntypes: 1,
		Model:  "pair",
		Cutoff: 6.0,
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		panic(err)
	}
	return rc.ToConfig()
}
