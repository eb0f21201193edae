/*
 * main.go, part of gonerdss.
 *
 * Copyright 2024 The gonerdss Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// pdb2nerdss builds the input files for a NERDSS reaction-diffusion
// simulation from a multi-chain PDB structure.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	nerdss "github.com/nerdss/gonerdss"
	"github.com/nerdss/gonerdss/chaingraph"
	"github.com/nerdss/gonerdss/rdplot"
)

// Qerr logs err and exits if err is not nil.
func Qerr(err error) {
	if err != nil {
		log.Fatalf("pdb2nerdss: %v", err)
	}
}

func main() {
	config := flag.String("config", "", "TOML file with conversion and simulation options")
	out := flag.String("out", ".", "Directory for the output files")
	cutoff := flag.Float64("cutoff", nerdss.DefaultCutoff, "Contact distance between atoms, in nm")
	center := flag.Bool("center", false, "Put the COM of each molecule at the origin of its own frame")
	interactive := flag.Bool("interactive", false, "Ask for the normal vector of each site and for changes in sigma")
	sigma := flag.Float64("sigma", 0, "If positive, the distance between the sites of every interaction, in nm")
	plots := flag.Bool("plots", false, "Produce a contact map and a distance histogram for each interaction")
	histos := flag.Bool("histo", false, "Print histograms of the contact distances between chains")
	jsonout := flag.Bool("json", false, "Also write the model in JSON format to model.json")
	chains := flag.String("chains", "", "Use only these chains, separated by commas (ex. A,B,D)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "pdb2nerdss: reaction-diffusion model from a PDB structure.\n Usage:\n  %s [flags] structure.pdb[.gz|.zst]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	cfg := new(nerdss.Config)
	if *config != "" {
		var err error
		cfg, err = nerdss.LoadConfig(*config)
		Qerr(err)
	}
	opts, err := cfg.Options()
	Qerr(err)
	params, err := cfg.SimParams()
	Qerr(err)
	//flags given explicitly take precedence over the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cutoff":
			opts.Cutoff = *cutoff
		case "center":
			opts.Center = *center
		case "sigma":
			opts.AllSigma = *sigma
		}
	})
	if *interactive {
		opts.Provider = nerdss.NewConsole(os.Stdin, os.Stdout)
	}
	S, err := nerdss.PDBFileRead(args[0])
	Qerr(err)
	if *chains != "" {
		S, err = S.Select(strings.Split(*chains, ","))
		Qerr(err)
	}
	log.Printf("pdb2nerdss: read %d atoms in %d chains: %v", S.Len(), len(S.Chains), S.IDs())
	M, err := nerdss.Convert(S, opts)
	Qerr(err)
	ints := M.Interactions()
	G := chaingraph.New(S.IDs(), ints)
	for _, v := range G.Complexes() {
		if len(v) > 1 {
			log.Printf("pdb2nerdss: chains %v form one complex", v)
		}
	}
	if iso := G.Isolated(); len(iso) > 0 {
		log.Printf("pdb2nerdss: chains %v don't interact with any other chain", iso)
	}
	if *histos {
		H := nerdss.ContactHistograms(S, ints, nil)
		l := H.Labels()
		for i := range l {
			for j := i + 1; j < len(l); j++ {
				D := H.View(i, j)
				if D.Total() == 0 {
					continue
				}
				fmt.Printf("%s: %d contacts, most at %.3f nm\n", D.Label(), D.Total(), D.Mode())
			}
		}
		H.NormalizeAll()
		fmt.Println(H)
	}
	for _, b := range M.Bindings {
		c := b.Chains()
		fmt.Printf("%s-%s: %d residue pairs, %s\n", c[0], c[1], len(b.Interaction.Residues), b.Geometry.Degrees())
	}
	Qerr(nerdss.WriteFiles(*out, M, params))
	if *jsonout {
		f, err := os.Create(filepath.Join(*out, "model.json"))
		Qerr(err)
		Qerr(nerdss.WriteJSON(f, M))
		Qerr(f.Close())
	}
	if !*plots {
		return
	}
	for _, in := range ints {
		name := in.Chains[0] + "-" + in.Chains[1]
		Qerr(rdplot.ContactMap(in, "Contacts "+name, filepath.Join(*out, name+"_map.png")))
		Qerr(rdplot.DistanceHisto(in.Distances(), 10, "Contact distances "+name, filepath.Join(*out, name+"_dist.png")))
	}
}
