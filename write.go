/*
 * write.go, part of gonerdss.
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

package nerdss

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// InpName is the name of the reaction-diffusion parameter file written by WriteFiles.
const InpName = "parm.inp"

// SimParams are the simulation parameters written to the parameter
// and molecule files. They are not used by the geometry.
type SimParams struct {
	NItr         int
	TimeStep     float64 //microseconds
	TimeWrite    int
	TrajWrite    int
	PDBWrite     int
	RestartWrite int
	WaterBox     [3]float64 //nm
	Copies       int        //copies of each molecule
	KOn          float64    //nm^3/us
	KOff         float64    //1/s
	D            [3]float64 //translational diffusion, nm^2/us
	Dr           [3]float64 //rotational diffusion, rad^2/us
}

// DefaultSimParams returns reasonable simulation parameters.
func DefaultSimParams() SimParams {
	return SimParams{
		NItr:         1000000,
		TimeStep:     0.1,
		TimeWrite:    1000,
		TrajWrite:    1000000,
		PDBWrite:     1000,
		RestartWrite: 100000,
		WaterBox:     [3]float64{500, 500, 500},
		Copies:       10,
		KOn:          120,
		KOff:         3,
		D:            [3]float64{12, 12, 12},
		Dr:           [3]float64{0.5, 0.5, 0.5},
	}
}

func fvec(v [3]float64) string {
	return fmt.Sprintf("[%g, %g, %g]", v[0], v[1], v[2])
}

func r3vec(v r3.Vec) string {
	return fmt.Sprintf("[%.6f, %.6f, %.6f]", v.X, v.Y, v.Z)
}

// Reaction returns the reaction string for the binding between c1 and c2.
func Reaction(c1, c2 string) string {
	s1, s2 := SiteLabel(c2), SiteLabel(c1)
	return fmt.Sprintf("%s(%s) + %s(%s) <-> %s(%s!1).%s(%s!1)", c1, s1, c2, s2, c1, s1, c2, s2)
}

// WriteInp writes the reaction-diffusion parameter file for M to w.
func WriteInp(w io.Writer, M *Model, p SimParams) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "# Input file\n\n")
	fmt.Fprintf(out, "start parameters\n")
	fmt.Fprintf(out, "    nItr = %d\n", p.NItr)
	fmt.Fprintf(out, "    timeStep = %g\n", p.TimeStep)
	fmt.Fprintf(out, "    timeWrite = %d\n", p.TimeWrite)
	fmt.Fprintf(out, "    trajWrite = %d\n", p.TrajWrite)
	fmt.Fprintf(out, "    pdbWrite = %d\n", p.PDBWrite)
	fmt.Fprintf(out, "    restartWrite = %d\n", p.RestartWrite)
	fmt.Fprintf(out, "end parameters\n\n")
	fmt.Fprintf(out, "start boundaries\n")
	fmt.Fprintf(out, "    WaterBox = %s\n", fvec(p.WaterBox))
	fmt.Fprintf(out, "end boundaries\n\n")
	fmt.Fprintf(out, "start molecules\n")
	for _, c := range M.Chains {
		fmt.Fprintf(out, "    %s : %d\n", c.ID, p.Copies)
	}
	fmt.Fprintf(out, "end molecules\n\n")
	fmt.Fprintf(out, "start reactions\n")
	for i, b := range M.Bindings {
		c := b.Chains()
		if i > 0 {
			fmt.Fprintf(out, "\n")
		}
		fmt.Fprintf(out, "    #### %s - %s ####\n", c[0], c[1])
		fmt.Fprintf(out, "    %s\n", Reaction(c[0], c[1]))
		fmt.Fprintf(out, "    onRate3Dka = %g\n", p.KOn)
		fmt.Fprintf(out, "    offRatekb = %g\n", p.KOff)
		fmt.Fprintf(out, "    sigma = %.6f\n", b.Site.Sigma)
		fmt.Fprintf(out, "    norm1 = %s\n", r3vec(b.Normals[0]))
		fmt.Fprintf(out, "    norm2 = %s\n", r3vec(b.Normals[1]))
		a := b.Geometry.Angles()
		s := make([]string, len(a))
		for j, v := range a {
			s[j] = FormatAngle(v)
		}
		fmt.Fprintf(out, "    assocAngles = [%s]\n", strings.Join(s, ", "))
	}
	fmt.Fprintf(out, "end reactions\n")
	if err := out.Flush(); err != nil {
		return newCError(ErrIO, err.Error(), "WriteInp")
	}
	return nil
}

// WriteMol writes the molecule file for the chain id of M to w. The positions of the
// sites are given relative to the COM of the chain.
func WriteMol(w io.Writer, M *Model, id string, p SimParams) error {
	c := M.Chain(id)
	if c == nil {
		return newCError(ErrInvalidInput, fmt.Sprintf("no chain %s in model", id), "WriteMol")
	}
	sites := M.Sites(id)
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "##\n# %s molecule information file\n##\n\n", id)
	fmt.Fprintf(out, "Name = %s\n", id)
	fmt.Fprintf(out, "checkOverlap = true\n\n")
	fmt.Fprintf(out, "# translational diffusion constants\n")
	fmt.Fprintf(out, "D = %s\n\n", fvec(p.D))
	fmt.Fprintf(out, "# rotational diffusion constants\n")
	fmt.Fprintf(out, "Dr = %s\n\n", fvec(p.Dr))
	fmt.Fprintf(out, "# Coordinates, with states below, or not\n")
	fmt.Fprintf(out, "COM   %10.4f %10.4f %10.4f\n", 0.0, 0.0, 0.0)
	for _, s := range sites {
		d := r3.Sub(s.Pos, c.COM)
		fmt.Fprintf(out, "%-5s %10.4f %10.4f %10.4f\n", s.Label, d.X, d.Y, d.Z)
	}
	fmt.Fprintf(out, "\nbonds = %d\n", len(sites))
	for _, s := range sites {
		fmt.Fprintf(out, "COM %s\n", s.Label)
	}
	if err := out.Flush(); err != nil {
		return newCError(ErrIO, err.Error(), "WriteMol")
	}
	return nil
}

// WriteFiles writes the parameter file and one molecule file per chain of M
// into the directory dir, which is created if needed.
func WriteFiles(dir string, M *Model, p SimParams) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newCError(ErrIO, err.Error(), "WriteFiles")
	}
	write := func(name string, f func(io.Writer) error) error {
		out, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return newCError(ErrIO, err.Error(), "WriteFiles")
		}
		if err := f(out); err != nil {
			out.Close()
			return errDecorate(err, "WriteFiles")
		}
		if err := out.Close(); err != nil {
			return newCError(ErrIO, err.Error(), "WriteFiles")
		}
		return nil
	}
	if err := write(InpName, func(w io.Writer) error { return WriteInp(w, M, p) }); err != nil {
		return err
	}
	for _, c := range M.Chains {
		id := c.ID
		if err := write(id+".mol", func(w io.Writer) error { return WriteMol(w, M, id, p) }); err != nil {
			return err
		}
	}
	return nil
}
