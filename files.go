/*
 * files.go, part of gonerdss.
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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/nerdss/gonerdss/v3"
)

// AngstromPerNm converts the PDB coordinates to the length unit used everywhere else.
const AngstromPerNm = 10.0

// atomFields is the number of whitespace-separated tokens in a well-formed
// ATOM record: ATOM serial name resName chain resSeq x y z occupancy bfactor element
const atomFields = 12

//PDB reading family

// PDBRead reads the ATOM records of a PDB structure from pdb, until the end of
// the input or the first ENDMDL line. Chains are returned in the order in which
// they are first found. If fewer than two chains are found, the structure read
// is returned together with an error wrapping ErrSingleChain.
func PDBRead(pdb io.Reader) (*Structure, error) {
	S, err := pdbRead(pdb)
	return S, errDecorate(err, "PDBRead")
}

// PDBFileRead reads a PDB file. Files with the .gz or .zst extension are
// decompressed on the fly (gzip and z-standard, respectively). Other files are
// memory-mapped and read as plain text.
func PDBFileRead(pdbname string) (*Structure, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return nil, newCError(ErrIO, err.Error(), "PDBFileRead")
	}
	defer f.Close()
	var src io.Reader
	switch strings.ToLower(filepath.Ext(pdbname)) {
	case ".gz":
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, newCError(ErrParse, fmt.Sprintf("can't decompress %s: %v", pdbname, err), "PDBFileRead")
		}
		defer gz.Close()
		src = gz
	case ".zst":
		zs, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, newCError(ErrParse, fmt.Sprintf("can't decompress %s: %v", pdbname, err), "PDBFileRead")
		}
		defer zs.Close()
		src = zs
	default:
		info, err := f.Stat()
		if err != nil {
			return nil, newCError(ErrIO, err.Error(), "PDBFileRead")
		}
		//an empty file can't be mapped
		if info.Size() == 0 {
			src = f
			break
		}
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, newCError(ErrIO, err.Error(), "PDBFileRead")
		}
		defer m.Unmap()
		src = bytes.NewReader(m)
	}
	S, err := pdbRead(src)
	return S, errDecorate(err, "PDBFileRead")
}

// chainBuilder accumulates atoms and coordinates for one chain while reading.
type chainBuilder struct {
	atoms  []*Atom
	coords []float64
}

func pdbRead(pdb io.Reader) (*Structure, error) {
	builders := make(map[string]*chainBuilder)
	order := make([]string, 0, 2)
	scanner := bufio.NewScanner(pdb)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	index := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "ENDMDL" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "ATOM" {
			continue
		}
		at, c, err := parseAtomFields(fields)
		if err != nil {
			return nil, &ParseError{Line: lineno, Text: line, Reason: err.Error(), deco: []string{"pdbRead"}}
		}
		at.Index = index
		index++
		b, ok := builders[at.Chain]
		if !ok {
			b = new(chainBuilder)
			builders[at.Chain] = b
			order = append(order, at.Chain)
		}
		b.atoms = append(b.atoms, at)
		b.coords = append(b.coords, c[0], c[1], c[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, newCError(ErrIO, err.Error(), "pdbRead")
	}
	S := &Structure{Chains: make([]*Chain, 0, len(order))}
	for _, id := range order {
		b := builders[id]
		coords, err := v3.NewMatrix(b.coords)
		if err != nil {
			return nil, newCError(ErrInvalidInput, err.Error(), "pdbRead")
		}
		C, err := NewChain(id, b.atoms, coords)
		if err != nil {
			return nil, errDecorate(err, "pdbRead")
		}
		S.Chains = append(S.Chains, C)
	}
	if len(S.Chains) < 2 {
		return S, newCError(ErrSingleChain, fmt.Sprintf("found %d chain(s)", len(S.Chains)), "pdbRead")
	}
	return S, nil
}

// parseAtomFields reads the tokens of an ATOM record. Two layouts produced by
// fixed-width writers are corrected: an atom name that absorbed the residue
// name (one token less than expected), and a residue name that carries the
// atom name as a prefix. Anything else returns an error.
// The coordinates are returned in nm.
func parseAtomFields(f []string) (*Atom, [3]float64, error) {
	var c [3]float64
	at := new(Atom)
	var rest []string //chain, resSeq, x, y, z
	switch {
	case len(f) == atomFields:
		at.Name = f[2]
		at.ResName = f[3]
		if len(at.ResName) > 3 {
			trimmed := strings.TrimPrefix(at.ResName, at.Name)
			if trimmed == at.ResName || len(trimmed) != 3 {
				return nil, c, fmt.Errorf("malformed residue name %q for atom %q", f[3], f[2])
			}
			at.ResName = trimmed
		}
		rest = f[4:9]
	case len(f) == atomFields-1 && len(f[2]) > 3:
		l := len(f[2])
		at.Name = f[2][:l-3]
		at.ResName = f[2][l-3:]
		rest = f[3:8]
	default:
		return nil, c, fmt.Errorf("%d fields in record, expected %d", len(f), atomFields)
	}
	var err error
	at.ID, err = strconv.Atoi(f[1])
	if err != nil {
		return nil, c, fmt.Errorf("bad serial number %q", f[1])
	}
	at.Chain = rest[0]
	at.ResID, err = strconv.Atoi(rest[1])
	if err != nil {
		return nil, c, fmt.Errorf("bad residue number %q", rest[1])
	}
	for i := 0; i < 3; i++ {
		c[i], err = strconv.ParseFloat(rest[2+i], 64)
		if err != nil {
			return nil, c, fmt.Errorf("bad coordinate %q", rest[2+i])
		}
		c[i] /= AngstromPerNm
	}
	return at, c, nil
}
