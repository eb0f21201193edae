/*
 * config.go, part of gonerdss.
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
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config is the content of a TOML configuration file. Zero values mean the
// default for the corresponding option. Example:
//
//	cutoff = 0.3
//	center = true
//	all_sigma = 1.0
//
//	[normals]
//	"A:B" = [0.0, 1.0, 0.0]
//
//	[sigmas]
//	"A-C" = 0.5
//
//	[simulation]
//	n_itr = 500000
//	water_box = [300.0, 300.0, 300.0]
type Config struct {
	Cutoff        float64              `toml:"cutoff"`
	Center        bool                 `toml:"center"`
	DefaultNormal []float64            `toml:"default_normal"`
	Normals       map[string][]float64 `toml:"normals"`
	Sigmas        map[string]float64   `toml:"sigmas"`
	AllSigma      float64              `toml:"all_sigma"`
	MaxAsk        int                  `toml:"max_ask"`
	Sim           SimConfig            `toml:"simulation"`
}

// SimConfig is the simulation section of a configuration file.
type SimConfig struct {
	NItr         int       `toml:"n_itr"`
	TimeStep     float64   `toml:"time_step"`
	TimeWrite    int       `toml:"time_write"`
	TrajWrite    int       `toml:"traj_write"`
	PDBWrite     int       `toml:"pdb_write"`
	RestartWrite int       `toml:"restart_write"`
	WaterBox     []float64 `toml:"water_box"`
	Copies       int       `toml:"copies"`
	KOn          float64   `toml:"kon"`
	KOff         float64   `toml:"koff"`
	D            []float64 `toml:"d"`
	Dr           []float64 `toml:"dr"`
}

// ReadConfig decodes a TOML configuration from r.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := new(Config)
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, newCError(ErrInvalidInput, err.Error(), "ReadConfig")
	}
	return cfg, nil
}

// LoadConfig reads the TOML configuration file name.
func LoadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newCError(ErrIO, err.Error(), "LoadConfig")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	return cfg, errDecorate(err, "LoadConfig")
}

func toVec(s []float64, name string) (r3.Vec, error) {
	if len(s) != 3 {
		return r3.Vec{}, newCError(ErrInvalidInput, fmt.Sprintf("%s needs 3 components, got %d", name, len(s)), "toVec")
	}
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}

func to3(s []float64, def [3]float64, name string) ([3]float64, error) {
	if len(s) == 0 {
		return def, nil
	}
	if len(s) != 3 {
		return def, newCError(ErrInvalidInput, fmt.Sprintf("%s needs 3 components, got %d", name, len(s)), "to3")
	}
	return [3]float64{s[0], s[1], s[2]}, nil
}

// Options returns the conversion options set in C. Options not in C
// keep their default values.
func (C *Config) Options() (Options, error) {
	O := DefaultOptions()
	if C.Cutoff > 0 {
		O.Cutoff = C.Cutoff
	}
	O.Center = C.Center
	O.AllSigma = C.AllSigma
	O.MaxAsk = C.MaxAsk
	var err error
	if len(C.DefaultNormal) > 0 {
		if O.DefaultNormal, err = toVec(C.DefaultNormal, "default_normal"); err != nil {
			return O, errDecorate(err, "Options")
		}
	}
	if len(C.Normals) > 0 {
		O.Normals = make(map[string]r3.Vec, len(C.Normals))
		for k, v := range C.Normals {
			if O.Normals[k], err = toVec(v, "normal "+k); err != nil {
				return O, errDecorate(err, "Options")
			}
		}
	}
	if len(C.Sigmas) > 0 {
		O.Sigmas = make(map[string]float64, len(C.Sigmas))
		for k, v := range C.Sigmas {
			O.Sigmas[k] = v
		}
	}
	return O, nil
}

// SimParams returns the simulation parameters set in C, with defaults for
// those not set.
func (C *Config) SimParams() (SimParams, error) {
	P := DefaultSimParams()
	s := C.Sim
	setInt := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	setFloat := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	setInt(&P.NItr, s.NItr)
	setInt(&P.TimeWrite, s.TimeWrite)
	setInt(&P.TrajWrite, s.TrajWrite)
	setInt(&P.PDBWrite, s.PDBWrite)
	setInt(&P.RestartWrite, s.RestartWrite)
	setInt(&P.Copies, s.Copies)
	setFloat(&P.TimeStep, s.TimeStep)
	setFloat(&P.KOn, s.KOn)
	setFloat(&P.KOff, s.KOff)
	var err error
	if P.WaterBox, err = to3(s.WaterBox, P.WaterBox, "water_box"); err != nil {
		return P, errDecorate(err, "SimParams")
	}
	if P.D, err = to3(s.D, P.D, "d"); err != nil {
		return P, errDecorate(err, "SimParams")
	}
	if P.Dr, err = to3(s.Dr, P.Dr, "dr"); err != nil {
		return P, errDecorate(err, "SimParams")
	}
	return P, nil
}
