/*
 * doc.go, part of gonerdss.
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

/*
Package nerdss builds reaction-diffusion (NERDSS) models from protein
structures. A multi-chain structure is read from a PDB file (PDBRead,
PDBFileRead), the contacts between each pair of chains are found
(FindInteractions), each interaction is reduced to a pair of sites, one per
chain (ResolveSite), and the binding geometry of the pair is obtained as two
polar angles, two torsions and a dihedral (BindingAngles). Convert runs the
whole pipeline and returns a Model, which WriteFiles turns into a parameter
file and one molecule file per chain.

All lengths are in nm and all angles in radians. The coordinates in PDB
files, in Angstrom, are converted when read.

Values that can't be derived from the structure, such as the normal vector of
each site, come from Options, or from a Provider, like Console, which asks the user.
*/
package nerdss
