/*
 * doc.go, part of translo.
 *
 * Copyright 2023 Johan Venstrom <jvensatprotondotme>
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
 *
 */

//Package lammpstrj reads the text dumps written by the LAMMPS "dump custom"
//command, reduced to the one number per atom per snapshot that a
//translocation analysis needs. Files may be plain text or compressed with
//gzip (.gz) or zstandard (.zst).

/******************** Format, as far as this package cares  ************************

A dump is a sequence of chunks, one per recorded snapshot, all with the same
shape: a fixed number of header lines followed by one line per atom. With the
usual 9-line header the chunk looks like

	ITEM: TIMESTEP
	500
	ITEM: NUMBER OF ATOMS
	64
	ITEM: BOX BOUNDS pp pp fp
	-40.0 40.0
	-40.0 40.0
	0.0 80.0
	ITEM: ATOMS id x y z vx vy vz
	12 1.071 2.337 5.09 ...
	...

Only three header values are used: the atom count (line 3 of the first chunk,
zero-based), which fixes the chunk length for the whole file, and the
timestep of the second chunk, which fixes the dump interval under the
assumption that the first one sits at step zero. The tag lines and the box
bounds are carried along purely as structure, their content is not checked.

Each atom record contributes its identifier and one coordinate, at tunable
field positions (see Layout). Identifiers need not be sorted nor keep a
stable record order between chunks; the first chunk defines the set, and
every later chunk must contain exactly that set, once each.

A trailing chunk cut short by the end of the run is dropped. A file too short
to yield the atom count or the dump interval is reported with a non-critical
error, so directory sweeps can skip it and move on.

***********************************************************************************/

package lammpstrj
