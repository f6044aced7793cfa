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
 */

/*Package translo is the main package of the translo library. It extracts per-monomer
displacement series from polymer translocation simulations: coarse-grained runs where a
chain is driven through a pore in a wall, recorded as periodic coordinate dumps.



	**translo Capabilities**


    Reads LAMMPS text dumps (package traj/lammpstrj), plain or compressed with
	gzip or zstandard, remapping the atom records of every dump to a canonical
	order so a monomer keeps one index for the whole run.

    Assembles the per-dump frames into a dense atom x dump displacement matrix.

    Finds the translocation event: the first time, in recording order, that any
	monomer reached the wall entrance, with ties inside a dump going to the
	lowest monomer index.

    Normalizes displacements by a reference length (the Flory radius of the
	chain, by default) and converts dump indexes to physical times anchored
	at the crossing.

    Derives the head, tail and front-monomer displacement series used to
	characterize a run.

    Processes whole directories of runs (package batch), sequentially or
	concurrently, keeping each file's outcome and errors separate.

    Plots the series of several runs in one figure (package transplot, using
	the gonum plot library).



The time-ordered scan runs on native units, strictly before any normalization; keep
that ordering if you assemble the pipeline from its parts instead of calling Process
or the batch package.*/
package translo
