/*
 * trajectory.go, part of translo.
 *
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

package translo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Meta holds the per-file constants of a dump trajectory: how many atoms each
// dump records, how many complete dumps the file holds, and how many native
// simulation steps separate consecutive dumps.
type Meta struct {
	NAtoms   int
	NDumps   int
	DumpStep int
}

// Trajectory is a fully assembled single-axis trajectory: one row per atom, in
// the source's canonical order, one column per recorded dump. A Trajectory
// starts out in the native length units of the simulation and can be
// normalized, once, by a reference length.
type Trajectory struct {
	x          *mat.Dense
	meta       Meta
	normalized bool
}

// Assemble reads every frame of tr into a new Trajectory. The frames become
// the columns of the coordinate matrix, so a row traces one atom along the
// whole run. tr must yield at least meta.NDumps frames of meta.NAtoms
// coordinates each.
func Assemble(tr Traj, meta Meta) (*Trajectory, error) {
	if tr == nil {
		return nil, CError{"nil trajectory source", []string{"Assemble"}}
	}
	if meta.NAtoms <= 0 || meta.NDumps <= 0 {
		return nil, CError{fmt.Sprintf("unusable trajectory dimensions: %d atoms, %d dumps", meta.NAtoms, meta.NDumps), []string{"Assemble"}}
	}
	if tr.Len() != meta.NAtoms {
		return nil, CError{fmt.Sprintf("trajectory yields %d atoms per frame, metadata promises %d", tr.Len(), meta.NAtoms), []string{"Assemble"}}
	}
	x := mat.NewDense(meta.NAtoms, meta.NDumps, nil)
	frame := make([]float64, meta.NAtoms)
	for t := 0; t < meta.NDumps; t++ {
		err := tr.Next(frame)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				return nil, CError{fmt.Sprintf("trajectory ended at dump %d, metadata promises %d", t, meta.NDumps), []string{"Assemble"}}
			}
			return nil, errDecorate(err, "Assemble")
		}
		x.SetCol(t, frame)
	}
	return &Trajectory{x: x, meta: meta}, nil
}

// Meta returns the constants of the trajectory.
func (T *Trajectory) Meta() Meta {
	return T.meta
}

// At returns the coordinate of atom i at dump t.
func (T *Trajectory) At(i, t int) float64 {
	return T.x.At(i, t)
}

// Row fills dst with the whole displacement history of atom i and returns it.
// If dst is nil a new slice is allocated.
func (T *Trajectory) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, T.x)
}

// Normalized reports whether the coordinates have already been divided by a
// reference length.
func (T *Trajectory) Normalized() bool {
	return T.normalized
}

// Normalize divides every coordinate by the reference length rf, exactly once.
// Calling it on an already normalized Trajectory is an error, as the data
// would end up scaled twice.
func (T *Trajectory) Normalize(rf float64) error {
	if T.normalized {
		return CError{"trajectory is already normalized", []string{"Trajectory.Normalize"}}
	}
	if rf <= 0 {
		return CError{fmt.Sprintf("reference length must be positive, got %4.3f", rf), []string{"Trajectory.Normalize"}}
	}
	T.x.Scale(1/rf, T.x)
	T.normalized = true
	return nil
}
