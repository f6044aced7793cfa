/*
 * event.go, part of translo.
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

// Crossing identifies the first time any atom of a trajectory reached the
// wall entrance: Atom is the row of that atom in the canonical order, Dump
// the column of the dump where it happened.
type Crossing struct {
	Atom int
	Dump int
}

// FirstCrossing scans the trajectory in time order and, within each dump, in
// atom order, and returns the first cell whose coordinate is >= x1. Ties
// within a dump go to the lowest atom index. The trajectory must still be in
// native units; scanning a normalized one would compare against the wrong
// scale, so it is refused.
//
// If no atom ever reaches x1 the returned error implements NoCrossing, which
// callers should filter before treating the error as a failure.
func FirstCrossing(tr *Trajectory, x1 float64) (*Crossing, error) {
	if tr == nil {
		return nil, CError{"nil trajectory", []string{"FirstCrossing"}}
	}
	if tr.Normalized() {
		return nil, CError{"refusing to scan a normalized trajectory against a native-units threshold", []string{"FirstCrossing"}}
	}
	m := tr.Meta()
	for t := 0; t < m.NDumps; t++ {
		for i := 0; i < m.NAtoms; i++ {
			if tr.At(i, t) >= x1 {
				return &Crossing{Atom: i, Dump: t}, nil
			}
		}
	}
	return nil, noCrossingError{x1: x1, deco: []string{"FirstCrossing"}}
}
