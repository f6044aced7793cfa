/*
 * series.go, part of translo.
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

import "fmt"

// Series holds the per-dump output of one analyzed trajectory. All four
// slices have one element per recorded dump. Time is in ns, with its zero at
// the crossing dump, so dumps before the crossing carry negative times.
// Head, Tail and Front are normalized displacements: the first atom of the
// canonical order, the last one, and the atom that crossed first.
type Series struct {
	Time  []float64
	Head  []float64
	Tail  []float64
	Front []float64
}

// DeriveSeries extracts the time axis and the head, tail and front
// displacement series from a normalized trajectory and its crossing.
// The trajectory must be normalized first (the series are reported in
// reference-length units) and ev must be an actual crossing; deriving series
// for a run that never crossed is meaningless and gets refused rather than
// filled with a placeholder.
func DeriveSeries(tr *Trajectory, ev *Crossing, options ...*Options) (*Series, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if tr == nil {
		return nil, CError{"nil trajectory", []string{"DeriveSeries"}}
	}
	if ev == nil {
		return nil, CError{"no crossing to anchor the time axis on", []string{"DeriveSeries"}}
	}
	if !tr.Normalized() {
		return nil, CError{"trajectory must be normalized before deriving series", []string{"DeriveSeries"}}
	}
	m := tr.Meta()
	if ev.Atom < 0 || ev.Atom >= m.NAtoms || ev.Dump < 0 || ev.Dump >= m.NDumps {
		return nil, CError{fmt.Sprintf("crossing (atom %d, dump %d) outside a %d x %d trajectory", ev.Atom, ev.Dump, m.NAtoms, m.NDumps), []string{"DeriveSeries"}}
	}
	s := new(Series)
	s.Head = tr.Row(nil, 0)
	s.Tail = tr.Row(nil, m.NAtoms-1)
	s.Front = tr.Row(nil, ev.Atom)
	s.Time = make([]float64, m.NDumps)
	unit := o.Timestep() * float64(m.DumpStep)
	for t := range s.Time {
		s.Time[t] = float64(t-ev.Dump) * unit
	}
	return s, nil
}
