/*
 * interfaces.go, part of translo.
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

/*A translocation run only cares about one scalar per atom per dump (the coordinate
 * along the translocation axis), so trajectories here traffic in []float64 frames
 * rather than full coordinate matrices. Any source able to produce one such frame
 * per recorded dump, in a stable atom order, can feed the analysis.*/

// Traj is the interface for trajectory sources. A frame is one coordinate per
// atom, ordered by the source's canonical atom order, which must not change
// between frames.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into keep, or discards the frame if keep is nil.
	//The frame is still checked for correctness when discarded.
	Next(keep []float64) error

	//Returns the number of atoms per frame
	Len() int
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswith that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's

}

// NoCrossing is implemented by the error returned when no atom of a trajectory
// ever reaches the threshold. It is not a failure of the analysis, just a run
// where the polymer never translocated, so callers can filter it the same way
// they filter LastFrameError.
type NoCrossing interface {
	Error
	NoCrossingTermination() //does nothing, just to separate this interface from other Error's
}

// errors for the package translo itself.

// CError (Concrete Error) is the concrete error type for the translo package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// noCrossingError signals the (normal) absence of a threshold crossing.
type noCrossingError struct {
	x1   float64
	deco []string
}

func (err noCrossingError) Error() string {
	return fmt.Sprintf("translo: no atom ever reaches the threshold %4.3f", err.x1)
}

func (err noCrossingError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err noCrossingError) NoCrossingTermination() {}

// errDecorate annotates err with the caller's name, if err supports it, and
// wraps it in a CError if it doesn't.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{err.Error(), []string{caller}}
		return err2
	}
	err2.Decorate(caller)
	return err2
}
