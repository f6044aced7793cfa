/*
 * lammpstrj.go, part of translo
 *
 * Copyright 2023 Johan Venstrom <jvensatprotondotme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package lammpstrj

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	translo "github.com/jvens/translo"
	"github.com/klauspost/compress/zstd"
)

// Layout pins down where, inside the fixed-shape chunk that a LAMMPS text
// dump repeats for every snapshot, the numbers this library cares about live.
// Header line indexes count from the first line of the chunk, field indexes
// count whitespace-separated fields from the left, all zero-based.
type Layout struct {
	HeaderLines int //lines of dump bookkeeping before the atom records
	NAtomsLine  int //header line holding the number of atoms
	StepLine    int //header line holding the native timestep of the snapshot
	IDField     int //atom-record field with the atom identifier
	CoordField  int //atom-record field with the tracked coordinate
}

// DefaultLayout returns the layout of the usual 9-line header produced by
// "dump ... custom id x y z ...", tracking the x coordinate.
func DefaultLayout() Layout {
	return Layout{HeaderLines: 9, NAtomsLine: 3, StepLine: 1, IDField: 0, CoordField: 1}
}

// Container for a LAMMPS text dump file.
type DumpReader struct {
	natoms   int
	ndumps   int
	step     int //native steps between consecutive dumps
	chunklen int //lines per dump: natoms plus the header
	readable bool
	filename string
	layout   Layout
	lines    []string
	ids      []int       //identifiers of the first chunk, sorted
	index    map[int]int //identifier -> row in the canonical order
	seen     []bool      //scratch for the per-chunk duplicate check
	pos      int         //next chunk to decode
}

// New opens a LAMMPS dump for reading and decodes its header: the atom count,
// the number of complete dumps the file holds, the dump interval in native
// steps, and the canonical atom order (the identifiers of the first chunk,
// sorted ascending). The whole file is read into memory and the handle closed
// before New returns.
//
// Files too short to yield that header come back as a non-critical error, as
// runs are routinely cut before producing anything usable; everything
// malformed in a file long enough is critical.
func New(name string, layout ...Layout) (*DumpReader, error) {
	D := new(DumpReader)
	D.filename = name
	D.layout = DefaultLayout()
	if len(layout) > 0 {
		D.layout = layout[0]
	}
	if err := D.slurp(); err != nil {
		return nil, err
	}
	if err := D.decodeHeader(); err != nil {
		return nil, err
	}
	if err := D.buildIndex(); err != nil {
		return nil, err
	}
	D.seen = make([]bool, D.natoms)
	D.readable = true
	return D, nil
}

// openDump opens name and stacks whichever decompressor its suffix calls
// for. The returned cleanup closes the decompressor and the file, in that
// order.
func openDump(name string) (io.Reader, func() error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen, name, []string{"openDump"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, Error{fmt.Sprintf("%s: %s", WrongFormat, err.Error()), name, []string{"gzip.NewReader", "openDump"}, true}
		}
		return gz, func() error {
			err := gz.Close()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, Error{fmt.Sprintf("%s: %s", WrongFormat, err.Error()), name, []string{"zstd.NewReader", "openDump"}, true}
		}
		return zr, func() error { zr.Close(); return f.Close() }, nil
	default:
		return f, f.Close, nil
	}
}

func (D *DumpReader) slurp() error {
	r, cleanup, err := openDump(D.filename)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		D.lines = append(D.lines, scanner.Text())
	}
	//A scan error carries the real diagnosis, so it wins over whatever the
	//cleanup has to say. A decompressor complaint at close time still counts.
	err = scanner.Err()
	if cerr := cleanup(); err == nil {
		err = cerr
	}
	if err != nil {
		return Error{fmt.Sprintf("%s: %s", WrongFormat, err.Error()), D.filename, []string{"slurp"}, true}
	}
	return nil
}

func (D *DumpReader) decodeHeader() error {
	lay := D.layout
	if len(D.lines) <= lay.NAtomsLine {
		return Error{TooFewLines, D.filename, []string{"New"}, false}
	}
	n, err := strconv.Atoi(strings.TrimSpace(D.lines[lay.NAtomsLine]))
	if err != nil {
		return Error{fmt.Sprintf("can't read the atom count from line %d: %s", lay.NAtomsLine+1, err.Error()), D.filename, []string{"strconv.Atoi", "New"}, true}
	}
	if n <= 0 {
		return Error{fmt.Sprintf("nonsensical atom count %d in line %d", n, lay.NAtomsLine+1), D.filename, []string{"New"}, true}
	}
	D.natoms = n
	D.chunklen = n + lay.HeaderLines
	//A trailing chunk cut short by the end of the run is silently dropped.
	D.ndumps = len(D.lines) / D.chunklen
	//The first dump is taken to be at step zero, so the interval between
	//dumps is just the recorded timestep of the second chunk, which may
	//itself be incomplete and still serve.
	if len(D.lines) <= D.chunklen+lay.StepLine {
		return Error{SingleDump, D.filename, []string{"New"}, false}
	}
	D.step, err = strconv.Atoi(strings.TrimSpace(D.lines[D.chunklen+lay.StepLine]))
	if err != nil {
		return Error{fmt.Sprintf("can't read the dump interval from line %d: %s", D.chunklen+lay.StepLine+1, err.Error()), D.filename, []string{"strconv.Atoi", "New"}, true}
	}
	return nil
}

func (D *DumpReader) buildIndex() error {
	D.ids = make([]int, 0, D.natoms)
	for i := 0; i < D.natoms; i++ {
		id, _, err := D.parseAtom(0, i)
		if err != nil {
			return errDecorate(err, "New")
		}
		D.ids = append(D.ids, id)
	}
	sort.Ints(D.ids)
	D.index = make(map[int]int, D.natoms)
	for i, id := range D.ids {
		if _, dup := D.index[id]; dup {
			return Error{fmt.Sprintf("atom identifier %d appears twice in the first chunk", id), D.filename, []string{"New"}, true}
		}
		D.index[id] = i
	}
	return nil
}

// parseAtom decodes the identifier and tracked coordinate of atom record i
// of chunk t.
func (D *DumpReader) parseAtom(t, i int) (int, float64, error) {
	lay := D.layout
	lineno := t*D.chunklen + lay.HeaderLines + i
	fields := strings.Fields(D.lines[lineno])
	last := lay.IDField
	if lay.CoordField > last {
		last = lay.CoordField
	}
	if len(fields) <= last {
		return -1, 0, Error{fmt.Sprintf("chunk %d, line %d: %d fields, need at least %d", t, lineno+1, len(fields), last+1), D.filename, nil, true}
	}
	id, err := strconv.Atoi(fields[lay.IDField])
	if err != nil {
		return -1, 0, Error{fmt.Sprintf("chunk %d, line %d: unreadable atom identifier: %s", t, lineno+1, err.Error()), D.filename, []string{"strconv.Atoi"}, true}
	}
	coord, err := strconv.ParseFloat(fields[lay.CoordField], 64)
	if err != nil {
		return -1, 0, Error{fmt.Sprintf("chunk %d, line %d: unreadable coordinate: %s", t, lineno+1, err.Error()), D.filename, []string{"strconv.ParseFloat"}, true}
	}
	return id, coord, nil
}

// Readable returns true if the object is ready to be read from,
// false otherwise. It doesnt guarantee that there is something
// to read.
func (D *DumpReader) Readable() bool {
	return D.readable
}

// Next decodes the next chunk into keep, one coordinate per atom, reordered
// to the canonical (sorted identifier) order, so keep[i] always belongs to
// the same atom no matter how the dump shuffled its records. If keep is nil
// the frame is discarded, but still checked for correctness.
func (D *DumpReader) Next(keep []float64) error {
	if !D.readable {
		return Error{TrajUnIni, D.filename, []string{"Next"}, true}
	}
	if D.pos >= D.ndumps {
		D.readable = false
		return newlastFrameError(D.filename, "Next")
	}
	if keep != nil && len(keep) < D.natoms {
		return Error{NotEnoughSpace, D.filename, []string{"Next"}, true}
	}
	//The following allows discarding a frame while still keeping track of it.
	//Everything is the same if you read or discard, except the function that
	//would set the values to the slice simply does nothing in the discard case.
	var setter func(row int, val float64)
	if keep != nil {
		setter = func(row int, val float64) { keep[row] = val }
	} else {
		setter = func(row int, val float64) {}
	}
	for i := range D.seen {
		D.seen[i] = false
	}
	t := D.pos
	for i := 0; i < D.natoms; i++ {
		id, coord, err := D.parseAtom(t, i)
		if err != nil {
			return errDecorate(err, "Next")
		}
		row, ok := D.index[id]
		if !ok {
			return Error{fmt.Sprintf("chunk %d: atom identifier %d was not in the first chunk", t, id), D.filename, []string{"Next"}, true}
		}
		if D.seen[row] {
			return Error{fmt.Sprintf("chunk %d: atom identifier %d appears twice", t, id), D.filename, []string{"Next"}, true}
		}
		D.seen[row] = true
		setter(row, coord)
	}
	D.pos++
	return nil
}

// Len returns the number of atoms per frame.
func (D *DumpReader) Len() int {
	return D.natoms
}

// Meta returns the decoded header constants of the file.
func (D *DumpReader) Meta() translo.Meta {
	return translo.Meta{NAtoms: D.natoms, NDumps: D.ndumps, DumpStep: D.step}
}

// IDs returns the atom identifiers of the first chunk, sorted ascending,
// i.e. the canonical order: identifier IDs()[i] fills position i of every
// frame. The returned slice is a copy, so the caller can't corrupt the
// mapping.
func (D *DumpReader) IDs() []int {
	ret := make([]int, len(D.ids))
	copy(ret, D.ids)
	return ret
}

// IndexOf returns the canonical position of the atom with the given
// identifier, and whether the identifier exists at all.
func (D *DumpReader) IndexOf(id int) (int, bool) {
	i, ok := D.index[id]
	return i, ok
}

// Close marks the object as unreadable and drops the buffered file. The
// underlying handle was already closed by New.
func (D *DumpReader) Close() {
	D.readable = false
	D.lines = nil
}

//Errors

//errDecorate is a helper function that asserts that the error is
//implements translo.Error and decorates the error with the caller's name before returning it.
//if used with a non-translo.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(translo.Error) //I know that is the type returned by the parsing helpers
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for LAMMPS dump errors. It fullfills  translo.Error and translo.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("LAMMPS dump file %s error: %s", err.filename, err.message)
}

func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.

	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "LAMMPS dump" }

func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIni      = "Traj object uninitialized to read"
	UnableToOpen   = "Unable to open file"
	WrongFormat    = "Wrong format in the trajectory file or frame"
	NotEnoughSpace = "Not enough space in passed blocks"
	TooFewLines    = "File too short to hold an atom count"
	SingleDump     = "File too short to fix the dump interval"
	EOF            = "EOF"
)

//lastFrameError implements translo.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return EOF }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "LAMMPS dump" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
