/*
 * lammpstrj_test.go
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
 */

package lammpstrj

import (
	"compress/gzip"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	translo "github.com/jvens/translo"
	"github.com/klauspost/compress/zstd"
)

var rootdirtest string = "../../test"

// the poly fixture: 3 atoms with identifiers 3, 1, 2, four dumps 500 steps
// apart, records shuffled differently in every chunk. Per canonical row
// (identifiers sorted: 1, 2, 3), the coordinates along the run.
var polyWant = [3][4]float64{
	{1.0, 2.0, 3.5, 4.0},
	{0.5, 1.5, 2.5, 3.0},
	{2.0, 4.0, 5.5, 6.5},
}

func feq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDump(Te *testing.T) {
	traj, err := New(rootdirtest + "/poly.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	m := traj.Meta()
	if m.NAtoms != 3 || m.NDumps != 4 || m.DumpStep != 500 {
		Te.Errorf("wrong header: %+v", m)
	}
	if traj.Len() != 3 {
		Te.Error("wrong Len", traj.Len())
	}
	ids := traj.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		Te.Error("identifiers not sorted:", ids)
	}
	if i, ok := traj.IndexOf(3); !ok || i != 2 {
		Te.Error("IndexOf(3) gave", i, ok)
	}
	if _, ok := traj.IndexOf(42); ok {
		Te.Error("IndexOf invented an atom")
	}
	frame := make([]float64, traj.Len())
	t := 0
	for err = traj.Next(frame); ; err = traj.Next(frame) {
		if err != nil {
			if _, ok := err.(translo.LastFrameError); ok {
				break
			}
			Te.Error(err)
			break
		}
		for i := 0; i < 3; i++ {
			if !feq(frame[i], polyWant[i][t]) {
				Te.Errorf("dump %d atom %d: got %v want %v", t, i, frame[i], polyWant[i][t])
			}
		}
		t++
	}
	if t != 4 {
		Te.Error("read", t, "dumps instead of 4")
	}
	if traj.Readable() {
		Te.Error("still readable after the last frame")
	}
	if err.Error() != EOF {
		Te.Error("wrong end-of-file message:", err)
	}
	fmt.Println("Dump read test done! dumps read:", t)
}

func TestDiscard(Te *testing.T) {
	traj, err := New(rootdirtest + "/poly.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	//Discarded frames still get checked, they just go nowhere.
	if err := traj.Next(nil); err != nil {
		Te.Error(err)
	}
	if err := traj.Next(nil); err != nil {
		Te.Error(err)
	}
	frame := make([]float64, traj.Len())
	if err := traj.Next(frame); err != nil {
		Te.Error(err)
	}
	for i := 0; i < 3; i++ {
		if !feq(frame[i], polyWant[i][2]) {
			Te.Errorf("after discards, atom %d: got %v want %v", i, frame[i], polyWant[i][2])
		}
	}
}

func TestNotEnoughSpace(Te *testing.T) {
	traj, err := New(rootdirtest + "/poly.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	small := make([]float64, 2)
	err = traj.Next(small)
	if err == nil {
		Te.Fatal("a 2-slot slice accepted for a 3-atom frame")
	}
	if terr, ok := err.(translo.TrajError); !ok || !terr.Critical() {
		Te.Error("expected a critical error, got:", err)
	}
}

// A trailing chunk cut short by the end of the run must be dropped without
// complaint, and the dump interval must still come from whatever the second
// chunk recorded.
func TestTruncated(Te *testing.T) {
	traj, err := New(rootdirtest + "/trunc.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	m := traj.Meta()
	if m.NDumps != 2 {
		Te.Error("partial chunk not dropped, NDumps is", m.NDumps)
	}
	if m.DumpStep != 400 {
		Te.Error("wrong dump interval", m.DumpStep)
	}
	read := 0
	for err = traj.Next(nil); ; err = traj.Next(nil) {
		if err != nil {
			if _, ok := err.(translo.LastFrameError); ok {
				break
			}
			Te.Error(err)
			break
		}
		read++
	}
	if read != 2 {
		Te.Error("read", read, "dumps instead of 2")
	}
}

func writeGz(Te *testing.T, path string, data []byte) {
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func writeZst(Te *testing.T, path string, data []byte) {
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func TestCompressed(Te *testing.T) {
	data, err := os.ReadFile(rootdirtest + "/poly.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	gzpath := filepath.Join(dir, "poly.lammpstrj.gz")
	zstpath := filepath.Join(dir, "poly.lammpstrj.zst")
	writeGz(Te, gzpath, data)
	writeZst(Te, zstpath, data)
	for _, path := range []string{gzpath, zstpath} {
		traj, err := New(path)
		if err != nil {
			Te.Error(path, err)
			continue
		}
		m := traj.Meta()
		if m.NAtoms != 3 || m.NDumps != 4 || m.DumpStep != 500 {
			Te.Errorf("%s: wrong header through compression: %+v", path, m)
		}
		frame := make([]float64, traj.Len())
		if err := traj.Next(frame); err != nil {
			Te.Error(path, err)
		}
		if !feq(frame[2], 2.0) {
			Te.Error(path, "first frame garbled:", frame)
		}
		traj.Close()
	}
	fmt.Println("compressed read test done!")
}

// A compressed file with a mangled trailer must fail loudly, not yield a
// quietly shortened run.
func TestCorruptCompressed(Te *testing.T) {
	data, err := os.ReadFile(rootdirtest + "/poly.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	path := filepath.Join(dir, "poly.lammpstrj.gz")
	writeGz(Te, path, data)
	raw, err := os.ReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	//the last bytes of a gzip stream hold its checksum and length
	raw[len(raw)-1] ^= 0xff
	if err := os.WriteFile(path, raw, 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = New(path)
	if err == nil {
		Te.Fatal("mangled gzip accepted")
	}
	if terr, ok := err.(translo.TrajError); !ok || !terr.Critical() {
		Te.Error("mangled gzip should be a critical error, got:", err)
	}
}

// write lines as a file under dir and try to open it.
func opened(Te *testing.T, dir string, lines ...string) (*DumpReader, error) {
	path := filepath.Join(dir, "t.lammpstrj")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	return New(path)
}

// header of one chunk of n atoms at the given step, for synthetic files.
func header(step, n int) []string {
	return []string{
		"ITEM: TIMESTEP",
		fmt.Sprint(step),
		"ITEM: NUMBER OF ATOMS",
		fmt.Sprint(n),
		"ITEM: BOX BOUNDS pp pp fp",
		"-10.0 10.0",
		"-10.0 10.0",
		"-10.0 10.0",
		"ITEM: ATOMS id x y z",
	}
}

func TestShortFiles(Te *testing.T) {
	dir := Te.TempDir()
	//Too short for an atom count: skippable, not a failure.
	_, err := opened(Te, dir, "ITEM: TIMESTEP", "0", "ITEM: NUMBER OF ATOMS")
	if err == nil {
		Te.Fatal("3-line file accepted")
	}
	if terr, ok := err.(translo.TrajError); !ok || terr.Critical() {
		Te.Error("3-line file should be a non-critical error, got:", err)
	}
	//One full chunk but nothing of the second: no dump interval, skippable.
	lines := append(header(0, 2), "1 1.0 0.0 0.0", "2 2.0 0.0 0.0")
	_, err = opened(Te, dir, lines...)
	if err == nil {
		Te.Fatal("single-chunk file accepted")
	}
	if terr, ok := err.(translo.TrajError); !ok || terr.Critical() {
		Te.Error("single-chunk file should be a non-critical error, got:", err)
	}
	//An unreadable atom count, on the other hand, is a real failure.
	_, err = opened(Te, dir, "ITEM: TIMESTEP", "0", "ITEM: NUMBER OF ATOMS", "lots")
	if err == nil {
		Te.Fatal("garbage atom count accepted")
	}
	if terr, ok := err.(translo.TrajError); !ok || !terr.Critical() {
		Te.Error("garbage atom count should be critical, got:", err)
	}
}

func TestBadRecords(Te *testing.T) {
	dir := Te.TempDir()
	chunk0 := append(header(0, 2), "1 1.0 0.0 0.0", "2 2.0 0.0 0.0")

	//a coordinate that is not a number, in the second chunk
	lines := append(append([]string{}, chunk0...), header(300, 2)...)
	lines = append(lines, "1 1.1 0.0 0.0", "2 oops 0.0 0.0")
	traj, err := opened(Te, dir, lines...)
	if err != nil {
		Te.Fatal(err)
	}
	if err := traj.Next(nil); err != nil {
		Te.Error("first chunk should read fine:", err)
	}
	err = traj.Next(nil)
	if err == nil {
		Te.Fatal("garbage coordinate accepted")
	}
	if terr, ok := err.(translo.TrajError); !ok || !terr.Critical() {
		Te.Error("garbage coordinate should be critical, got:", err)
	}
	if !strings.Contains(err.Error(), "chunk 1") {
		Te.Error("error does not locate the chunk:", err)
	}

	//an identifier that was never in the first chunk
	lines = append(append([]string{}, chunk0...), header(300, 2)...)
	lines = append(lines, "1 1.1 0.0 0.0", "9 2.1 0.0 0.0")
	traj, err = opened(Te, dir, lines...)
	if err != nil {
		Te.Fatal(err)
	}
	traj.Next(nil)
	err = traj.Next(nil)
	if err == nil || !strings.Contains(err.Error(), "not in the first chunk") {
		Te.Error("unknown identifier not caught:", err)
	}

	//the same identifier twice within one chunk
	lines = append(append([]string{}, chunk0...), header(300, 2)...)
	lines = append(lines, "1 1.1 0.0 0.0", "1 2.1 0.0 0.0")
	traj, err = opened(Te, dir, lines...)
	if err != nil {
		Te.Fatal(err)
	}
	traj.Next(nil)
	err = traj.Next(nil)
	if err == nil || !strings.Contains(err.Error(), "twice") {
		Te.Error("duplicated identifier not caught:", err)
	}

	//a duplicate already in the first chunk breaks New itself
	lines = append(header(0, 2), "1 1.0 0.0 0.0", "1 2.0 0.0 0.0")
	lines = append(lines, header(300, 2)...)
	lines = append(lines, "1 1.1 0.0 0.0", "1 2.1 0.0 0.0")
	_, err = opened(Te, dir, lines...)
	if err == nil {
		Te.Error("duplicated identifier in the first chunk accepted")
	}

	//a record with too few fields
	lines = append(header(0, 2), "1 1.0 0.0 0.0", "2")
	lines = append(lines, header(300, 2)...)
	lines = append(lines, "1 1.1 0.0 0.0", "2 2.1 0.0 0.0")
	_, err = opened(Te, dir, lines...)
	if err == nil {
		Te.Error("truncated atom record accepted")
	}
}

// Tracking a different field only takes a different Layout.
func TestLayout(Te *testing.T) {
	lay := DefaultLayout()
	lay.CoordField = 2 //the y column of the fixture
	traj, err := New(rootdirtest+"/poly.lammpstrj", lay)
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	frame := make([]float64, traj.Len())
	if err := traj.Next(frame); err != nil {
		Te.Fatal(err)
	}
	want := []float64{0.2, 0.3, 0.1}
	for i := range want {
		if !feq(frame[i], want[i]) {
			Te.Errorf("y tracking, atom %d: got %v want %v", i, frame[i], want[i])
		}
	}
}
