// Package discover locates the dump files a batch run should analyze,
// filtering out everything that is not a polymer trajectory: wall
// trajectories, partial names, unrelated files.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ext is the suffix of LAMMPS text dumps.
const ext = ".lammpstrj"

// minName is the shortest sensible dump name: at least one character of stem
// before the suffix.
var minName = len(ext) + 1

// Candidate reports whether name, the base name of a file, looks like a
// polymer trajectory dump. Compression suffixes are looked through, so
// run3.lammpstrj.gz qualifies. Wall trajectories, which by the naming scheme
// of our runs carry a 'w' right before the suffix, do not qualify: they
// record the wall beads, not the chain.
func Candidate(name string) bool {
	stem := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	if len(stem) < minName {
		return false
	}
	if !strings.HasSuffix(stem, ext) {
		return false
	}
	if stem[len(stem)-minName] == 'w' {
		return false
	}
	return true
}

// List returns the candidate dump files in dir, sorted by path. With descend,
// subdirectories are searched too.
func List(dir string, descend bool) ([]string, error) {
	var files []string
	if descend {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if Candidate(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if Candidate(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
