// Package batch runs the translocation analysis over many dump files,
// keeping each file's outcome in its own slot so one ruined run never
// contaminates the rest of a sweep.
package batch

import (
	"log"
	"sync"

	translo "github.com/jvens/translo"
	"github.com/jvens/translo/traj/lammpstrj"
)

// File runs the whole derivation chain on one dump file: decode, assemble,
// find the crossing, normalize, derive the series. The returned Result
// carries the path and the original identifier of the front monomer, which
// only this layer knows.
func File(path string, options ...*translo.Options) (*translo.Result, error) {
	o := translo.DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	lay := lammpstrj.DefaultLayout()
	lay.CoordField += o.Axis()
	tr, err := lammpstrj.New(path, lay)
	if err != nil {
		return nil, err
	}
	defer tr.Close()
	res, err := translo.Process(tr, tr.Meta(), o)
	if err != nil {
		return nil, err
	}
	res.Path = path
	res.FrontID = tr.IDs()[res.Event.Atom]
	return res, nil
}

// All analyzes every path in order. The returned slices are index-aligned
// with paths: for each file either its Result or its error is non-nil, never
// both. Skippable conditions (too-short files, runs that never crossed) are
// logged as they are found; use Critical to tell them apart from real
// failures afterwards.
func All(paths []string, options ...*translo.Options) ([]*translo.Result, []error) {
	o := translo.DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	results := make([]*translo.Result, len(paths))
	errs := make([]error, len(paths))
	for i, p := range paths {
		results[i], errs[i] = File(p, o)
		if errs[i] != nil && !Critical(errs[i]) {
			log.Printf("translo/batch: skipping %s: %v", p, errs[i])
		}
	}
	return results, errs
}

// AllConc is All with the files analyzed concurrently, at most
// options.Cpus() at a time. Each goroutine writes only its own slot, so the
// result and error slices line up with paths exactly as in All.
func AllConc(paths []string, options ...*translo.Options) ([]*translo.Result, []error) {
	o := translo.DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	results := make([]*translo.Result, len(paths))
	errs := make([]error, len(paths))
	sem := make(chan struct{}, o.Cpus())
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = File(p, o)
		}(i, p)
	}
	wg.Wait()
	for i, p := range paths {
		if errs[i] != nil && !Critical(errs[i]) {
			log.Printf("translo/batch: skipping %s: %v", p, errs[i])
		}
	}
	return results, errs
}

// Critical reports whether err, as returned by File, All or AllConc, is an
// actual failure. Short files and runs without a crossing are expected in any
// unattended sweep and come back false; everything else, true.
func Critical(err error) bool {
	if _, ok := err.(translo.NoCrossing); ok {
		return false
	}
	if terr, ok := err.(translo.TrajError); ok {
		return terr.Critical()
	}
	return true
}
