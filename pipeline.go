package translo

// Result is the immutable outcome of analyzing one trajectory. Path and
// FrontID are filled by callers that know the source file and the original
// atom identifiers; Process itself only sees frames, so it leaves Path empty
// and FrontID at -1.
type Result struct {
	Path    string
	Meta    Meta
	Event   Crossing
	FrontID int
	Series  *Series
}

// Process runs the whole derivation chain on one trajectory source: assemble
// the frames, find the first wall crossing, normalize by the reference
// length, and derive the time and displacement series. The crossing scan runs
// strictly before normalization, so the threshold is compared in native
// units.
//
// A run where no atom ever crosses comes back as a NoCrossing error; filter
// it before treating the error as a failure.
func Process(tr Traj, meta Meta, options ...*Options) (*Result, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	traj, err := Assemble(tr, meta)
	if err != nil {
		return nil, errDecorate(err, "Process")
	}
	ev, err := FirstCrossing(traj, o.X1())
	if err != nil {
		return nil, errDecorate(err, "Process")
	}
	if err := traj.Normalize(o.RF()); err != nil {
		return nil, errDecorate(err, "Process")
	}
	s, err := DeriveSeries(traj, ev, o)
	if err != nil {
		return nil, errDecorate(err, "Process")
	}
	return &Result{Meta: meta, Event: *ev, FrontID: -1, Series: s}, nil
}
