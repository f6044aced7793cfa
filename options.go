package translo

import "runtime"

// Physical defaults for the coarse-grained runs this library was written for.
// Both can be overridden per analysis through Options.
const (
	//Timestep is the physical time of one native simulation step, in ns.
	Timestep float64 = 0.00005
	//RF is the Flory radius of the reference chain, in nm. Displacements are
	//reported in units of this length.
	RF float64 = 8.6
)

//Options contains the tunable parameters of a translocation analysis.
type Options struct {
	x1       float64
	x2       float64
	timestep float64
	rf       float64
	axis     int
	cpus     int
}

//Returns a Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.x1 = 0
	ret.x2 = 0
	ret.timestep = Timestep
	ret.rf = RF
	ret.axis = 0
	ret.cpus = runtime.NumCPU()
	return ret
}

//Returns the current value of the X1 option (the coordinate of the wall
//entrance, i.e. the threshold an atom needs to reach for a crossing to be
//declared) and sets it, if a value is given. Any real value is legal.
func (r *Options) X1(x ...float64) float64 {
	ret := r.x1
	if len(x) > 0 {
		r.x1 = x[0]
	}
	return ret
}

//Returns the current value of the X2 option (the coordinate of the wall exit,
//carried along for wall-width bookkeeping but taking no part in the crossing
//scan) and sets it, if a value is given.
func (r *Options) X2(x ...float64) float64 {
	ret := r.x2
	if len(x) > 0 {
		r.x2 = x[0]
	}
	return ret
}

//Returns the physical time per native simulation step, in ns, and sets it, if
//a valid value is given
func (r *Options) Timestep(t ...float64) float64 {
	ret := r.timestep
	if len(t) > 0 && t[0] > 0 {
		r.timestep = t[0]
	}
	return ret
}

//Returns the reference length used to normalize displacements, in nm, and
//sets it, if a valid value is given
func (r *Options) RF(f ...float64) float64 {
	ret := r.rf
	if len(f) > 0 && f[0] > 0 {
		r.rf = f[0]
	}
	return ret
}

//Returns the cartesian axis whose coordinate is tracked (0, 1 or 2 for x, y
//or z) and sets it, if a valid value is given
func (r *Options) Axis(a ...int) int {
	ret := r.axis
	if len(a) > 0 && a[0] >= 0 && a[0] <= 2 {
		r.axis = a[0]
	}
	return ret
}

//Returns the current value of the Cpus option (the number of gorutines to
//use on concurrent batch runs) and sets it, if a valid value is given. It
//defaults to the total number of logical cores in the machine.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}
