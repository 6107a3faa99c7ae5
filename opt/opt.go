// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements the design-vector codec: a bidirectional mapping
// between a flat numeric vector and a truss snapshot, plus the objective,
// inequality-constraint and bound generators consumed by an external
// constrained optimizer
package opt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotruss/shp"
	"github.com/cpmech/gotruss/truss"
)

// Options selects which parts of a truss enter the design vector
type Options struct {
	JointCoordinates bool // optimize positions of unloaded free joints
	ShapeParameters  bool // optimize member cross-section parameters
}

// AllOptions returns options with everything enabled
func AllOptions() Options {
	return Options{JointCoordinates: true, ShapeParameters: true}
}

// optimizable tells whether a joint's coordinates enter the design vector:
// it must carry no applied load and be restrained only along the planarity
// axis (or not at all, for a spatial truss)
func optimizable(j *truss.Joint, planar string) bool {
	want := 0
	if planar != "none" {
		want = 1
	}
	if j.NumRestricted() != want {
		return false
	}
	for _, l := range j.Loads {
		if l != 0 {
			return false
		}
	}
	return true
}

// MakeVector encodes the truss as a flat design vector: first the free-axis
// coordinates of every optimizable joint, then the defining parameters of
// every member's shape in a fixed per-shape order. Traversal order is the
// joint/member append order, so the encoding is deterministic for any truss
func MakeVector(t *truss.Truss, opts Options) (x []float64) {
	planar := t.Planar()
	if opts.JointCoordinates {
		for _, j := range t.Joints {
			if !optimizable(j, planar) {
				continue
			}
			for a, name := range truss.AxisNames {
				if name != planar {
					x = append(x, j.Coordinates[a])
				}
			}
		}
	}
	if opts.ShapeParameters {
		for _, m := range t.Members {
			switch s := m.Shape.(type) {
			case *shp.Pipe:
				x = append(x, s.R, s.T)
			case *shp.Bar:
				x = append(x, s.R)
			case *shp.Square:
				x = append(x, s.W, s.H)
			case *shp.Box:
				x = append(x, s.W, s.H, s.T)
			}
		}
	}
	return
}

// MakeBounds returns lower/upper bounds aligned with MakeVector: coordinates
// are unconstrained, shape parameters must stay non-negative
func MakeBounds(t *truss.Truss, opts Options) (lo, up []float64) {
	planar := t.Planar()
	inf := math.Inf(1)
	if opts.JointCoordinates {
		for _, j := range t.Joints {
			if !optimizable(j, planar) {
				continue
			}
			for _, name := range truss.AxisNames {
				if name != planar {
					lo = append(lo, -inf)
					up = append(up, inf)
				}
			}
		}
	}
	if opts.ShapeParameters {
		for _, m := range t.Members {
			n := 0
			switch m.Shape.(type) {
			case *shp.Pipe:
				n = 2
			case *shp.Bar:
				n = 1
			case *shp.Square:
				n = 2
			case *shp.Box:
				n = 3
			}
			for i := 0; i < n; i++ {
				lo = append(lo, 0)
				up = append(up, inf)
			}
		}
	}
	return
}

// MakeGenerator returns a function mapping a design vector back to a fresh,
// fully independent truss. The generator closes over an immutable snapshot of
// the base truss; every call clones it and overwrites joint coordinates and
// shape instances in the exact traversal order used by MakeVector. A vector
// of the wrong length is a programmer error and panics
func MakeGenerator(t *truss.Truss, opts Options) func(x []float64) *truss.Truss {
	base := t.Clone()
	planar := base.Planar()
	nx := len(MakeVector(base, opts))
	return func(x []float64) *truss.Truss {
		if len(x) != nx {
			chk.Panic("design vector has wrong length: %d != %d", len(x), nx)
		}
		tt := base.Clone()
		idx := 0
		if opts.JointCoordinates {
			for _, j := range tt.Joints {
				if !optimizable(j, planar) {
					continue
				}
				for a, name := range truss.AxisNames {
					if name != planar {
						j.Coordinates[a] = x[idx]
						idx++
					}
				}
			}
		}
		if opts.ShapeParameters {
			for _, m := range tt.Members {
				switch m.Shape.(type) {
				case *shp.Pipe:
					m.Shape = &shp.Pipe{R: x[idx], T: x[idx+1]}
					idx += 2
				case *shp.Bar:
					m.Shape = &shp.Bar{R: x[idx]}
					idx++
				case *shp.Square:
					m.Shape = &shp.Square{W: x[idx], H: x[idx+1]}
					idx += 2
				case *shp.Box:
					m.Shape = &shp.Box{W: x[idx], H: x[idx+1], T: x[idx+2]}
					idx += 3
				}
			}
		}
		return tt
	}
}

// MakeFunctions creates everything an external constrained optimizer needs:
// the initial vector x0, the objective (total mass), the inequality
// constraints (feasible when all entries are ≤ 0), the truss generator and
// the variable bounds.
//
// The constraint vector holds the buckling-FOS shortfall, the yielding-FOS
// shortfall and the deflection excess, followed by one geometric-validity
// entry per thickness-bearing shape since shape parameters are optimized
// independently. Constraint evaluation analyzes a fresh truss; a singular
// candidate fails loudly
func MakeFunctions(t *truss.Truss, goals truss.Goals, opts Options) (
	x0 []float64,
	objective func(x []float64) float64,
	constraints func(x []float64) []float64,
	generator func(x []float64) *truss.Truss,
	lo, up []float64,
) {
	x0 = MakeVector(t, opts)
	generator = MakeGenerator(t, opts)
	objective = func(x []float64) float64 {
		return generator(x).Mass()
	}
	constraints = func(x []float64) (g []float64) {
		tt := generator(x)
		if _, err := tt.Analyze(); err != nil {
			chk.Panic("constraint evaluation failed:\n%v", err)
		}
		g = []float64{
			goals.MinFosBuckling - tt.FosBuckling(),
			goals.MinFosYielding - tt.FosYielding(),
			tt.Deflection() - math.Min(goals.MaxDeflection, 10000.0),
		}
		if opts.ShapeParameters {
			for _, m := range tt.Members {
				switch s := m.Shape.(type) {
				case *shp.Pipe:
					g = append(g, s.T-s.R)
				case *shp.Box:
					g = append(g, 2.0*s.T-math.Min(s.W, s.H))
				}
			}
		}
		return
	}
	lo, up = MakeBounds(t, opts)
	return
}
