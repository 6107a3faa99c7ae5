// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotruss/shp"
	"github.com/cpmech/gotruss/truss"
)

func verbose() {
	chk.Verbose = true
}

// bridge builds a planar truss with one unloaded free joint whose position
// can be optimized
func bridge() *truss.Truss {
	steel := truss.MaterialLibrary()[0]
	alu := truss.MaterialLibrary()[2]
	pipe, _ := shp.NewPipe(0.02, 0.002)
	bar, _ := shp.NewBar(0.02)
	sqr, _ := shp.NewSquare(0.03, 0.05)
	box, _ := shp.NewBox(0.03, 0.05, 0.004)
	t := truss.New()
	t.AddPinnedSupport([]float64{0, 0, 0})
	t.AddRollerSupport([]float64{6, 0, 0}, "y")
	t.AddJoint([]float64{2, 2, 0})
	t.AddJoint([]float64{4, 2, 0})
	t.AddOutOfPlaneSupport("z")
	t.SetLoad(2, []float64{0, -10000, 0})
	t.AddMember(0, 2, steel, pipe)
	t.AddMember(2, 3, steel, bar)
	t.AddMember(3, 1, steel, sqr)
	t.AddMember(2, 1, alu, box)
	t.AddMember(0, 3, steel, pipe)
	return t
}

func Test_opt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt01. deterministic encoding")

	t := bridge()
	chk.StrAssert(t.Planar(), "z")

	x := MakeVector(t, AllOptions())
	io.Pforan("x = %v\n", x)

	// joint 3 coordinates (x,y; the planar z axis is dropped), then shape
	// parameters in member order: pipe(r,t) bar(r) square(w,h) box(w,h,t) pipe(r,t)
	chk.Vector(tst, "x", 1e-17, x, []float64{
		4, 2,
		0.02, 0.002,
		0.02,
		0.03, 0.05,
		0.03, 0.05, 0.004,
		0.02, 0.002,
	})

	// coordinates only
	xc := MakeVector(t, Options{JointCoordinates: true})
	chk.Vector(tst, "x coords", 1e-17, xc, []float64{4, 2})

	// shapes only
	xs := MakeVector(t, Options{ShapeParameters: true})
	chk.IntAssert(len(xs), 10)
}

func Test_opt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt02. bounds are aligned with the vector")

	t := bridge()
	lo, up := MakeBounds(t, AllOptions())
	x := MakeVector(t, AllOptions())
	chk.IntAssert(len(lo), len(x))
	chk.IntAssert(len(up), len(x))

	// coordinates: unconstrained
	for i := 0; i < 2; i++ {
		if !math.IsInf(lo[i], -1) || !math.IsInf(up[i], 1) {
			tst.Errorf("coordinate bounds must be unconstrained. lo=%v up=%v", lo[i], up[i])
			return
		}
	}

	// shape parameters: non-negative
	for i := 2; i < len(lo); i++ {
		chk.Scalar(tst, "lo", 1e-17, lo[i], 0)
		if !math.IsInf(up[i], 1) {
			tst.Errorf("shape parameter upper bound must be +Inf. up=%v", up[i])
			return
		}
	}
}

func Test_opt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt03. decode∘encode reproduces analysis results")

	t := bridge()
	_, err := t.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}

	gen := MakeGenerator(t, AllOptions())
	tt := gen(MakeVector(t, AllOptions()))
	_, err = tt.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}

	for i := range t.Members {
		chk.Scalar(tst, io.Sf("member %d force", i), 1e-12, tt.Members[i].Force, t.Members[i].Force)
	}
	for i := range t.Joints {
		chk.Vector(tst, io.Sf("joint %d deflections", i), 1e-15, tt.Joints[i].Deflections, t.Joints[i].Deflections)
		chk.Vector(tst, io.Sf("joint %d reactions", i), 1e-12, tt.Joints[i].Reactions, t.Joints[i].Reactions)
	}
	chk.Scalar(tst, "mass", 1e-15, tt.Mass(), t.Mass())
}

func Test_opt04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt04. generated trusses are independent")

	t := bridge()
	gen := MakeGenerator(t, AllOptions())
	x := MakeVector(t, AllOptions())

	// move the free joint and fatten the first pipe
	y := append([]float64(nil), x...)
	y[1] = 3.0
	y[2] = 0.04
	a := gen(x)
	b := gen(y)
	chk.Scalar(tst, "a joint3 y", 1e-17, a.Joints[3].Coordinates[1], 2.0)
	chk.Scalar(tst, "b joint3 y", 1e-17, b.Joints[3].Coordinates[1], 3.0)
	chk.Scalar(tst, "a pipe radius", 1e-17, a.Members[0].Shape.(*shp.Pipe).R, 0.02)
	chk.Scalar(tst, "b pipe radius", 1e-17, b.Members[0].Shape.(*shp.Pipe).R, 0.04)

	// the base truss is untouched
	chk.Scalar(tst, "base joint3 y", 1e-17, t.Joints[3].Coordinates[1], 2.0)

	// decoded shapes are fresh instances
	if a.Members[0].Shape == b.Members[0].Shape {
		tst.Errorf("decoded shapes must not be shared")
		return
	}
}

func Test_opt05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt05. objective and constraints")

	t := bridge()
	goals := truss.NewGoals()
	goals.MinFosYielding = 2.0
	goals.MinFosBuckling = 2.5
	goals.MaxDeflection = 0.01

	x0, objective, constraints, generator, lo, up := MakeFunctions(t, goals, AllOptions())
	chk.IntAssert(len(x0), len(lo))
	chk.IntAssert(len(x0), len(up))

	// objective is the decoded truss mass
	chk.Scalar(tst, "objective", 1e-13, objective(x0), t.Mass())

	// constraints against a directly analyzed copy
	tt := generator(x0)
	_, err := tt.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	g := constraints(x0)
	io.Pforan("g = %v\n", g)

	// 3 goal entries + one validity entry per pipe/box member
	chk.IntAssert(len(g), 3+3)
	chk.Scalar(tst, "buckling shortfall", 1e-12, g[0], goals.MinFosBuckling-tt.FosBuckling())
	chk.Scalar(tst, "yielding shortfall", 1e-12, g[1], goals.MinFosYielding-tt.FosYielding())
	chk.Scalar(tst, "deflection excess", 1e-12, g[2], tt.Deflection()-0.01)
	chk.Scalar(tst, "pipe validity", 1e-17, g[3], 0.002-0.02)
	chk.Scalar(tst, "box validity", 1e-17, g[4], 2.0*0.004-0.03)
	chk.Scalar(tst, "pipe validity", 1e-17, g[5], 0.002-0.02)
}

func Test_opt06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt06. wrong-length vectors fail loudly")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("generator should have panicked")
		}
	}()
	t := bridge()
	gen := MakeGenerator(t, AllOptions())
	gen([]float64{1, 2, 3})
}
