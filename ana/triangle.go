// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for simple trusses
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// SymmetricTriangle computes the closed-form solution of a symmetric
// triangular truss under a point load at the apex
//
//               P ↓
//               o            apex at (L/2, H)
//              / \
//     (A_d)   /   \  (A_d)   negative force means compression
//            /     \
//           o-------o
//          ▲  (A_c)  ◉       pin at (0,0), roller at (L,0)
//
// Member self-weight is not included
type SymmetricTriangle struct {
	// input
	L  float64 // span
	H  float64 // height of apex
	P  float64 // downward load magnitude (positive value)
	E  float64 // Young's modulus
	Ad float64 // cross-sectional area of the two diagonals
	Ac float64 // cross-sectional area of the bottom chord
}

// DiagonalLength returns the length of each diagonal
func (o SymmetricTriangle) DiagonalLength() float64 {
	return math.Sqrt(o.L*o.L/4.0 + o.H*o.H)
}

// Forces returns the axial forces in the diagonals and in the chord.
// Both diagonals carry the same compression by symmetry
func (o SymmetricTriangle) Forces() (diagonal, chord float64) {
	diagonal = -o.P * o.DiagonalLength() / (2.0 * o.H)
	chord = o.P * o.L / (4.0 * o.H)
	return
}

// ApexDeflections returns the horizontal and vertical deflections of the
// apex, computed with the unit-load method. The roller lets the chord
// stretch freely, so the apex drifts by half the chord elongation
func (o SymmetricTriangle) ApexDeflections() (ux, uy float64) {
	ld := o.DiagonalLength()
	_, chord := o.Forces()
	ux = chord * o.L / (o.E * o.Ac) / 2.0
	uy = -o.P / (o.E * 4.0 * o.H * o.H) * (2.0*ld*ld*ld/o.Ad + o.L*o.L*o.L/(4.0*o.Ac))
	return
}

// Reactions returns the vertical reaction at each support. The pin carries
// no horizontal reaction since the applied load is vertical
func (o SymmetricTriangle) Reactions() (pin, roller float64) {
	pin = o.P / 2.0
	roller = o.P / 2.0
	return
}

// CheckForces compares computed member forces against the analytical solution
func (o SymmetricTriangle) CheckForces(tst *testing.T, diagonals []float64, chord, tol float64) {
	d, c := o.Forces()
	for _, f := range diagonals {
		chk.Scalar(tst, "diagonal force", tol, f, d)
	}
	chk.Scalar(tst, "chord force", tol, chord, c)
}

// CheckApex compares computed apex deflections against the analytical solution
func (o SymmetricTriangle) CheckApex(tst *testing.T, u []float64, tol float64) {
	ux, uy := o.ApexDeflections()
	chk.Scalar(tst, "apex ux", tol, u[0], ux)
	chk.Scalar(tst, "apex uy", tol, u[1], uy)
}
