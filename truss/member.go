// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

import (
	"math"

	"github.com/cpmech/gotruss/shp"
)

// Member represents an axial two-force member connecting two joints. Joints
// are referenced by index into the owning truss; the unexported back-reference
// to the truss only serves navigation, never ownership.
type Member struct {

	// input
	Idx   int       // position in the owning truss' member list; set once at append time
	Begin int       // index of begin joint
	End   int       // index of end joint
	Mat   Material  // material properties (by value)
	Shape shp.Shape // cross-section; swapped wholesale, never mutated

	// results from analysis
	Force float64 // axial force; negative in compression

	// access
	tr *Truss // owning truss (arena holding the joints)
}

// BeginJoint returns the joint at the beginning of the member
func (o *Member) BeginJoint() *Joint { return o.tr.Joints[o.Begin] }

// EndJoint returns the joint at the end of the member
func (o *Member) EndJoint() *Joint { return o.tr.Joints[o.End] }

// Area returns the cross-sectional area
func (o *Member) Area() float64 { return o.Shape.Area() }

// Moi returns the second moment of area of the cross-section
func (o *Member) Moi() float64 { return o.Shape.Moi() }

// Length returns the distance between the two end joints
func (o *Member) Length() float64 {
	a := o.BeginJoint().Coordinates
	b := o.EndJoint().Coordinates
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Direction returns the unit vector from the begin joint to the end joint
func (o *Member) Direction() []float64 {
	a := o.BeginJoint().Coordinates
	b := o.EndJoint().Coordinates
	l := o.Length()
	return []float64{(b[0] - a[0]) / l, (b[1] - a[1]) / l, (b[2] - a[2]) / l}
}

// Stiffness returns the axial stiffness E·A/L
func (o *Member) Stiffness() float64 {
	return o.Mat.ElasticModulus * o.Area() / o.Length()
}

// LinearMass returns the mass per unit length
func (o *Member) LinearMass() float64 {
	return o.Area() * o.Mat.Density
}

// Mass returns the total mass of the member
func (o *Member) Mass() float64 {
	return o.Length() * o.LinearMass()
}

// FosYielding returns the factor of safety against yielding. Valid after analysis
func (o *Member) FosYielding() float64 {
	return o.Mat.YieldStrength / math.Abs(o.Force/o.Area())
}

// FosBuckling returns the factor of safety against (Euler) buckling. The sign
// convention makes this positive for members in compression; members in
// tension produce a non-positive value which the truss aggregate maps to the
// no-buckling sentinel. Valid after analysis
func (o *Member) FosBuckling() float64 {
	l := o.Length()
	return -(math.Pi * math.Pi * o.Mat.ElasticModulus * o.Moi() / (l * l)) / o.Force
}
