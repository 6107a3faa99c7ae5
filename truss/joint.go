// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// axes maps axis names to coordinate indices
var axes = map[string]int{"x": 0, "y": 1, "z": 2}

// AxisNames holds the coordinate axis names in order
var AxisNames = []string{"x", "y", "z"}

// Joint represents a pin joint in a truss. Joints are owned by the Truss and
// addressed by index; incident members are recorded by index as well, so that
// joint↔member navigation never creates ownership cycles.
type Joint struct {

	// input
	Idx         int       // position in the owning truss' joint list; set once at append time
	Coordinates []float64 // [3] position; may be moved in place, invalidating previous results
	Restricted  []bool    // [3] translation restricted per axis
	Loads       []float64 // [3] applied load

	// topology
	Members []int // indices of incident members (non-owning)

	// results from analysis
	Reactions   []float64 // [3] support reactions; meaningful on restrained axes only
	Deflections []float64 // [3] deflections; meaningful on free axes only
}

// newJoint returns a new fully-restrained joint at the given coordinates
func newJoint(idx int, coordinates []float64) *Joint {
	if len(coordinates) != 3 {
		chk.Panic("joints require 3 coordinates. %d is invalid", len(coordinates))
	}
	o := new(Joint)
	o.Idx = idx
	o.Coordinates = []float64{coordinates[0], coordinates[1], coordinates[2]}
	o.Restricted = []bool{true, true, true}
	o.Loads = make([]float64, 3)
	o.Reactions = make([]float64, 3)
	o.Deflections = make([]float64, 3)
	return o
}

// Pinned restricts translation along all axes
func (o *Joint) Pinned() {
	o.Restricted[0], o.Restricted[1], o.Restricted[2] = true, true, true
}

// Free allows translation along all axes
func (o *Joint) Free() {
	o.Restricted[0], o.Restricted[1], o.Restricted[2] = false, false, false
}

// Roller allows translation along all axes except the given one
func (o *Joint) Roller(axis string) {
	o.Free()
	o.Restricted[axisIndex(axis)] = true
}

// Slot restricts translation along all axes except the given one
func (o *Joint) Slot(axis string) {
	o.Pinned()
	o.Restricted[axisIndex(axis)] = false
}

// NumRestricted returns the number of restrained axes
func (o *Joint) NumRestricted() (n int) {
	for _, r := range o.Restricted {
		if r {
			n++
		}
	}
	return
}

// DeflectionNorm returns the Euclidean norm of the joint deflection
func (o *Joint) DeflectionNorm() float64 {
	return la.VecNorm(o.Deflections)
}

// axisIndex converts an axis name to a coordinate index
func axisIndex(axis string) int {
	i, ok := axes[axis]
	if !ok {
		chk.Panic("axis %q is invalid; options are \"x\", \"y\" and \"z\"", axis)
	}
	return i
}
