// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package truss implements the geometry/topology model of pin-jointed
// trusses together with the linear-elastic solver and the factor-of-safety
// evaluation of members
package truss

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotruss/shp"
)

// NoBucklingFos is the sentinel used in place of the buckling factor of
// safety for members in tension. It is a large value rather than a true
// infinity so that downstream comparisons and reports behave like plain
// numbers
const NoBucklingFos = 10000.0

// Truss owns an ordered list of joints and an ordered list of members,
// arena-style: entities are referenced by integer index, never by raw
// owning pointer. A truss is "unanalyzed" until Analyze runs; each call
// fully overwrites forces, reactions and deflections.
type Truss struct {
	Joints  []*Joint  // all joints, addressed by Joint.Idx
	Members []*Member // all members, addressed by Member.Idx
	Cond    float64   // condition number of the reduced system; set by Analyze
}

// New returns a new empty truss
func New() *Truss {
	return new(Truss)
}

// AddJoint appends a free joint at the given coordinates and returns it
func (o *Truss) AddJoint(coordinates []float64) *Joint {
	j := newJoint(len(o.Joints), coordinates)
	j.Free()
	o.Joints = append(o.Joints, j)
	return j
}

// AddPinnedSupport appends a joint restrained along all axes
func (o *Truss) AddPinnedSupport(coordinates []float64) *Joint {
	j := o.AddJoint(coordinates)
	j.Pinned()
	return j
}

// AddRollerSupport appends a joint restrained along the given axis only
func (o *Truss) AddRollerSupport(coordinates []float64, axis string) *Joint {
	j := o.AddJoint(coordinates)
	j.Roller(axis)
	return j
}

// AddOutOfPlaneSupport restrains all joints along the given axis, turning a
// flat geometry into a solvable planar problem
func (o *Truss) AddOutOfPlaneSupport(axis string) {
	i := axisIndex(axis)
	for _, j := range o.Joints {
		j.Restricted[i] = true
	}
}

// AddMember appends a member connecting two joints, given by index, and
// returns it
func (o *Truss) AddMember(beginJoint, endJoint int, mat Material, shape shp.Shape) *Member {
	if beginJoint < 0 || beginJoint >= len(o.Joints) || endJoint < 0 || endJoint >= len(o.Joints) {
		chk.Panic("member joint indices (%d,%d) are out of range; truss has %d joints", beginJoint, endJoint, len(o.Joints))
	}
	m := &Member{
		Idx:   len(o.Members),
		Begin: beginJoint,
		End:   endJoint,
		Mat:   mat,
		Shape: shape,
		tr:    o,
	}
	o.Members = append(o.Members, m)
	o.Joints[beginJoint].Members = append(o.Joints[beginJoint].Members, m.Idx)
	o.Joints[endJoint].Members = append(o.Joints[endJoint].Members, m.Idx)
	return m
}

// MoveJoint relocates a joint. Previously computed forces, reactions and
// deflections become stale until Analyze runs again
func (o *Truss) MoveJoint(jointIndex int, coordinates []float64) {
	if len(coordinates) != 3 {
		chk.Panic("joints require 3 coordinates. %d is invalid", len(coordinates))
	}
	copy(o.Joints[jointIndex].Coordinates, coordinates)
}

// SetLoad applies a load to a joint, replacing any previous load
func (o *Truss) SetLoad(jointIndex int, load []float64) {
	if len(load) != 3 {
		chk.Panic("loads require 3 components. %d is invalid", len(load))
	}
	copy(o.Joints[jointIndex].Loads, load)
}

// Mass returns the total mass of all members
func (o *Truss) Mass() (mass float64) {
	for _, m := range o.Members {
		mass += m.Mass()
	}
	return
}

// FosYielding returns the smallest yielding factor of safety of any member.
// A memberless truss has no factor of safety and panics
func (o *Truss) FosYielding() float64 {
	if len(o.Members) == 0 {
		chk.Panic("cannot compute factors of safety: truss has no members")
	}
	res := 0.0
	for i, m := range o.Members {
		fos := m.FosYielding()
		if i == 0 || fos < res {
			res = fos
		}
	}
	return res
}

// FosBuckling returns the smallest buckling factor of safety of any member.
// Members in tension do not buckle and enter the aggregation with the
// NoBucklingFos sentinel. A memberless truss has no factor of safety and panics
func (o *Truss) FosBuckling() float64 {
	if len(o.Members) == 0 {
		chk.Panic("cannot compute factors of safety: truss has no members")
	}
	res := 0.0
	for i, m := range o.Members {
		fos := m.FosBuckling()
		if fos <= 0 {
			fos = NoBucklingFos
		}
		if i == 0 || fos < res {
			res = fos
		}
	}
	return res
}

// FosTotal returns the governing factor of safety of the truss
func (o *Truss) FosTotal() float64 {
	fy := o.FosYielding()
	fb := o.FosBuckling()
	if fb < fy {
		return fb
	}
	return fy
}

// LimitState returns which failure mode governs: "buckling" or "yielding"
func (o *Truss) LimitState() string {
	if o.FosBuckling() < o.FosYielding() {
		return "buckling"
	}
	return "yielding"
}

// Deflection returns the largest single-joint deflection magnitude
func (o *Truss) Deflection() (res float64) {
	for _, j := range o.Joints {
		d := j.DeflectionNorm()
		if d > res {
			res = d
		}
	}
	return
}

// Materials returns the unique materials used in the truss, in first-use order
func (o *Truss) Materials() (mats []Material) {
	seen := make(map[string]bool)
	for _, m := range o.Members {
		if !seen[m.Mat.Name] {
			seen[m.Mat.Name] = true
			mats = append(mats, m.Mat)
		}
	}
	return
}

// Planar classifies the truss as planar when exactly one translational axis
// is restrained at every joint, returning that axis name; otherwise returns
// "none". The classification lets the design-vector codec drop the redundant
// coordinate axis
func (o *Truss) Planar() string {
	planar := "none"
	count := 0
	for i, name := range AxisNames {
		all := len(o.Joints) > 0
		for _, j := range o.Joints {
			if !j.Restricted[i] {
				all = false
				break
			}
		}
		if all {
			planar = name
			count++
		}
	}
	if count != 1 {
		return "none"
	}
	return planar
}

// Clone returns a structurally independent deep copy of the truss. Shape
// instances are shared because shapes are immutable; everything else is
// copied
func (o *Truss) Clone() *Truss {
	t := New()
	t.Cond = o.Cond
	for _, j := range o.Joints {
		jj := &Joint{
			Idx:         j.Idx,
			Coordinates: append([]float64(nil), j.Coordinates...),
			Restricted:  append([]bool(nil), j.Restricted...),
			Loads:       append([]float64(nil), j.Loads...),
			Members:     append([]int(nil), j.Members...),
			Reactions:   append([]float64(nil), j.Reactions...),
			Deflections: append([]float64(nil), j.Deflections...),
		}
		t.Joints = append(t.Joints, jj)
	}
	for _, m := range o.Members {
		mm := &Member{
			Idx:   m.Idx,
			Begin: m.Begin,
			End:   m.End,
			Mat:   m.Mat,
			Shape: m.Shape,
			Force: m.Force,
			tr:    t,
		}
		t.Members = append(t.Members, mm)
	}
	return t
}
