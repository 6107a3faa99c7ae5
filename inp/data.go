// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotruss/truss"
)

// JointData holds one joint record
type JointData struct {
	Coordinates []float64 `json:"coordinates"`            // [3] position
	Loads       []float64 `json:"loads"`                  // [3] applied load
	Restricted  []bool    `json:"translation_restricted"` // [3] restrained axes
}

// MemberData holds one member record. Shape parameters are keyed by the
// shape-specific names; e.g. r,t for pipe
type MemberData struct {
	BeginJoint int                `json:"begin_joint"` // index of begin joint
	EndJoint   int                `json:"end_joint"`   // index of end joint
	Material   string             `json:"material"`    // material name
	Shape      string             `json:"shape"`       // shape tag
	Parameters map[string]float64 `json:"parameters"`  // shape parameters
}

// TrussData holds a complete persisted truss
type TrussData struct {
	Materials []truss.Material `json:"materials"`
	Joints    []JointData      `json:"joints"`
	Members   []MemberData     `json:"members"`
}

// MakeTruss converts persisted records into a truss, resolving material
// names and building shapes via the given registry. Any unknown material,
// shape or parameter name is a load-time failure; nothing is silently
// defaulted
func (o TrussData) MakeTruss(shapes ShapeRegistry) (t *truss.Truss, err error) {
	t = truss.New()
	for i, jd := range o.Joints {
		if len(jd.Coordinates) != 3 || len(jd.Restricted) != 3 {
			return nil, chk.Err("joint %d must have 3 coordinates and 3 restraint flags", i)
		}
		j := t.AddJoint(jd.Coordinates)
		copy(j.Restricted, jd.Restricted)
		if jd.Loads != nil {
			if len(jd.Loads) != 3 {
				return nil, chk.Err("joint %d must have 3 load components", i)
			}
			copy(j.Loads, jd.Loads)
		}
	}
	for i, md := range o.Members {
		mat := truss.GetMaterial(o.Materials, md.Material)
		if mat == nil {
			return nil, chk.Err("member %d references unknown material %q", i, md.Material)
		}
		maker, ok := shapes[md.Shape]
		if !ok {
			return nil, chk.Err("member %d references unknown shape %q", i, md.Shape)
		}
		s, err := maker(md.Parameters)
		if err != nil {
			return nil, chk.Err("member %d has invalid shape parameters:\n%v", i, err)
		}
		if md.BeginJoint < 0 || md.BeginJoint >= len(t.Joints) || md.EndJoint < 0 || md.EndJoint >= len(t.Joints) {
			return nil, chk.Err("member %d references nonexistent joints (%d,%d)", i, md.BeginJoint, md.EndJoint)
		}
		t.AddMember(md.BeginJoint, md.EndJoint, *mat, s)
	}
	return
}

// MakeData converts a truss into persistable records
func MakeData(t *truss.Truss) (o TrussData) {
	o.Materials = t.Materials()
	for _, j := range t.Joints {
		o.Joints = append(o.Joints, JointData{
			Coordinates: append([]float64(nil), j.Coordinates...),
			Loads:       append([]float64(nil), j.Loads...),
			Restricted:  append([]bool(nil), j.Restricted...),
		})
	}
	for _, m := range t.Members {
		o.Members = append(o.Members, MemberData{
			BeginJoint: m.Begin,
			EndJoint:   m.End,
			Material:   m.Mat.Name,
			Shape:      m.Shape.Name(),
			Parameters: m.Shape.Params(),
		})
	}
	return
}

// sortedParamNames returns parameter names in canonical order (t,r,w,h
// first, any others alphabetically after)
func sortedParamNames(prms map[string]float64) (names []string) {
	for _, name := range paramOrder {
		if _, ok := prms[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range prms {
		known := false
		for _, p := range paramOrder {
			if name == p {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
