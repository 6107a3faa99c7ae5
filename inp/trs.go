// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotruss/truss"
)

// ReadTrs reads a line-oriented .trs truss file using the built-in shapes.
// Record tags: S (material), J (joint), M (member), L (load); lines starting
// with '#' are comments
func ReadTrs(fn string) (*truss.Truss, error) {
	return ReadTrsShapes(fn, DefaultShapes())
}

// ReadTrsShapes reads a .trs truss file resolving shapes via the given registry
func ReadTrsShapes(fn string, shapes ShapeRegistry) (t *truss.Truss, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	var data TrussData
	for lidx, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "S":
			if len(fields) != 5 {
				return nil, chk.Err("line %d: material records need 4 values", lidx+1)
			}
			data.Materials = append(data.Materials, truss.Material{
				Name:           fields[1],
				Density:        io.Atof(fields[2]),
				ElasticModulus: io.Atof(fields[3]),
				YieldStrength:  io.Atof(fields[4]),
			})
		case "J":
			if len(fields) != 7 {
				return nil, chk.Err("line %d: joint records need 6 values", lidx+1)
			}
			data.Joints = append(data.Joints, JointData{
				Coordinates: []float64{io.Atof(fields[1]), io.Atof(fields[2]), io.Atof(fields[3])},
				Loads:       make([]float64, 3),
				Restricted:  []bool{io.Atob(fields[4]), io.Atob(fields[5]), io.Atob(fields[6])},
			})
		case "M":
			if len(fields) < 5 {
				return nil, chk.Err("line %d: member records need at least 4 values", lidx+1)
			}
			prms := make(map[string]float64)
			for _, kv := range fields[5:] {
				pair := strings.SplitN(kv, "=", 2)
				if len(pair) != 2 {
					return nil, chk.Err("line %d: cannot parse shape parameter %q", lidx+1, kv)
				}
				prms[pair[0]] = io.Atof(pair[1])
			}
			data.Members = append(data.Members, MemberData{
				BeginJoint: io.Atoi(fields[1]),
				EndJoint:   io.Atoi(fields[2]),
				Material:   fields[3],
				Shape:      fields[4],
				Parameters: prms,
			})
		case "L":
			if len(fields) != 5 {
				return nil, chk.Err("line %d: load records need 4 values", lidx+1)
			}
			jidx := io.Atoi(fields[1])
			if jidx < 0 || jidx >= len(data.Joints) {
				return nil, chk.Err("line %d: load references nonexistent joint %d", lidx+1, jidx)
			}
			data.Joints[jidx].Loads = []float64{io.Atof(fields[2]), io.Atof(fields[3]), io.Atof(fields[4])}
		default:
			if strings.HasPrefix(fields[0], "#") {
				continue
			}
			return nil, chk.Err("line %d: %q is not a valid record tag", lidx+1, fields[0])
		}
	}
	return data.MakeTruss(shapes)
}

// TrsString returns the .trs representation of a truss
func TrsString(t *truss.Truss) string {
	var sb strings.Builder
	data := MakeData(t)
	for _, m := range data.Materials {
		sb.WriteString(io.Sf("S\t%s\t%v\t%v\t%v\n", m.Name, m.Density, m.ElasticModulus, m.YieldStrength))
	}
	loads := ""
	for i, j := range data.Joints {
		sb.WriteString(io.Sf("J\t%v\t%v\t%v\t%d\t%d\t%d\n", j.Coordinates[0], j.Coordinates[1], j.Coordinates[2],
			b2i(j.Restricted[0]), b2i(j.Restricted[1]), b2i(j.Restricted[2])))
		if j.Loads[0] != 0 || j.Loads[1] != 0 || j.Loads[2] != 0 {
			loads += io.Sf("L\t%d\t%v\t%v\t%v\n", i, j.Loads[0], j.Loads[1], j.Loads[2])
		}
	}
	for _, m := range data.Members {
		sb.WriteString(io.Sf("M\t%d\t%d\t%s\t%s", m.BeginJoint, m.EndJoint, m.Material, m.Shape))
		for _, name := range sortedParamNames(m.Parameters) {
			sb.WriteString(io.Sf("\t%s=%v", name, m.Parameters[name]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(loads)
	return sb.String()
}

// WriteTrs writes a truss to dirout/fn in the .trs format
func WriteTrs(dirout, fn string, t *truss.Truss) {
	io.WriteFileD(dirout, fn, bytes.NewBufferString(TrsString(t)))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
