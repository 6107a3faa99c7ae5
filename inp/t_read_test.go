// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotruss/shp"
	"github.com/cpmech/gotruss/truss"
)

func verbose() {
	chk.Verbose = true
}

// sample builds the same truss persisted in data/bridge.trs and data/bridge.json
func sample() *truss.Truss {
	steel := truss.Material{Name: "steel", Density: 7800, ElasticModulus: 2e11, YieldStrength: 2.5e8}
	pipe, _ := shp.NewPipe(0.02, 0.002)
	bar, _ := shp.NewBar(0.02)
	t := truss.New()
	t.AddPinnedSupport([]float64{0, 0, 0})
	t.AddRollerSupport([]float64{5, 0, 0}, "y")
	t.AddJoint([]float64{2.5, 2.5, 0})
	t.AddOutOfPlaneSupport("z")
	t.SetLoad(2, []float64{0, -20000, 0})
	t.AddMember(0, 2, steel, pipe)
	t.AddMember(2, 1, steel, pipe)
	t.AddMember(0, 1, steel, bar)
	return t
}

// sameResults analyzes both trusses and compares forces, deflections and mass
func sameResults(tst *testing.T, a, b *truss.Truss) {
	_, err := a.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	_, err = b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	chk.IntAssert(len(b.Members), len(a.Members))
	chk.IntAssert(len(b.Joints), len(a.Joints))
	for i := range a.Members {
		chk.Scalar(tst, io.Sf("member %d force", i), 1e-9, b.Members[i].Force, a.Members[i].Force)
	}
	for i := range a.Joints {
		chk.Vector(tst, io.Sf("joint %d deflections", i), 1e-14, b.Joints[i].Deflections, a.Joints[i].Deflections)
	}
	chk.Scalar(tst, "mass", 1e-12, b.Mass(), a.Mass())
}

func Test_inp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp01. read .trs file")

	t, err := ReadTrs("data/bridge.trs")
	if err != nil {
		tst.Errorf("cannot read bridge.trs:\n%v", err)
		return
	}
	chk.IntAssert(len(t.Joints), 3)
	chk.IntAssert(len(t.Members), 3)
	chk.StrAssert(t.Planar(), "z")
	chk.Vector(tst, "loads", 1e-17, t.Joints[2].Loads, []float64{0, -20000, 0})
	chk.StrAssert(t.Members[0].Shape.Name(), "pipe")
	chk.StrAssert(t.Members[2].Shape.Name(), "bar")
	chk.Scalar(tst, "pipe radius", 1e-17, t.Members[0].Shape.(*shp.Pipe).R, 0.02)
	chk.StrAssert(t.Members[0].Mat.Name, "steel")

	sameResults(tst, sample(), t)
}

func Test_inp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp02. .trs round-trip")

	t := sample()
	fn := "test_bridge.trs"
	WriteTrs("/tmp/gotruss/inp", fn, t)

	tt, err := ReadTrs("/tmp/gotruss/inp/" + fn)
	if err != nil {
		tst.Errorf("cannot read test_bridge.trs:\n%v", err)
		return
	}
	for i := range t.Joints {
		chk.Vector(tst, io.Sf("joint %d coords", i), 1e-17, tt.Joints[i].Coordinates, t.Joints[i].Coordinates)
	}
	sameResults(tst, t, tt)
}

func Test_inp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp03. JSON file and round-trip")

	t, err := ReadJSON("data/bridge.json")
	if err != nil {
		tst.Errorf("cannot read bridge.json:\n%v", err)
		return
	}
	sameResults(tst, sample(), t)

	fn := "test_bridge.json"
	WriteJSON("/tmp/gotruss/inp", fn, t)
	tt, err := ReadJSON("/tmp/gotruss/inp/" + fn)
	if err != nil {
		tst.Errorf("cannot read test_bridge.json:\n%v", err)
		return
	}
	sameResults(tst, t, tt)
}

func Test_inp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp04. schema errors are load-time failures")

	// invalid record tag
	io.WriteFileD("/tmp/gotruss/inp", "bad_tag.trs", bytes.NewBufferString("X\t1\t2\n"))
	if _, err := ReadTrs("/tmp/gotruss/inp/bad_tag.trs"); err == nil {
		tst.Errorf("invalid tag should fail")
		return
	}

	// unknown material
	data := MakeData(sample())
	data.Members[0].Material = "unobtainium"
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("unknown material should fail")
		return
	}

	// unknown shape
	data = MakeData(sample())
	data.Members[0].Shape = "hexagon"
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("unknown shape should fail")
		return
	}

	// unknown shape parameter
	data = MakeData(sample())
	data.Members[0].Parameters["w"] = 1
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("unknown parameter should fail")
		return
	}

	// degenerate geometry
	data = MakeData(sample())
	data.Members[0].Parameters["t"] = 1.0
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("degenerate geometry should fail")
		return
	}

	// member referencing nonexistent joint
	data = MakeData(sample())
	data.Members[0].EndJoint = 99
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("bad joint index should fail")
		return
	}
}

func Test_inp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp05. user-defined shapes via registry")

	// a custom shape under a new tag
	shapes := DefaultShapes()
	shapes["rod"] = func(prms map[string]float64) (shp.Shape, error) {
		return shp.NewBar(prms["r"])
	}

	data := MakeData(sample())
	data.Members[2].Shape = "rod"
	t, err := data.MakeTruss(shapes)
	if err != nil {
		tst.Errorf("cannot build truss with custom shape:\n%v", err)
		return
	}
	chk.StrAssert(t.Members[2].Shape.Name(), "bar")

	// the default registry rejects the tag
	if _, err := data.MakeTruss(DefaultShapes()); err == nil {
		tst.Errorf("default registry should reject custom tag")
		return
	}
}
