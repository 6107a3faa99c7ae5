// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotruss/truss"
)

// ReadJSON reads a truss from a JSON file using the built-in shapes
func ReadJSON(fn string) (*truss.Truss, error) {
	return ReadJSONShapes(fn, DefaultShapes())
}

// ReadJSONShapes reads a truss from a JSON file resolving shapes via the
// given registry
func ReadJSONShapes(fn string, shapes ShapeRegistry) (t *truss.Truss, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	var data TrussData
	if err = json.Unmarshal(b, &data); err != nil {
		return nil, chk.Err("cannot parse %q:\n%v", fn, err)
	}
	return data.MakeTruss(shapes)
}

// JSONString returns the JSON representation of a truss
func JSONString(t *truss.Truss) string {
	b, err := json.MarshalIndent(MakeData(t), "", "    ")
	if err != nil {
		chk.Panic("cannot marshal truss:\n%v", err)
	}
	return string(b) + "\n"
}

// WriteJSON writes a truss to dirout/fn in JSON
func WriteJSON(dirout, fn string, t *truss.Truss) {
	io.WriteFileD(dirout, fn, bytes.NewBufferString(JSONString(t)))
}
