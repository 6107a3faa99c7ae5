// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements reading and writing of truss data files, in the
// line-oriented .trs format and in JSON
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotruss/shp"
)

// ShapeMaker creates a shape from named parameters; e.g. {"r":…, "t":…}.
// Unknown parameter names must be rejected
type ShapeMaker func(prms map[string]float64) (shp.Shape, error)

// ShapeRegistry maps shape tags to makers. Registries are passed explicitly
// to the readers so that user-defined shapes can be loaded without any
// global state
type ShapeRegistry map[string]ShapeMaker

// DefaultShapes returns a registry with the four built-in shapes
func DefaultShapes() ShapeRegistry {
	return ShapeRegistry{
		"pipe": func(prms map[string]float64) (shp.Shape, error) {
			if err := checkKeys("pipe", prms, "r", "t"); err != nil {
				return nil, err
			}
			return shp.NewPipe(prms["r"], prms["t"])
		},
		"bar": func(prms map[string]float64) (shp.Shape, error) {
			if err := checkKeys("bar", prms, "r"); err != nil {
				return nil, err
			}
			return shp.NewBar(prms["r"])
		},
		"square": func(prms map[string]float64) (shp.Shape, error) {
			if err := checkKeys("square", prms, "w", "h"); err != nil {
				return nil, err
			}
			return shp.NewSquare(prms["w"], prms["h"])
		},
		"box": func(prms map[string]float64) (shp.Shape, error) {
			if err := checkKeys("box", prms, "w", "h", "t"); err != nil {
				return nil, err
			}
			return shp.NewBox(prms["w"], prms["h"], prms["t"])
		},
	}
}

// checkKeys returns an error if prms holds a key not in the allowed set
func checkKeys(shape string, prms map[string]float64, allowed ...string) error {
	for key := range prms {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return chk.Err("shape %q does not accept parameter %q", shape, key)
		}
	}
	return nil
}

// paramOrder is the canonical parameter order used when writing files
var paramOrder = []string{"t", "r", "w", "h"}
