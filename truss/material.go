// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

// Material holds the physical properties of a member material. Materials are
// shared by value across members; any conforming record is valid, not only
// the ones in the built-in library.
type Material struct {
	Name           string  `json:"name"`            // name of material
	Density        float64 `json:"density"`         // [kg/m³]
	ElasticModulus float64 `json:"elastic_modulus"` // Young's modulus [Pa]
	YieldStrength  float64 `json:"yield_strength"`  // [Pa]
}

// MaterialLibrary returns a fresh copy of the built-in materials catalog
func MaterialLibrary() []Material {
	return []Material{
		{"A36_Steel", 7800.0, 200e9, 250e6},
		{"A992_Steel", 7800.0, 200e9, 345e6},
		{"6061_T6_Aluminum", 2700.0, 68.9e9, 276e6},
	}
}

// GetMaterial finds a material by name in the given catalog
//  Note: returns nil if not found
func GetMaterial(catalog []Material, name string) *Material {
	for i, m := range catalog {
		if m.Name == name {
			return &catalog[i]
		}
	}
	return nil
}
