// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

import "math"

// Goals holds the design targets a truss is evaluated against
type Goals struct {
	MinFosTotal    float64 // minimum governing factor of safety
	MinFosBuckling float64 // minimum buckling factor of safety
	MinFosYielding float64 // minimum yielding factor of safety
	MaxMass        float64 // maximum total mass
	MaxDeflection  float64 // maximum joint deflection magnitude
}

// NewGoals returns goals with default values: unit factors of safety and
// unbounded mass and deflection
func NewGoals() Goals {
	return Goals{
		MinFosTotal:    1.0,
		MinFosBuckling: 1.0,
		MinFosYielding: 1.0,
		MaxMass:        math.Inf(1),
		MaxDeflection:  math.Inf(1),
	}
}
