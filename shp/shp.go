// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements cross-sectional shapes of truss members
package shp

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Shape defines the cross-section of a truss member. A Shape is immutable
// once constructed: to change dimensions, a member swaps its Shape instance
// wholesale. Any external type satisfying this interface can be used in
// addition to the built-in variants.
type Shape interface {
	Area() float64              // cross-sectional area
	Moi() float64               // second moment of area about the weak axis
	Name() string               // tag; e.g. "pipe", "bar", "square", "box"
	Params() map[string]float64 // defining parameters; e.g. {"r":…, "t":…}
}

// InvalidGeometryError indicates shape parameters that produce a degenerate
// cross-section; i.e. non-positive area or moment of inertia
type InvalidGeometryError struct {
	Shape  string // shape tag
	Reason string // what is wrong with the parameters
}

// Error returns the error message
func (o *InvalidGeometryError) Error() string {
	return io.Sf("invalid %q geometry: %s", o.Shape, o.Reason)
}

// Pipe is a hollow circular cross-section defined by outer radius and wall thickness
type Pipe struct {
	R float64 // outer radius
	T float64 // wall thickness
}

// NewPipe returns a pipe cross-section. The wall thickness must be positive
// and smaller than the outer radius
func NewPipe(r, t float64) (*Pipe, error) {
	if r <= 0 || t <= 0 {
		return nil, &InvalidGeometryError{"pipe", io.Sf("r=%g and t=%g must be positive", r, t)}
	}
	if t >= r {
		return nil, &InvalidGeometryError{"pipe", io.Sf("thickness t=%g must be smaller than radius r=%g", t, r)}
	}
	return &Pipe{r, t}, nil
}

// Area returns the cross-sectional area
func (o *Pipe) Area() float64 {
	ri := o.R - o.T
	return math.Pi * (o.R*o.R - ri*ri)
}

// Moi returns the second moment of area
func (o *Pipe) Moi() float64 {
	ri := o.R - 2.0*o.T
	r4 := o.R * o.R * o.R * o.R
	ri4 := ri * ri * ri * ri
	return (math.Pi / 4.0) * (r4 - ri4)
}

// Name returns the shape tag
func (o *Pipe) Name() string { return "pipe" }

// Params returns the defining parameters
func (o *Pipe) Params() map[string]float64 { return map[string]float64{"r": o.R, "t": o.T} }

// Bar is a solid circular cross-section defined by its radius
type Bar struct {
	R float64 // radius
}

// NewBar returns a bar cross-section
func NewBar(r float64) (*Bar, error) {
	if r <= 0 {
		return nil, &InvalidGeometryError{"bar", io.Sf("r=%g must be positive", r)}
	}
	return &Bar{r}, nil
}

// Area returns the cross-sectional area
func (o *Bar) Area() float64 { return math.Pi * o.R * o.R }

// Moi returns the second moment of area
func (o *Bar) Moi() float64 { return (math.Pi / 4.0) * o.R * o.R * o.R * o.R }

// Name returns the shape tag
func (o *Bar) Name() string { return "bar" }

// Params returns the defining parameters
func (o *Bar) Params() map[string]float64 { return map[string]float64{"r": o.R} }

// Square is a solid rectangular cross-section defined by width and height
type Square struct {
	W float64 // width
	H float64 // height
}

// NewSquare returns a square cross-section
func NewSquare(w, h float64) (*Square, error) {
	if w <= 0 || h <= 0 {
		return nil, &InvalidGeometryError{"square", io.Sf("w=%g and h=%g must be positive", w, h)}
	}
	return &Square{w, h}, nil
}

// Area returns the cross-sectional area
func (o *Square) Area() float64 { return o.W * o.H }

// Moi returns the second moment of area about the weak axis
func (o *Square) Moi() float64 {
	if o.H > o.W {
		return (1.0 / 12.0) * o.W * o.H * o.H * o.H
	}
	return (1.0 / 12.0) * o.H * o.W * o.W * o.W
}

// Name returns the shape tag
func (o *Square) Name() string { return "square" }

// Params returns the defining parameters
func (o *Square) Params() map[string]float64 { return map[string]float64{"w": o.W, "h": o.H} }

// Box is a hollow rectangular cross-section defined by width, height and wall thickness
type Box struct {
	W float64 // width
	H float64 // height
	T float64 // wall thickness
}

// NewBox returns a box cross-section. The wall thickness must be positive
// and smaller than half the smallest outer dimension
func NewBox(w, h, t float64) (*Box, error) {
	if w <= 0 || h <= 0 || t <= 0 {
		return nil, &InvalidGeometryError{"box", io.Sf("w=%g, h=%g and t=%g must be positive", w, h, t)}
	}
	if 2.0*t >= w || 2.0*t >= h {
		return nil, &InvalidGeometryError{"box", io.Sf("thickness t=%g must be smaller than half the outer dimensions w=%g, h=%g", t, w, h)}
	}
	return &Box{w, h, t}, nil
}

// Area returns the cross-sectional area
func (o *Box) Area() float64 {
	return o.W*o.H - (o.H-2.0*o.T)*(o.W-2.0*o.T)
}

// Moi returns the second moment of area about the weak axis
func (o *Box) Moi() float64 {
	wi := o.W - 2.0*o.T
	hi := o.H - 2.0*o.T
	if o.H > o.W {
		return (1.0/12.0)*o.W*o.H*o.H*o.H - (1.0/12.0)*wi*hi*hi*hi
	}
	return (1.0/12.0)*o.H*o.W*o.W*o.W - (1.0/12.0)*hi*wi*wi*wi
}

// Name returns the shape tag
func (o *Box) Name() string { return "box" }

// Params returns the defining parameters
func (o *Box) Params() map[string]float64 { return map[string]float64{"w": o.W, "h": o.H, "t": o.T} }
