// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Gravity is the standard gravity constant [m/s²] used to lump member
// self-weight onto the end joints
const Gravity = 9.80665

// CondMax is the condition-number threshold above which Analyze returns an
// IllConditionedSystemWarning
const CondMax = 1e5

// SingularSystemError indicates that the reduced stiffness matrix is not
// invertible; i.e. the truss has insufficient restraint. The analysis call
// fails and no results are written; the caller must alter the model and retry
type SingularSystemError struct{}

// Error returns the error message
func (o *SingularSystemError) Error() string {
	return "reduced stiffness matrix is singular: truss has insufficient restraint"
}

// IllConditionedSystemWarning signals that the reduced system's condition
// number exceeds CondMax; the geometry is nearly kinematically unstable
// (e.g. under-supported or with collinear members). Results are still
// written but may be unreliable
type IllConditionedSystemWarning struct {
	Cond float64 // condition number of the reduced stiffness matrix
}

// Error returns the warning message
func (o *IllConditionedSystemWarning) Error() string {
	return io.Sf("reduced stiffness matrix is ill-conditioned (cond=%g): geometry is nearly kinematically unstable", o.Cond)
}

// Analyze computes member axial forces, joint reactions and joint
// deflections for the current geometry, restraints and loads. The call is a
// pure function of the current state: every result field is overwritten.
//
// The vertical (y) component of each joint load is first reduced by half the
// self-weight of every incident member. The global 3n×3n stiffness matrix is
// assembled from each member's direction outer-product scaled by E·A/L, the
// degrees of freedom are partitioned by restraint, and the free-free block is
// solved for the unknown deflections. Reactions follow from the full matrix
// times the full deflection vector; member forces from E·A/L times the axial
// relative deflection.
//
// A non-nil warning is returned when the reduced system is ill-conditioned;
// results are written nonetheless
func (o *Truss) Analyze() (warn *IllConditionedSystemWarning, err error) {

	// applied loads with lumped self-weight
	nj := len(o.Joints)
	n := 3 * nj
	loads := make([]float64, n)
	for i, j := range o.Joints {
		weight := 0.0
		for _, mi := range j.Members {
			weight += o.Members[mi].Mass() / 2.0 * Gravity
		}
		loads[3*i] = j.Loads[0]
		loads[3*i+1] = j.Loads[1] - weight
		loads[3*i+2] = j.Loads[2]
	}

	// assemble global stiffness matrix
	kk := la.MatAlloc(n, n)
	for _, m := range o.Members {
		d := m.Direction()
		k := m.Stiffness()
		a, b := 3*m.Begin, 3*m.End
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := k * d[i] * d[j]
				kk[a+i][a+j] += v
				kk[a+i][b+j] -= v
				kk[b+i][a+j] -= v
				kk[b+i][b+j] += v
			}
		}
	}

	// partition degrees of freedom by restraint
	var free []int
	for i, j := range o.Joints {
		for a := 0; a < 3; a++ {
			if !j.Restricted[a] {
				free = append(free, 3*i+a)
			}
		}
	}
	nf := len(free)

	// solve reduced system for unknown deflections
	u := make([]float64, n)
	o.Cond = 1.0
	if nf > 0 {
		kf := mat.NewDense(nf, nf, nil)
		ff := mat.NewVecDense(nf, nil)
		for i, I := range free {
			ff.SetVec(i, loads[I])
			for j, J := range free {
				kf.Set(i, j, kk[I][J])
			}
		}
		var uf mat.VecDense
		errSolve := uf.SolveVec(kf, ff)
		if errSolve != nil {
			cond, ok := errSolve.(mat.Condition)
			if !ok || math.IsInf(float64(cond), 1) {
				return nil, &SingularSystemError{}
			}
		}
		o.Cond = mat.Cond(kf, 2)
		for i, I := range free {
			u[I] = uf.AtVec(i)
		}
	}

	// full reactions
	reactions := make([]float64, n)
	la.MatVecMul(reactions, 1, kk, u)

	// member axial forces
	for _, m := range o.Members {
		d := m.Direction()
		a, b := 3*m.Begin, 3*m.End
		du := 0.0
		for i := 0; i < 3; i++ {
			du += d[i] * (u[b+i] - u[a+i])
		}
		m.Force = m.Stiffness() * du
	}

	// joint results: reactions on restrained axes, deflections on free axes
	for i, j := range o.Joints {
		for a := 0; a < 3; a++ {
			if j.Restricted[a] {
				j.Reactions[a] = reactions[3*i+a]
				j.Deflections[a] = 0.0
			} else {
				j.Reactions[a] = 0.0
				j.Deflections[a] = u[3*i+a]
			}
		}
	}

	if o.Cond > CondMax {
		warn = &IllConditionedSystemWarning{o.Cond}
	}
	return
}
