// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out generates Markdown analysis reports
package out

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotruss/truss"
)

// Report analyzes the truss and returns a full Markdown report evaluating it
// against the given design goals
func Report(t *truss.Truss, goals truss.Goals) (report string, err error) {
	_, err = t.Analyze()
	if err != nil {
		return
	}
	report = summary(t, goals) + "\n"
	report += instantiation(t) + "\n"
	report += stressAnalysis(t, goals) + "\n"
	return
}

// ReportToMd writes a Markdown report to dirout/fn
func ReportToMd(dirout, fn string, t *truss.Truss, goals truss.Goals) (err error) {
	report, err := Report(t, goals)
	if err != nil {
		return
	}
	io.WriteFileD(dirout, fn, bytes.NewBufferString(report))
	return
}

func summary(t *truss.Truss, goals truss.Goals) (s string) {
	s = "# SUMMARY OF ANALYSIS\n"
	s += io.Sf("- The truss has a mass of %.2f kg, and a total factor of safety of %.2f.\n", t.Mass(), t.FosTotal())
	s += io.Sf("- The limit state is %s.\n", t.LimitState())

	var ok, bad []string
	classify := func(name string, satisfied bool) {
		if satisfied {
			ok = append(ok, name)
		} else {
			bad = append(bad, name)
		}
	}
	classify("buckling FOS", t.FosBuckling() > goals.MinFosBuckling)
	classify("yielding FOS", t.FosYielding() > goals.MinFosYielding)
	classify("mass", t.Mass() < goals.MaxMass)
	classify("deflection", t.Deflection() < goals.MaxDeflection)
	if len(ok) > 0 {
		s += io.Sf("- The design goals for %s were satisfied.\n", joinNames(ok))
	}
	if len(bad) > 0 {
		s += io.Sf("- The design goals for %s were not satisfied.\n", joinNames(bad))
	}

	s += "\n" + mdTable(
		[]string{"", "Target", "Actual", "Ok?"},
		[][]string{
			{"Minimum FOS for Buckling", io.Sf("%g", goals.MinFosBuckling), io.Sf("%g", t.FosBuckling()), yesno(t.FosBuckling() > goals.MinFosBuckling)},
			{"Minimum FOS for Yielding", io.Sf("%g", goals.MinFosYielding), io.Sf("%g", t.FosYielding()), yesno(t.FosYielding() > goals.MinFosYielding)},
			{"Maximum Mass", io.Sf("%g", goals.MaxMass), io.Sf("%g", t.Mass()), yesno(t.Mass() < goals.MaxMass)},
			{"Maximum Deflection", io.Sf("%g", goals.MaxDeflection), io.Sf("%g", t.Deflection()), yesno(t.Deflection() < goals.MaxDeflection)},
		},
	)
	return
}

func instantiation(t *truss.Truss) (s string) {
	s = "# INSTANTIATION INFORMATION\n"

	s += "## JOINTS\n"
	var rows [][]string
	for _, j := range t.Joints {
		rows = append(rows, []string{
			io.Sf("Joint_%02d", j.Idx),
			io.Sf("%g", j.Coordinates[0]), io.Sf("%g", j.Coordinates[1]), io.Sf("%g", j.Coordinates[2]),
			yesno(j.Restricted[0]), yesno(j.Restricted[1]), yesno(j.Restricted[2]),
		})
	}
	s += mdTable([]string{"", "X", "Y", "Z", "X Support?", "Y Support?", "Z Support?"}, rows)

	s += "\n## MEMBERS\n"
	rows = nil
	for _, m := range t.Members {
		rows = append(rows, []string{
			io.Sf("Member_%02d", m.Idx),
			io.Sf("%d", m.Begin), io.Sf("%d", m.End),
			m.Mat.Name, m.Shape.Name(), paramString(m.Shape.Params()),
			io.Sf("%g", m.Mass()),
		})
	}
	s += mdTable([]string{"", "Beginning Joint", "Ending Joint", "Material", "Shape", "Parameters (m)", "Mass (kg)"}, rows)

	s += "\n## MATERIALS\n"
	rows = nil
	for _, mat := range t.Materials() {
		rows = append(rows, []string{
			mat.Name,
			io.Sf("%g", mat.Density),
			io.Sf("%g", mat.ElasticModulus/1e9),
			io.Sf("%g", mat.YieldStrength/1e6),
		})
	}
	s += mdTable([]string{"", "Density (kg/m3)", "Elastic Modulus (GPa)", "Yield Strength (MPa)"}, rows)
	return
}

func stressAnalysis(t *truss.Truss, goals truss.Goals) (s string) {
	s = "# STRESS ANALYSIS INFORMATION\n"

	// applied loads, with the lumped self-weight included in the y component
	s += "## LOADING\n"
	var rows [][]string
	for _, j := range t.Joints {
		sw := 0.0
		for _, mi := range j.Members {
			sw += t.Members[mi].Mass() / 2.0 * truss.Gravity
		}
		rows = append(rows, []string{
			io.Sf("Joint_%02d", j.Idx),
			io.Sf("%g", j.Loads[0]/1e3),
			io.Sf("%.2f", (j.Loads[1]-sw)/1e3),
			io.Sf("%g", j.Loads[2]/1e3),
		})
	}
	s += mdTable([]string{"", "X Load (kN)", "Y Load (kN)", "Z Load (kN)"}, rows)

	s += "\n## REACTIONS\n"
	rows = nil
	for _, j := range t.Joints {
		row := []string{io.Sf("Joint_%02d", j.Idx)}
		for a := 0; a < 3; a++ {
			if j.Restricted[a] {
				row = append(row, io.Sf("%.2f", j.Reactions[a]/1e3))
			} else {
				row = append(row, "N/A")
			}
		}
		rows = append(rows, row)
	}
	s += mdTable([]string{"", "X Reaction (kN)", "Y Reaction (kN)", "Z Reaction (kN)"}, rows)

	s += "\n## FORCES AND STRESSES\n"
	rows = nil
	for _, m := range t.Members {
		fb := "N/A"
		if m.FosBuckling() > 0 {
			fb = io.Sf("%g", m.FosBuckling())
		}
		rows = append(rows, []string{
			io.Sf("Member_%02d", m.Idx),
			io.Sf("%g", m.Area()),
			io.Sf("%.2e", m.Moi()),
			io.Sf("%.2f", m.Force/1e3),
			io.Sf("%g", m.FosYielding()),
			yesno(m.FosYielding() > goals.MinFosYielding),
			fb,
			yesno(m.FosBuckling() > goals.MinFosBuckling || m.FosBuckling() < 0),
		})
	}
	s += mdTable([]string{"", "Area (m^2)", "Moment of Inertia (m^4)", "Axial force (kN)", "FOS yielding", "OK yielding?", "FOS buckling", "OK buckling?"}, rows)

	s += "\n## DEFLECTIONS\n"
	rows = nil
	for _, j := range t.Joints {
		row := []string{io.Sf("Joint_%02d", j.Idx)}
		for a := 0; a < 3; a++ {
			if j.Restricted[a] {
				row = append(row, "N/A")
			} else {
				row = append(row, io.Sf("%.5f", j.Deflections[a]*1e3))
			}
		}
		row = append(row, yesno(j.DeflectionNorm() < goals.MaxDeflection))
		rows = append(rows, row)
	}
	s += mdTable([]string{"", "X Deflection (mm)", "Y Deflection (mm)", "Z Deflection (mm)", "OK Deflection?"}, rows)
	return
}

// mdTable renders a Markdown table with padded columns. The first header
// entry labels the index column
func mdTable(header []string, rows [][]string) string {
	width := make([]int, len(header))
	for i, h := range header {
		width[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > width[i] {
				width[i] = len(cell)
			}
		}
	}
	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", width[i]-len(cell)+1))
		}
		sb.WriteString("|\n")
	}
	writeRow(header)
	for i := range header {
		sb.WriteString("|" + strings.Repeat("-", width[i]+2))
	}
	sb.WriteString("|\n")
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// paramString formats shape parameters as "t=0.002, r=0.02" in canonical order
func paramString(prms map[string]float64) string {
	var parts []string
	for _, name := range []string{"t", "r", "w", "h"} {
		if v, ok := prms[name]; ok {
			parts = append(parts, io.Sf("%s=%g", name, v))
		}
	}
	return strings.Join(parts, ", ")
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}

func yesno(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
