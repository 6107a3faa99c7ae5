// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/cpmech/gotruss/out"
	"github.com/cpmech/gotruss/truss"
	"github.com/spf13/cobra"
)

var (
	// design goals
	analyzeFosYielding   float64
	analyzeFosBuckling   float64
	analyzeMaxMass       float64
	analyzeMaxDeflection float64

	// report destination; empty means stdout
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <truss-file>",
	Short: "Analyze a truss and report against design goals",
	Long: `Analyze a truss file (.trs or JSON) and print a Markdown report
with member forces, reactions, deflections and factors of safety,
evaluated against the given design goals.

Examples:
  # Analyze with default goals (all FOS >= 1)
  gotruss analyze bridge.trs

  # Require a buckling FOS of 2 and cap deflection at 5 mm
  gotruss analyze bridge.json --fos-buckling 2 --max-deflection 0.005

  # Write the report to a file
  gotruss analyze bridge.trs -o report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeFosYielding, "fos-yielding", 1, "Minimum yielding factor of safety")
	analyzeCmd.Flags().Float64Var(&analyzeFosBuckling, "fos-buckling", 1, "Minimum buckling factor of safety")
	analyzeCmd.Flags().Float64Var(&analyzeMaxMass, "max-mass", math.Inf(1), "Maximum structural mass (kg)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxDeflection, "max-deflection", math.Inf(1), "Maximum joint deflection (m)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to this file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	t, err := load(args[0])
	if err != nil {
		return err
	}

	goals := truss.NewGoals()
	goals.MinFosYielding = analyzeFosYielding
	goals.MinFosBuckling = analyzeFosBuckling
	goals.MaxMass = analyzeMaxMass
	goals.MaxDeflection = analyzeMaxDeflection

	warn, err := t.Analyze()
	if err != nil {
		return err
	}
	if warn != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", warn)
	}

	if analyzeOutput != "" {
		dir, fn := filepath.Split(analyzeOutput)
		if dir == "" {
			dir = "."
		}
		return out.ReportToMd(dir, fn, t, goals)
	}
	report, err := out.Report(t, goals)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}
