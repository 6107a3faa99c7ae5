// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gotruss command line interface
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gotruss/truss"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Pin-jointed truss analysis tool",
	Long: `gotruss - pin-jointed truss analyzer

Computes member forces, joint deflections, support reactions and
factors of safety for yielding and buckling of pin-jointed trusses
under static loads, including member self-weight.

Truss files are accepted in two formats:
  - the line-oriented .trs format
  - JSON

Use 'gotruss analyze' to evaluate a truss against design goals and
'gotruss convert' to translate between the two formats.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// load reads a truss file, choosing the format by extension
func load(fn string) (*truss.Truss, error) {
	switch filepath.Ext(fn) {
	case ".trs":
		return inp.ReadTrs(fn)
	case ".json":
		return inp.ReadJSON(fn)
	}
	return nil, fmt.Errorf("unknown file extension %q: expected .trs or .json", filepath.Ext(fn))
}
