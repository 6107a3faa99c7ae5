// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cpmech/gotruss/inp"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file> <output-file>",
	Short: "Convert a truss file between the .trs and JSON formats",
	Long: `Convert a truss file between the two supported formats. The formats
are chosen by extension: .trs for the line-oriented format, .json for JSON.

Examples:
  gotruss convert bridge.trs bridge.json
  gotruss convert bridge.json bridge.trs`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	t, err := load(args[0])
	if err != nil {
		return err
	}
	dir, fn := filepath.Split(args[1])
	if dir == "" {
		dir = "."
	}
	switch filepath.Ext(args[1]) {
	case ".trs":
		inp.WriteTrs(dir, fn, t)
	case ".json":
		inp.WriteJSON(dir, fn, t)
	default:
		return fmt.Errorf("unknown file extension %q: expected .trs or .json", filepath.Ext(args[1]))
	}
	return nil
}
