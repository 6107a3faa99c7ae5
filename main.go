// Copyright 2016 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gotruss analyzes pin-jointed trusses: member forces, joint deflections,
// support reactions and factors of safety for yielding and buckling
package main

import "github.com/cpmech/gotruss/cmd"

func main() {
	cmd.Execute()
}
