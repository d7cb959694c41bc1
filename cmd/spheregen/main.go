// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spheregen generates a UV sphere mesh and writes it to an
// OBJ or OFF file.
//
//	spheregen caps -n 32 -o sphere.obj
//	spheregen poles -p 48 -o sphere.off
//	spheregen caps --config sphere.toml
package main

import (
	"os"

	"cogentcore.org/uvsphere/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
