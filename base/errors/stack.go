// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"runtime"
	"strconv"
	"strings"
)

// Debug is whether logged errors include the file and line of the
// caller that logged them.
var Debug = true

// CallerInfo returns the file and line of the caller of the function
// that called CallerInfo, or "" if [Debug] is false.
func CallerInfo() string {
	if !Debug {
		return ""
	}
	pc := make([]uintptr, 1)
	// skip runtime.Callers, CallerInfo and the Log function itself
	if runtime.Callers(3, pc) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	if strings.Contains(frame.File, "runtime/") {
		return ""
	}
	return frame.File + ":" + strconv.Itoa(frame.Line)
}
