// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/uvsphere/base/errors"

var (
	// ErrInvalidPrecision is returned when a sphere is requested with
	// a precision that cannot produce a valid mesh.
	ErrInvalidPrecision = errors.New("shape: invalid precision")

	// ErrOddPrecision is returned by [CapSphereOptions.New] when
	// RequireEven is set and the precision is odd.
	ErrOddPrecision = errors.New("shape: precision must be even")
)
