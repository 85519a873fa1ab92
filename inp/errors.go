// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "errors"

// error kinds. use errors.Is to test for them
var (
	ErrConfig      = errors.New("configuration error") // inconsistent or unknown input
	ErrUnsupported = errors.New("unsupported feature") // recognised but not implemented
	ErrNumerical   = errors.New("numerical failure")   // singular, non-finite or non-converged solve
)
