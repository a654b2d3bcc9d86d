/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package block

import "errors"

// Sentinel errors for domain model operations.
var (
	// ErrInvalidName indicates a name that does not satisfy the
	// identifier grammar.
	ErrInvalidName = errors.New("invalid name")

	// ErrMissingName indicates a block or element without a name.
	ErrMissingName = errors.New("missing name")

	// ErrNilBlock indicates a nil block where a value is required.
	ErrNilBlock = errors.New("nil block")
)
