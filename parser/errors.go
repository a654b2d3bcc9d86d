/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"

	"bennypowers.dev/bem/grammar"
)

// InvariantError reports a parse tree shape the grammar can never
// produce. It indicates a defect in the grammar/reducer pairing, not a
// problem with the input, and is kept distinct from *grammar.SyntaxError
// so callers never mistake one for the other.
type InvariantError struct {
	// Kind is the node kind the reducer was examining.
	Kind grammar.Kind

	// Reason describes the violated expectation.
	Reason string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violation at %s node: %s", e.Kind, e.Reason)
}
