// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

import (
	"errors"
	"fmt"
)

var (
	// ErrRecursionDepth reports a recursion deeper than the available
	// stack budget. Raised by [Bounded] as a *DepthError panic.
	ErrRecursionDepth = errors.New("maximum recursion depth exceeded")

	// ErrArithmetic reports a numeric failure in fixed-width domains,
	// such as integer division by zero. Arbitrary-precision domains
	// never produce it.
	ErrArithmetic = errors.New("arithmetic failure")
)

// DepthError is the panic value raised by a [Bounded] generator.
// It matches [ErrRecursionDepth] under errors.Is.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s (limit %d)", ErrRecursionDepth, e.Limit)
}

// Is reports whether target is [ErrRecursionDepth].
func (e *DepthError) Is(target error) bool {
	return target == ErrRecursionDepth
}
