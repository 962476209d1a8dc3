// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"code.hybscloud.com/fix"
)

// Eval applies f to x and converts a panic into a Left value.
// This is the only place failures of a recursive function are recovered.
//
//   - *fix.DepthError stays as is and matches fix.ErrRecursionDepth
//   - arithmetic runtime panics are wrapped with fix.ErrArithmetic
//   - anything else becomes an error carrying the panic value
func Eval[A, B any](f fix.Func[A, B], x A) (out fix.Either[error, B]) {
	defer func() {
		if r := recover(); r != nil {
			out = fix.Left[error, B](recovered(r))
		}
	}()
	return fix.Right[error](f(x))
}

func recovered(r any) error {
	switch v := r.(type) {
	case *fix.DepthError:
		return v
	case runtime.Error:
		if isArithmetic(v.Error()) {
			return fmt.Errorf("%w: %v", fix.ErrArithmetic, v)
		}
		return fmt.Errorf("panic: %w", v)
	case error:
		if errors.Is(v, fix.ErrRecursionDepth) || errors.Is(v, fix.ErrArithmetic) {
			return v
		}
		return fmt.Errorf("panic: %w", v)
	case string:
		// math/big panics with plain strings
		if isArithmetic(v) {
			return fmt.Errorf("%w: %s", fix.ErrArithmetic, v)
		}
		return fmt.Errorf("panic: %s", v)
	default:
		return fmt.Errorf("panic: %v", v)
	}
}

func isArithmetic(msg string) bool {
	return strings.Contains(msg, "divide by zero") ||
		strings.Contains(msg, "division by zero") ||
		strings.Contains(msg, "overflow")
}
