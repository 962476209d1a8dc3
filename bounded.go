// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

const (
	// DefaultMaxDepth is the recursion budget used when none is given.
	DefaultMaxDepth = 1000

	// MaxSafeDepth is the largest budget Bounded accepts. Closure
	// combinators use a few hundred bytes of stack per level, which keeps
	// this far below the runtime's 1 GB goroutine stack limit.
	MaxSafeDepth = 100_000
)

// Bounded decorates g with a recursion budget.
//
// Every application of the fixed point of the returned Generator passes
// through the decorator, including the outermost call, so the nesting
// depth is exact. When it exceeds maxDepth the call panics with a
// *[DepthError] before the goroutine stack can be exhausted; the Go
// runtime treats stack exhaustion as fatal, so the budget has to be
// enforced here. The depth is restored on unwind, which keeps the
// recursive function usable after a failure.
//
// A non-positive maxDepth selects [DefaultMaxDepth]; a budget above
// [MaxSafeDepth] is clamped to it.
// The returned Generator and the functions built from it are not safe
// for concurrent use.
func Bounded[A, B any](g Generator[A, B], maxDepth int) Generator[A, B] {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	maxDepth = min(maxDepth, MaxSafeDepth)
	depth := 0
	return func(f Func[A, B]) Func[A, B] {
		step := g(f)
		return func(x A) B {
			depth++
			defer func() { depth-- }()
			if depth > maxDepth {
				panic(&DepthError{Limit: maxDepth})
			}
			return step(x)
		}
	}
}
