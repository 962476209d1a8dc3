// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fix builds recursive functions without named self-reference.
//
// A [Generator] describes one level of a recursion in terms of a
// continuation standing in for the finished function. A combinator turns
// it into a [Func] that is its own fixed point: F(x) == g(F)(x).
// This is how recursion is recovered in evaluators, rule engines, and
// expression languages that have no recursive binding.
//
// # Combinators
//
// Functional form, two interchangeable encodings:
//
//   - [Y]: compact self-application
//   - [YVerbose]: the same with named intermediate bindings
//
// Object form, the same algorithm as an explicit two-method protocol:
//
//   - [SelfApplier]: F-bounded interface (SelfApply, GenerateRecursiveFunc)
//   - [Combinator]: holds one Generator; [Combinator.Fix] is the entry point
//   - [FixWith]: run the protocol on any SelfApplier
//
// Stack-safe form on a defunctionalized trampoline:
//
//   - [ExprGenerator]: a Generator whose continuation returns [Expr]
//   - [FixExpr]: fixed point evaluated by [RunPure]
//   - [Defer], [ExprReturn], [ExprMap], [ExprBind]: building blocks
//
// # Eager Evaluation
//
// Go evaluates arguments eagerly. Every combinator here wraps the inner
// self-application s(s) in a one-argument closure (or a [Defer] thunk),
// so building the function never recurses. Calling s(s) directly would
// recurse forever before any input is supplied.
//
// # Stack Budget
//
// Goroutine stacks grow until the runtime aborts the process, and that
// abort cannot be recovered. [Bounded] decorates a Generator with an
// explicit depth budget and panics with *[DepthError] instead; callers
// convert it into an error at their own boundary. The combinators
// themselves perform no error handling.
//
//   - [ErrRecursionDepth]: the depth budget was exceeded
//   - [ErrArithmetic]: reserved for fixed-width numeric failures
//
// [Either] carries a success or an error as a value.
//
// # Example
//
//	fact := fix.Y(func(f fix.Func[int, int]) fix.Func[int, int] {
//		return func(n int) int {
//			if n == 0 {
//				return 1
//			}
//			return n * f(n-1)
//		}
//	})
//	// fact(5) == 120
package fix
