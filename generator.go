// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Func is a unary function from A to B.
// It is both the shape of a recursive function produced by a combinator
// and the shape of the continuation handed to a [Generator].
type Func[A, B any] func(A) B

// Generator describes one level of a recursion.
//
// The argument is a placeholder for the not-yet-built recursive function.
// A Generator must call it only on strictly smaller sub-problems and must
// answer its base cases without it. Generators are pure and never mutated
// once defined; the same Generator may back any number of combinators.
//
//	fact := func(f fix.Func[int, int]) fix.Func[int, int] {
//		return func(n int) int {
//			if n == 0 {
//				return 1
//			}
//			return n * f(n-1)
//		}
//	}
type Generator[A, B any] func(Func[A, B]) Func[A, B]

// selfFunc is a function that accepts itself.
// Self-application s(s) is how a combinator manufactures a recursive
// function without binding it to its own name.
type selfFunc[A, B any] func(selfFunc[A, B]) Func[A, B]
