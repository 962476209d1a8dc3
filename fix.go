// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Y returns the fixed point of g.
// The result F satisfies F(x) == g(F)(x) for every x, yet F is never bound
// to a name that refers to itself.
//
// Construction is lazy: s(s) runs only when the continuation is called,
// so Y returns without invoking g's recursion.
func Y[A, B any](g Generator[A, B]) Func[A, B] {
	return func(s selfFunc[A, B]) Func[A, B] { return s(s) }(func(s selfFunc[A, B]) Func[A, B] {
		return g(func(x A) B { return s(s)(x) })
	})
}

// YVerbose is [Y] spelled out with named intermediate bindings.
// Both encodings satisfy the same fixed-point law and are interchangeable.
func YVerbose[A, B any](g Generator[A, B]) Func[A, B] {
	// apply takes a self-applicable function and applies it to itself.
	// Everything recursive below is set up by this one call.
	apply := func(fn selfFunc[A, B]) Func[A, B] {
		return fn(fn)
	}

	// handler hands g a continuation capable of recursion.
	handler := func(recursive selfFunc[A, B]) Func[A, B] {
		// continuation receives the current argument and only then asks
		// recursive for the next level. Calling recursive(recursive) here
		// instead of inside the closure would never return.
		continuation := func(x A) B {
			next := recursive(recursive)
			return next(x)
		}
		return g(continuation)
	}

	return apply(handler)
}
