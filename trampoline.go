// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// ExprFunc is a unary function whose result is a deferred [Expr].
type ExprFunc[A, B any] func(A) Expr[B]

// ExprGenerator is a [Generator] for the trampolined engine.
// The continuation returns a suspended computation instead of a value;
// results of sub-problems are consumed with [ExprMap] or [ExprBind].
//
//	fact := func(f fix.ExprFunc[int, int]) fix.ExprFunc[int, int] {
//		return func(n int) fix.Expr[int] {
//			if n == 0 {
//				return fix.ExprReturn(1)
//			}
//			return fix.ExprMap(f(n-1), func(r int) int { return n * r })
//		}
//	}
type ExprGenerator[A, B any] func(ExprFunc[A, B]) ExprFunc[A, B]

type selfExprFunc[A, B any] func(selfExprFunc[A, B]) ExprFunc[A, B]

// FixExpr returns the fixed point of g evaluated on a trampoline.
//
// The self-application is the one in [Y], except that the continuation
// wraps s(s)(x) in [Defer]. Every level of recursion becomes a frame on
// the heap and [RunPure] unwinds them iteratively, so recursion depth
// is bounded by memory rather than by the goroutine stack.
func FixExpr[A, B any](g ExprGenerator[A, B]) Func[A, B] {
	step := func(s selfExprFunc[A, B]) ExprFunc[A, B] { return s(s) }(func(s selfExprFunc[A, B]) ExprFunc[A, B] {
		return g(func(x A) Expr[B] {
			return Defer(func() Expr[B] { return s(s)(x) })
		})
	})
	return func(x A) B {
		return RunPure(step(x))
	}
}

// Defer suspends thunk until the evaluator reaches it.
// This is the explicit thunk that keeps self-application from running
// at construction time.
func Defer[A any](thunk func() Expr[A]) Expr[A] {
	return ExprSuspend[A](&BindFrame[Erased, Erased]{
		F: func(Erased) Expr[Erased] {
			next := thunk()
			return Expr[Erased]{
				Value: Erased(next.Value),
				Frame: next.Frame,
			}
		},
		Next: ReturnFrame{},
	})
}

// ExprBind creates a bind frame linking computation m to function f.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// m is already complete
		return f(m.Value)
	}

	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Expr[Erased] {
			result := f(a.(A))
			return Expr[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}
	return ExprSuspend[B](ChainFrames(m.Frame, bindFrame))
}

// ExprMap creates a map frame transforming computation m with function f.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return ExprReturn(f(m.Value))
	}

	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(a.(A))
		},
		Next: ReturnFrame{},
	}
	return ExprSuspend[B](ChainFrames(m.Frame, mapFrame))
}

// RunPure evaluates c to completion.
// Frames are processed in a loop until ReturnFrame; nested chains are
// flattened one level per iteration, so no Go call depth accumulates.
func RunPure[A any](c Expr[A]) A {
	current, frame := Erased(c.Value), c.Frame
	for {
		head, rest := frame, Frame(ReturnFrame{})
		if cf, ok := frame.(*chainedFrame); ok {
			if nested, ok := cf.first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  ChainFrames(nested.rest, cf.rest),
				}
				continue
			}
			head, rest = cf.first, cf.rest
		}

		switch f := head.(type) {
		case ReturnFrame:
			if _, ok := rest.(ReturnFrame); ok {
				return result[A](current)
			}
			frame = rest
		case *BindFrame[Erased, Erased]:
			next := f.F(current)
			current = next.Value
			frame = ChainFrames(ChainFrames(next.Frame, f.Next), rest)
		case *MapFrame[Erased, Erased]:
			current = f.F(current)
			frame = ChainFrames(f.Next, rest)
		default:
			panic("fix: unknown frame type")
		}
	}
}

func result[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
