// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// SelfApplier is the F-bounded protocol of the object-form combinator.
// The type parameter S is the concrete implementation, so a peer handed to
// SelfApply or GenerateRecursiveFunc is statically the same kind of unit.
//
//   - SelfApply asks peer to generate the recursive function from itself.
//   - GenerateRecursiveFunc applies the held [Generator] to a continuation
//     that regenerates the recursive function from peer on every call.
type SelfApplier[S SelfApplier[S, A, B], A, B any] interface {
	SelfApply(peer S) Func[A, B]
	GenerateRecursiveFunc(peer S) Func[A, B]
}

// Combinator is the object form of [Y].
// The self-reference captured by Y's closure is an explicit peer argument
// here, and self-application is split across two cooperating methods.
// A Combinator is immutable after construction.
type Combinator[A, B any] struct {
	gen Generator[A, B]
}

// NewCombinator returns a Combinator holding g.
func NewCombinator[A, B any](g Generator[A, B]) *Combinator[A, B] {
	return &Combinator[A, B]{gen: g}
}

// SelfApply implements [SelfApplier].
func (c *Combinator[A, B]) SelfApply(peer *Combinator[A, B]) Func[A, B] {
	return peer.GenerateRecursiveFunc(peer)
}

// GenerateRecursiveFunc implements [SelfApplier].
func (c *Combinator[A, B]) GenerateRecursiveFunc(peer *Combinator[A, B]) Func[A, B] {
	return c.gen(func(x A) B {
		return peer.GenerateRecursiveFunc(peer)(x)
	})
}

// Fix returns the recursive function: c applied to itself.
func (c *Combinator[A, B]) Fix() Func[A, B] {
	return c.SelfApply(c)
}

// FixWith runs the self-application protocol on any [SelfApplier].
func FixWith[S SelfApplier[S, A, B], A, B any](s S) Func[A, B] {
	return s.SelfApply(s)
}
