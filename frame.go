// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Erased represents a type-erased value in the frame chain.
// Concrete types are recovered via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized continuation frames.
// Dispatch uses type switches; Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals computation completion.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame feeds the current value to F and continues with the
// resulting computation, then with Next.
type BindFrame[A, B any] struct {
	F    func(A) Expr[B]
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame transforms the current value with F, then continues with Next.
type MapFrame[A, B any] struct {
	F    func(A) B
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// chainedFrame is a frame followed by more frames.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// Expr is a computation represented as data.
// Value is meaningful only when Frame is ReturnFrame.
type Expr[A any] struct {
	Value A
	Frame Frame
}

// ExprReturn creates a completed computation with the given value.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// ExprSuspend creates a computation suspended at the given frame.
func ExprSuspend[A any](frame Frame) Expr[A] {
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: frame,
	}
}

// ChainFrames links two frame chains together.
// ReturnFrame is the identity on either side, so no node is allocated
// for it. Construction is O(1).
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}
