// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix_test

import (
	"math/big"
	"testing"

	"code.hybscloud.com/fix"
)

func factorialStep(f fix.Func[int, int]) fix.Func[int, int] {
	return func(n int) int {
		if n == 0 {
			return 1
		}
		return n * f(n-1)
	}
}

func fibStep(f fix.Func[int, int]) fix.Func[int, int] {
	return func(n int) int {
		if n < 2 {
			return n
		}
		return f(n-1) + f(n-2)
	}
}

func bigFactorialStep(f fix.Func[int, *big.Int]) fix.Func[int, *big.Int] {
	return func(n int) *big.Int {
		if n == 0 {
			return big.NewInt(1)
		}
		return new(big.Int).Mul(big.NewInt(int64(n)), f(n-1))
	}
}

// combinators lists every way to build a fixed point of an int generator.
func combinators() map[string]func(fix.Generator[int, int]) fix.Func[int, int] {
	return map[string]func(fix.Generator[int, int]) fix.Func[int, int]{
		"Y":        fix.Y[int, int],
		"YVerbose": fix.YVerbose[int, int],
		"Combinator": func(g fix.Generator[int, int]) fix.Func[int, int] {
			return fix.NewCombinator(g).Fix()
		},
		"FixWith": func(g fix.Generator[int, int]) fix.Func[int, int] {
			return fix.FixWith[*fix.Combinator[int, int], int, int](fix.NewCombinator(g))
		},
	}
}

func TestFactorialKnownValues(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for name, build := range combinators() {
		fact := build(factorialStep)
		for _, tt := range tests {
			if got := fact(tt.n); got != tt.want {
				t.Errorf("%s: factorial(%d) = %d, want %d", name, tt.n, got, tt.want)
			}
		}
	}
}

func TestFibonacci(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for name, build := range combinators() {
		fib := build(fibStep)
		for n, w := range want {
			if got := fib(n); got != w {
				t.Errorf("%s: fib(%d) = %d, want %d", name, n, got, w)
			}
		}
	}
}

func TestFixedPointLaw(t *testing.T) {
	// F(x) == G(F)(x)
	for name, build := range combinators() {
		for _, g := range []fix.Generator[int, int]{factorialStep, fibStep} {
			f := build(g)
			unrolled := g(f)
			for x := range 15 {
				if f(x) != unrolled(x) {
					t.Fatalf("%s: F(%d) = %d, G(F)(%d) = %d", name, x, f(x), x, unrolled(x))
				}
			}
		}
	}
}

func TestConstructionIsLazy(t *testing.T) {
	// Building must not call the continuation; only invoking it may.
	var calls int
	g := func(f fix.Func[int, int]) fix.Func[int, int] {
		return func(n int) int {
			calls++
			if n == 0 {
				return 0
			}
			return f(n - 1)
		}
	}
	for name, build := range combinators() {
		calls = 0
		f := build(g)
		if calls != 0 {
			t.Fatalf("%s: generator body ran %d times during construction", name, calls)
		}
		f(3)
		if calls != 4 {
			t.Fatalf("%s: calls = %d, want 4", name, calls)
		}
	}
}

func TestNotMemoized(t *testing.T) {
	var calls int
	g := func(f fix.Func[int, int]) fix.Func[int, int] {
		return func(n int) int {
			calls++
			if n == 0 {
				return 1
			}
			return n * f(n-1)
		}
	}
	fact := fix.Y(g)
	fact(5)
	fact(5)
	if calls != 12 {
		t.Fatalf("calls = %d, want 12", calls)
	}
}

func TestBigFactorial(t *testing.T) {
	fact := fix.Y(bigFactorialStep)
	got := fact(100).String()
	want := new(big.Int).MulRange(1, 100).String()
	if got != want {
		t.Fatalf("factorial(100) = %s, want %s", got, want)
	}
	if len(got) != 158 {
		t.Fatalf("len = %d, want 158", len(got))
	}
}

func TestCombinatorSelfApply(t *testing.T) {
	a := fix.NewCombinator(factorialStep)
	b := fix.NewCombinator(fibStep)

	// SelfApply delegates to the peer's generator.
	if got := a.SelfApply(b)(10); got != 55 {
		t.Fatalf("a.SelfApply(b)(10) = %d, want 55", got)
	}
	if got := a.GenerateRecursiveFunc(a)(5); got != 120 {
		t.Fatalf("a.GenerateRecursiveFunc(a)(5) = %d, want 120", got)
	}
	if got := a.Fix()(6); got != 720 {
		t.Fatalf("a.Fix()(6) = %d, want 720", got)
	}
}

func TestCombinatorReusable(t *testing.T) {
	fact := fix.NewCombinator(factorialStep).Fix()
	for range 3 {
		if got := fact(7); got != 5040 {
			t.Fatalf("factorial(7) = %d, want 5040", got)
		}
	}
}
