// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/fix"
)

// catch runs f(x) and returns the recovered panic, if any.
func catch(f fix.Func[int, int], x int) (v int, r any) {
	defer func() { r = recover() }()
	return f(x), nil
}

func TestBoundedWithinBudget(t *testing.T) {
	// factorial(n) nests n+1 calls.
	fact := fix.Y(fix.Bounded(factorialStep, 11))
	v, r := catch(fact, 10)
	if r != nil {
		t.Fatalf("unexpected panic: %v", r)
	}
	if v != 3628800 {
		t.Fatalf("factorial(10) = %d, want 3628800", v)
	}
}

func TestBoundedExceeded(t *testing.T) {
	fact := fix.Y(fix.Bounded(factorialStep, 10))
	_, r := catch(fact, 10)
	de, ok := r.(*fix.DepthError)
	if !ok {
		t.Fatalf("recovered %T, want *fix.DepthError", r)
	}
	if de.Limit != 10 {
		t.Fatalf("Limit = %d, want 10", de.Limit)
	}
	if !errors.Is(de, fix.ErrRecursionDepth) {
		t.Fatal("DepthError should match ErrRecursionDepth")
	}
	if errors.Is(de, fix.ErrArithmetic) {
		t.Fatal("DepthError should not match ErrArithmetic")
	}
	if got, want := de.Error(), "maximum recursion depth exceeded (limit 10)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestBoundedRecoversAfterFailure(t *testing.T) {
	for name, build := range combinators() {
		fact := build(fix.Bounded(factorialStep, 20))
		if _, r := catch(fact, 100); r == nil {
			t.Fatalf("%s: expected depth panic", name)
		}
		v, r := catch(fact, 19)
		if r != nil {
			t.Fatalf("%s: depth not restored: %v", name, r)
		}
		if v != 121645100408832000 {
			t.Fatalf("%s: factorial(19) = %d", name, v)
		}
	}
}

func TestBoundedDefaultBudget(t *testing.T) {
	count := func(f fix.Func[int, int]) fix.Func[int, int] {
		return func(n int) int {
			if n == 0 {
				return 0
			}
			return 1 + f(n-1)
		}
	}
	c := fix.Y(fix.Bounded(count, 0))
	if v, r := catch(c, fix.DefaultMaxDepth-1); r != nil || v != fix.DefaultMaxDepth-1 {
		t.Fatalf("count(%d) = %d, %v", fix.DefaultMaxDepth-1, v, r)
	}
	if _, r := catch(c, fix.DefaultMaxDepth); r == nil {
		t.Fatalf("count(%d) should exceed the default budget", fix.DefaultMaxDepth)
	}
}

func TestBoundedPreservesFixedPointLaw(t *testing.T) {
	g := fix.Bounded(fibStep, 64)
	f := fix.Y(g)
	for x := range 12 {
		if f(x) != g(f)(x) {
			t.Fatalf("F(%d) != G(F)(%d)", x, x)
		}
	}
}

func TestBoundedClampsToMaxSafeDepth(t *testing.T) {
	count := func(f fix.Func[int, int]) fix.Func[int, int] {
		return func(n int) int {
			if n == 0 {
				return 0
			}
			return 1 + f(n-1)
		}
	}
	c := fix.Y(fix.Bounded(count, 100_000_000))
	_, r := catch(c, 10_000_000)
	de, ok := r.(*fix.DepthError)
	if !ok {
		t.Fatalf("recovered %T, want *fix.DepthError", r)
	}
	if de.Limit != fix.MaxSafeDepth {
		t.Fatalf("Limit = %d, want %d", de.Limit, fix.MaxSafeDepth)
	}
	if v, r := catch(c, 5); r != nil || v != 5 {
		t.Fatalf("count(5) = %d, %v", v, r)
	}
}
