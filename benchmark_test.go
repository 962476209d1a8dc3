// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix_test

import (
	"testing"

	"code.hybscloud.com/fix"
)

func sumExprIntStep(f fix.ExprFunc[int, int]) fix.ExprFunc[int, int] {
	return func(n int) fix.Expr[int] {
		if n == 0 {
			return fix.ExprReturn(0)
		}
		return fix.ExprMap(f(n-1), func(acc int) int { return acc + n })
	}
}

// BenchmarkY measures factorial(20) through the compact combinator.
func BenchmarkY(b *testing.B) {
	fact := fix.Y(factorialStep)
	for b.Loop() {
		_ = fact(20)
	}
}

// BenchmarkYVerbose measures factorial(20) through the verbose combinator.
func BenchmarkYVerbose(b *testing.B) {
	fact := fix.YVerbose(factorialStep)
	for b.Loop() {
		_ = fact(20)
	}
}

// BenchmarkCombinator measures factorial(20) through the object form.
func BenchmarkCombinator(b *testing.B) {
	fact := fix.NewCombinator(factorialStep).Fix()
	for b.Loop() {
		_ = fact(20)
	}
}

// BenchmarkBounded measures the cost of the depth budget.
func BenchmarkBounded(b *testing.B) {
	fact := fix.Y(fix.Bounded(factorialStep, 0))
	for b.Loop() {
		_ = fact(20)
	}
}

// BenchmarkFixExpr measures a 1000-level recursion on the trampoline.
func BenchmarkFixExpr(b *testing.B) {
	sum := fix.FixExpr(sumExprIntStep)
	for b.Loop() {
		_ = sum(1000)
	}
}
