// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"math"
	"math/big"

	"code.hybscloud.com/fix"
)

// FactorialStep is the factorial generator: 1 at n == 0, else n * f(n-1).
// n must be non-negative.
func FactorialStep(f fix.Func[int, *big.Int]) fix.Func[int, *big.Int] {
	return func(n int) *big.Int {
		if n == 0 {
			return big.NewInt(1)
		}
		return new(big.Int).Mul(big.NewInt(int64(n)), f(n-1))
	}
}

// FactorialStepExpr is FactorialStep for fix.FixExpr.
func FactorialStepExpr(f fix.ExprFunc[int, *big.Int]) fix.ExprFunc[int, *big.Int] {
	return func(n int) fix.Expr[*big.Int] {
		if n == 0 {
			return fix.ExprReturn(big.NewInt(1))
		}
		return fix.ExprMap(f(n-1), func(r *big.Int) *big.Int {
			return new(big.Int).Mul(big.NewInt(int64(n)), r)
		})
	}
}

// FactorialStepInt64 is FactorialStep in int64.
// A product that does not fit panics with an error wrapping
// fix.ErrArithmetic instead of wrapping around.
func FactorialStepInt64(f fix.Func[int, int64]) fix.Func[int, int64] {
	return func(n int) int64 {
		if n == 0 {
			return 1
		}
		r := f(n - 1)
		if r > math.MaxInt64/int64(n) {
			panic(fmt.Errorf("%w: int64 overflow at %d * %d", fix.ErrArithmetic, n, r))
		}
		return int64(n) * r
	}
}

// IterFactorial computes n! with a loop. It does not recurse and serves
// as the reference the combinator variants are checked against.
func IterFactorial(n int) *big.Int {
	r := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		r.Mul(r, big.NewInt(i))
	}
	return r
}
