// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"code.hybscloud.com/fix"
)

// ErrUnknownVariant is returned for a combinator name that is not one of [Variants].
var ErrUnknownVariant = errors.New("harness: unknown combinator variant")

// Variant names the combinator used to build the recursive function.
type Variant string

const (
	VariantCompact    Variant = "compact"    // fix.Y
	VariantVerbose    Variant = "verbose"    // fix.YVerbose
	VariantObject     Variant = "object"     // fix.Combinator
	VariantTrampoline Variant = "trampoline" // fix.FixExpr, no depth budget
	VariantInt64      Variant = "int64"      // fix.Combinator over int64, overflow is an error
	VariantIter       Variant = "iter"       // loop, no combinator; reference results
)

// Variants lists every supported variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantCompact, VariantVerbose, VariantObject, VariantTrampoline, VariantInt64, VariantIter}
}

// FixedWidth reports whether v computes in a fixed-width integer type
// and so fails where the arbitrary-precision variants succeed.
func (v Variant) FixedWidth() bool {
	return v == VariantInt64
}

// ParseVariant resolves a variant name, ignoring case and surrounding space.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Build returns the factorial function produced by variant.
// variant is normalized with ParseVariant. Closure-based variants are
// bounded to maxDepth nested calls; a non-positive maxDepth selects
// fix.DefaultMaxDepth.
func Build(variant Variant, maxDepth int) (fix.Func[int, *big.Int], error) {
	v, err := ParseVariant(string(variant))
	if err != nil {
		return nil, err
	}
	switch v {
	case VariantCompact:
		return fix.Y(fix.Bounded[int, *big.Int](FactorialStep, maxDepth)), nil
	case VariantVerbose:
		return fix.YVerbose(fix.Bounded[int, *big.Int](FactorialStep, maxDepth)), nil
	case VariantObject:
		return fix.NewCombinator(fix.Bounded[int, *big.Int](FactorialStep, maxDepth)).Fix(), nil
	case VariantTrampoline:
		return fix.FixExpr[int, *big.Int](FactorialStepExpr), nil
	case VariantInt64:
		fact := fix.NewCombinator(fix.Bounded[int, int64](FactorialStepInt64, maxDepth)).Fix()
		return func(n int) *big.Int { return big.NewInt(fact(n)) }, nil
	case VariantIter:
		return IterFactorial, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(variant))
	}
}
