// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness drives a combinator-built factorial over a fixed input
// sequence and reports one line per input.
//
// Report lines have exactly two forms:
//
//	factorial(N) = value:<V> (digits:<D>)
//	factorial(N) = error:<message>
//
// A failing input produces an error line and the run continues.
package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"

	"code.hybscloud.com/fix"
)

const (
	// DefaultThreshold is the longest decimal result printed in full.
	DefaultThreshold = 100
	// DefaultPlaceholder replaces results longer than the threshold.
	DefaultPlaceholder = "omitted"
	// DigitsNA is the digit count reported for a failed input.
	DigitsNA = "N/A"
)

var (
	ErrNoInputs       = errors.New("harness: no inputs")
	ErrNegativeInput  = errors.New("harness: input must be non-negative")
	ErrBadThreshold   = errors.New("harness: threshold must be positive")
	ErrNoPlaceholder  = errors.New("harness: placeholder must not be empty")
	ErrNegativeBudget = errors.New("harness: max depth must not be negative")
	ErrBudgetTooLarge = errors.New("harness: max depth exceeds the safe stack budget")
)

// Options configures a Harness.
type Options struct {
	Inputs      []int
	Threshold   int
	Placeholder string
	Variant     Variant
	MaxDepth    int // 0 selects fix.DefaultMaxDepth; at most fix.MaxSafeDepth
}

// DefaultOptions returns the canonical demonstration run.
func DefaultOptions() Options {
	return Options{
		Inputs:      []int{5, 10, 100, 200, 500, 1000},
		Threshold:   DefaultThreshold,
		Placeholder: DefaultPlaceholder,
		Variant:     VariantObject,
		MaxDepth:    fix.DefaultMaxDepth,
	}
}

// Validate reports the first problem with o, if any.
func (o Options) Validate() error {
	if len(o.Inputs) == 0 {
		return ErrNoInputs
	}
	for _, n := range o.Inputs {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeInput, n)
		}
	}
	if o.Threshold <= 0 {
		return fmt.Errorf("%w: %d", ErrBadThreshold, o.Threshold)
	}
	if o.Placeholder == "" {
		return ErrNoPlaceholder
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBudget, o.MaxDepth)
	}
	if o.MaxDepth > fix.MaxSafeDepth {
		return fmt.Errorf("%w: %d > %d", ErrBudgetTooLarge, o.MaxDepth, fix.MaxSafeDepth)
	}
	if _, err := ParseVariant(string(o.Variant)); err != nil {
		return err
	}
	return nil
}

// Entry is one report record.
type Entry struct {
	Input int
	// Outcome holds the decimal result, or the failure.
	Outcome fix.Either[error, string]
	Line    string
}

// Digits returns the length of the decimal result, or DigitsNA.
func (e Entry) Digits() string {
	return fix.MatchEither(e.Outcome,
		func(error) string { return DigitsNA },
		func(s string) string { return strconv.Itoa(len(s)) },
	)
}

// Err returns the failure, or nil.
func (e Entry) Err() error {
	err, _ := e.Outcome.GetLeft()
	return err
}

// Harness evaluates one recursive function over Options.Inputs.
// The function is built once by New and reused for every input.
type Harness struct {
	opts Options
	fn   fix.Func[int, *big.Int]
	log  *slog.Logger
}

// New validates opts and builds the recursive function.
// A nil logger discards records.
func New(opts Options, log *slog.Logger) (*Harness, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	v, err := ParseVariant(string(opts.Variant))
	if err != nil {
		return nil, err
	}
	opts.Variant = v
	fn, err := Build(v, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{opts: opts, fn: fn, log: log}, nil
}

// Evaluate computes and formats the entry for n.
func (h *Harness) Evaluate(n int) Entry {
	outcome := fix.MapEither(Eval(h.fn, n), (*big.Int).String)
	e := Entry{Input: n, Outcome: outcome}
	e.Line = fix.MatchEither(outcome,
		func(err error) string {
			return fmt.Sprintf("factorial(%d) = error:%v", n, err)
		},
		func(s string) string {
			shown := s
			if len(s) > h.opts.Threshold {
				shown = h.opts.Placeholder
			}
			return fmt.Sprintf("factorial(%d) = value:%s (digits:%d)", n, shown, len(s))
		},
	)

	if err := e.Err(); err != nil {
		h.log.Debug("harness.entry", "variant", h.opts.Variant, "input", n, "digits", DigitsNA, "err", err)
	} else {
		h.log.Debug("harness.entry", "variant", h.opts.Variant, "input", n, "digits", e.Digits())
	}
	return e
}

// Run evaluates every input in order and writes one line each to w.
// Every input is attempted; the returned error reports only a failed write.
func (h *Harness) Run(w io.Writer) ([]Entry, error) {
	entries := make([]Entry, 0, len(h.opts.Inputs))
	var werr error
	for _, n := range h.opts.Inputs {
		e := h.Evaluate(n)
		entries = append(entries, e)
		if werr == nil {
			_, werr = fmt.Fprintln(w, e.Line)
		}
	}
	h.log.Debug("harness.done", "variant", h.opts.Variant, "entries", len(entries))
	return entries, werr
}
