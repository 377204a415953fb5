package abcnote

import "fmt"

// IllegalLengthError reports a fraction that is well formed but does
// not correspond to any canonical note duration.
type IllegalLengthError struct {
	Num, Den int
}

func (e *IllegalLengthError) Error() string {
	return fmt.Sprintf("%d/%d is not a legal time value for a note", e.Num, e.Den)
}

type ratio struct{ num, den int }

// canonicalLengths maps every reduced fraction of a whole note that
// notation can write as one shape with up to three dots. The gaps are
// deliberate: a 128th note takes no dots here, a 64th at most one, a
// 32nd at most two, since the finer subdivisions have no tabulated
// shape of their own.
var canonicalLengths = map[ratio]Length{
	{1, 128}:  {Hundred28th, 0},
	{1, 64}:   {SixtyFourth, 0},
	{3, 128}:  {SixtyFourth, 1},
	{1, 32}:   {ThirtySecond, 0},
	{3, 64}:   {ThirtySecond, 1},
	{7, 128}:  {ThirtySecond, 2},
	{1, 16}:   {Sixteenth, 0},
	{3, 32}:   {Sixteenth, 1},
	{7, 64}:   {Sixteenth, 2},
	{15, 128}: {Sixteenth, 3},
	{1, 8}:    {Eighth, 0},
	{3, 16}:   {Eighth, 1},
	{7, 32}:   {Eighth, 2},
	{15, 64}:  {Eighth, 3},
	{1, 4}:    {Quarter, 0},
	{3, 8}:    {Quarter, 1},
	{7, 16}:   {Quarter, 2},
	{15, 32}:  {Quarter, 3},
	{1, 2}:    {Half, 0},
	{3, 4}:    {Half, 1},
	{7, 8}:    {Half, 2},
	{15, 16}:  {Half, 3},
	{1, 1}:    {Whole, 0},
	{3, 2}:    {Whole, 1},
	{7, 4}:    {Whole, 2},
	{15, 8}:   {Whole, 3},
	{2, 1}:    {Breve, 0},
	{3, 1}:    {Breve, 1},
	{7, 2}:    {Breve, 2},
	{15, 4}:   {Breve, 3},
}

// NewLength builds a Length from a fraction of a whole note. The
// fraction is reduced to lowest terms with a positive denominator and
// must match one of the canonical durations exactly; near misses like
// 5/128 return *IllegalLengthError rather than rounding to a
// neighboring shape. A zero denominator is a programmer error and
// panics.
func NewLength(num, den int) (Length, error) {
	if den == 0 {
		panic("abcnote: zero denominator in note length")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if d := gcd(num, den); d > 1 {
		num, den = num/d, den/d
	}
	l, ok := canonicalLengths[ratio{num, den}]
	if !ok {
		return Length{}, &IllegalLengthError{Num: num, Den: den}
	}
	return l, nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
