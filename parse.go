package abcnote

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports input that does not match the pitch or length
// grammar. Rest is the unconsumed input from the point of failure.
type ParseError struct {
	Msg  string
	Rest string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %q", e.Msg, e.Rest)
}

// errNoDigits distinguishes "no digit run here, try the next form"
// from a hard error inside scanRatio.
var errNoDigits = errors.New("no digits")

// defaultLength is the placeholder duration a pitch carries until the
// caller attaches a parsed length.
var defaultLength = Length{shape: Eighth}

// ParsePitch parses a leading pitch token: an optional accidental, a
// key letter A-G or a-g, and any run of octave marks. Lowercase letters
// sit one octave above the reference octave; each ' raises and each ,
// lowers the result by a further octave, in any order. The second
// return value is the input left over after the token; on error the
// whole input is returned unconsumed.
func ParsePitch(input string) (Note, string, error) {
	acc, i := scanAccidental(input, 0)
	if i >= len(input) {
		return Note{}, input, &ParseError{Msg: "expected key letter A-G", Rest: input[i:]}
	}
	octave := ReferenceOctave
	key := input[i]
	switch {
	case key >= 'A' && key <= 'G':
	case key >= 'a' && key <= 'g':
		key -= 'a' - 'A'
		octave++
	default:
		return Note{}, input, &ParseError{Msg: "expected key letter A-G", Rest: input[i:]}
	}
	delta, next := scanOctaveMarks(input, i+1)
	return Note{
		Octave:     octave + delta,
		Key:        key,
		Accidental: acc,
		Length:     defaultLength,
	}, input[next:], nil
}

// scanAccidental consumes one accidental marker if present. The
// two-character markers are tried before their one-character prefixes
// so that ^^ never lexes as two sharps.
func scanAccidental(s string, at int) (Accidental, int) {
	if at+1 < len(s) {
		switch s[at : at+2] {
		case "^^":
			return DoubleSharp, at + 2
		case "__":
			return DoubleFlat, at + 2
		}
	}
	if at < len(s) {
		switch s[at] {
		case '^':
			return Sharp, at + 1
		case '_':
			return Flat, at + 1
		case '=':
			return Natural, at + 1
		}
	}
	return AccidentalNone, at
}

// scanOctaveMarks folds a run of ' and , marks into a signed octave
// delta. Marks of either sign may interleave freely.
func scanOctaveMarks(s string, at int) (delta, next int) {
	i := at
	for i < len(s) {
		switch s[i] {
		case '\'':
			delta++
		case ',':
			delta--
		default:
			return delta, i
		}
		i++
	}
	return delta, i
}

// ParseLength parses a leading length token in one of three forms:
// n/d, /d (numerator 1), or a bare run of k slashes meaning 1/2^k. The
// fraction must reduce to a canonical duration; a token that lexes but
// names no canonical duration returns *IllegalLengthError, anything
// else returns *ParseError. That covers a written denominator of zero:
// NewLength treats 0 as programmer error, but here it is just a token
// naming no duration.
func ParseLength(input string) (Length, string, error) {
	num, den, next, err := scanRatio(input, 0)
	if err != nil {
		return Length{}, input, err
	}
	if den == 0 {
		return Length{}, input, &IllegalLengthError{Num: num, Den: den}
	}
	l, err := NewLength(num, den)
	if err != nil {
		return Length{}, input, err
	}
	return l, input[next:], nil
}

func scanRatio(s string, at int) (num, den, next int, err error) {
	n, i, err := scanNumber(s, at)
	switch {
	case err == nil:
		// n/d: an explicit numerator demands a slash and denominator.
		if i < len(s) && s[i] == '/' {
			d, j, derr := scanNumber(s, i+1)
			if derr == nil {
				return n, d, j, nil
			}
			if derr != errNoDigits {
				return 0, 0, at, derr
			}
		}
		return 0, 0, at, &ParseError{Msg: "expected /denominator after numerator", Rest: s[i:]}
	case err != errNoDigits:
		return 0, 0, at, err
	}
	if at < len(s) && s[at] == '/' {
		// /d with an implicit numerator of 1.
		d, j, derr := scanNumber(s, at+1)
		if derr == nil {
			return 1, d, j, nil
		}
		if derr != errNoDigits {
			return 0, 0, at, derr
		}
		// Bare slashes: each one halves the whole note again. Seven
		// slashes already reach the finest canonical duration, so the
		// count can be capped before the shift outgrows int.
		k := at
		for k < len(s) && s[k] == '/' {
			k++
		}
		count := k - at
		if count > 8 {
			count = 8
		}
		return 1, 1 << count, k, nil
	}
	return 0, 0, at, &ParseError{Msg: "expected note length", Rest: s[at:]}
}

// scanNumber consumes a decimal digit run. It returns errNoDigits when
// the input does not start with a digit; a run too large for int is a
// hard error.
func scanNumber(s string, at int) (int, int, error) {
	i := at
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == at {
		return 0, at, errNoDigits
	}
	n, err := strconv.Atoi(s[at:i])
	if err != nil {
		return 0, at, &ParseError{Msg: "number out of range", Rest: s[at:]}
	}
	return n, i, nil
}

// ParseNote parses a pitch followed by an optional length token. A
// missing length keeps the pitch's placeholder duration and leaves the
// remainder untouched; a length token that lexes but is not canonical
// fails with *IllegalLengthError.
func ParseNote(input string) (Note, string, error) {
	n, rest, err := ParsePitch(input)
	if err != nil {
		return Note{}, input, err
	}
	l, lrest, err := ParseLength(rest)
	if err != nil {
		var ill *IllegalLengthError
		if errors.As(err, &ill) {
			return Note{}, input, err
		}
		return n, rest, nil
	}
	n.Length = l
	return n, lrest, nil
}
