// Package abcnote parses ABC-notation pitch and length tokens into
// structured notes and renders them back as Unicode musical glyphs.
//
// Pitch tokens look like `^^B`, `=b,,'',` or plain `c`: an optional
// accidental, a key letter A-G (lowercase means one octave up), and a
// run of octave marks (' up, , down). Length tokens are rational
// multipliers of a whole note written as `n/d`, `/n`, or a run of
// slashes. Both parsers are prefix parsers: they consume the token and
// return whatever input follows it.
package abcnote

import (
	"fmt"
	"strings"
)

// ReferenceOctave is the octave implied by a bare uppercase key letter.
// Middle C sits in octave 4 on a piano keyboard.
const ReferenceOctave = 4

// Accidental is a pitch modifier. AccidentalNone marks the absence of
// one, which is not the same thing as Natural: a natural sign cancels a
// prior accidental, absence inherits whatever the key implies.
type Accidental int

const (
	AccidentalNone Accidental = iota
	DoubleFlat
	Flat
	Natural
	Sharp
	DoubleSharp
)

var accidentalGlyphs = [...]string{
	AccidentalNone: "",
	DoubleFlat:     "\U0001D12B",
	Flat:           "♭",
	Natural:        "♮",
	Sharp:          "♯",
	DoubleSharp:    "\U0001D12A",
}

// String returns the Unicode accidental sign, or the empty string for
// AccidentalNone.
func (a Accidental) String() string {
	if a < 0 || int(a) >= len(accidentalGlyphs) {
		return "?"
	}
	return accidentalGlyphs[a]
}

// NoteShape is the written shape of a note, ordered by ascending
// duration from a 128th note up to a breve (two whole notes).
type NoteShape int

const (
	Hundred28th NoteShape = iota
	SixtyFourth
	ThirtySecond
	Sixteenth
	Eighth
	Quarter
	Half
	Whole
	Breve
)

var shapeGlyphs = [...]string{
	Hundred28th:  "\U0001D164",
	SixtyFourth:  "\U0001D163",
	ThirtySecond: "\U0001D162",
	Sixteenth:    "\U0001D161",
	Eighth:       "\U0001D160",
	Quarter:      "\U0001D15F",
	Half:         "\U0001D15E",
	Whole:        "\U0001D15D",
	Breve:        "\U0001D15C",
}

// String returns the Unicode note glyph for the shape.
func (s NoteShape) String() string {
	if s < 0 || int(s) >= len(shapeGlyphs) {
		return "?"
	}
	return shapeGlyphs[s]
}

// augmentationDot U+1D16D; each dot extends the shape by half the
// previous extension.
const augmentationDot = "\U0001D16D"

// Length is a canonical note duration: a shape plus 0-3 augmentation
// dots. Only the canonical fractions tabulated in length.go can
// construct one; use NewLength or ParseLength.
type Length struct {
	shape NoteShape
	dots  int
}

// Shape returns the written note shape.
func (l Length) Shape() NoteShape { return l.shape }

// Dots returns the augmentation dot count, 0 through 3.
func (l Length) Dots() int { return l.dots }

// String renders the length as a note glyph followed by one dot glyph
// per augmentation dot.
func (l Length) String() string {
	var b strings.Builder
	b.WriteString(l.shape.String())
	for i := 0; i < l.dots; i++ {
		b.WriteString(augmentationDot)
	}
	return b.String()
}

// Note is one parsed pitch with a duration. Key is always an uppercase
// letter 'A'-'G'; the octave already folds in the case of the source
// letter and its octave marks.
type Note struct {
	Octave     int
	Key        byte
	Accidental Accidental
	Length     Length
}

// String renders the note in angle brackets: key letter, accidental
// sign if any, the duration glyphs, and an @octave annotation unless
// the note sits in the reference octave.
func (n Note) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteByte(n.Key)
	if n.Accidental != AccidentalNone {
		b.WriteString(n.Accidental.String())
	}
	b.WriteByte(' ')
	b.WriteString(n.Length.String())
	if n.Octave != ReferenceOctave {
		fmt.Fprintf(&b, " @%d", n.Octave)
	}
	b.WriteByte('>')
	return b.String()
}
