package board

import (
	"testing"

	"github.com/ehrlich-b/cube2x2/internal/cube"
)

func TestFormatSolved(t *testing.T) {
	want := "     WWWW\nGGGG RRRR BBBB OOOO\n     YYYY\n"
	if got := Format(cube.Solved()); got != want {
		t.Errorf("Format(Solved()) = %q, want %q", got, want)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	scrambled, _ := cube.Scramble(cube.Solved(), 10)
	formatted := Format(scrambled)

	parsed, err := Parse(formatted)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parsed.Colors() != scrambled.Colors() {
		t.Error("Parse(Format(s)).Colors() should match s.Colors()")
	}
}

func TestParseResetsOrientation(t *testing.T) {
	scrambled, _ := cube.Scramble(cube.Solved(), 10)
	parsed, err := Parse(Format(scrambled))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed != parsed.WithClockwiseOrientations() {
		t.Error("Parse() should reset orientation to the clockwise fingerprint, even when colors are scrambled")
	}
}

func TestParseIgnoresCaseAndExtraWhitespace(t *testing.T) {
	input := "      wwww\ngggg   rrrr  bbbb oooo\n     yyyy\n"
	parsed, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Colors() != cube.Solved().Colors() {
		t.Error("Parse() should be case-insensitive and whitespace-tolerant")
	}
}

func TestParseRejectsWrongLineCount(t *testing.T) {
	if _, err := Parse("WWWW\nGGGG RRRR BBBB OOOO\n"); err == nil {
		t.Error("Parse() should reject input with the wrong number of lines")
	}
}

func TestParseRejectsInvalidColorLetter(t *testing.T) {
	input := "     WWWW\nGGGG RRRR BBBB OOOX\n     YYYY\n"
	if _, err := Parse(input); err == nil {
		t.Error("Parse() should reject an unrecognized color letter")
	}
}

func TestParseRejectsWrongSegmentLength(t *testing.T) {
	input := "     WWW\nGGGG RRRR BBBB OOOO\n     YYYY\n"
	if _, err := Parse(input); err == nil {
		t.Error("Parse() should reject a segment with the wrong number of colors")
	}
}
