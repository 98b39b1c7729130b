package asm_test

import (
	"testing"

	. "github.com/itworks99/vtx1/internal/asm"
)

func TestParseLiteralRadices(t *testing.T) {
	cases := []struct {
		lexeme string
		want   int64
	}{
		{"0t+0-", 8}, // 3^2 + 0 - 1 = 8
		{"0t---", -13},
		{"0t0", 0},
		{"0b1010", 10},
		{"0b0", 0},
		{"0x1234", 0x1234},
		{"0XFF", 0xFF},
		{"1234", 1234},
		{"0", 0},
	}

	for _, c := range cases {
		got, err := ParseLiteral(c.lexeme)
		if err != nil {
			t.Fatalf("ParseLiteral(%q): unexpected error: %s", c.lexeme, err)
		}
		if got != c.want {
			t.Errorf("ParseLiteral(%q) = %d, want %d", c.lexeme, got, c.want)
		}
	}
}

func TestParseLiteralErrors(t *testing.T) {
	cases := []string{"0t", "0tX", "0b2", "0xZZ", "abc"}

	for _, lexeme := range cases {
		if _, err := ParseLiteral(lexeme); err == nil {
			t.Errorf("ParseLiteral(%q): expected error, got none", lexeme)
		}
	}
}
