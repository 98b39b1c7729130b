package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLiteral decodes a lexed literal lexeme -- balanced ternary (0t...),
// binary (0b...), hexadecimal (0x...) or plain decimal -- into its signed
// integer value. The parser calls it for every numeric operand; it does no
// range checking of its own, since only the encoder knows which field
// (immediate width, branch-vs-absolute) the value will fill.
func ParseLiteral(lexeme string) (int64, error) {
	switch {
	case hasRadixPrefix(lexeme, "0t"):
		return parseTernary(lexeme[2:])
	case hasRadixPrefix(lexeme, "0b"):
		v, err := strconv.ParseInt(lexeme[2:], 2, 64)
		if err != nil {
			return 0, &LiteralError{Literal: lexeme, Err: err}
		}
		return v, nil
	case hasRadixPrefix(lexeme, "0x"):
		v, err := strconv.ParseInt(lexeme[2:], 16, 64)
		if err != nil {
			return 0, &LiteralError{Literal: lexeme, Err: err}
		}
		return v, nil
	default:
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return 0, &LiteralError{Literal: lexeme, Err: err}
		}
		return v, nil
	}
}

func hasRadixPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// parseTernary decodes a balanced-ternary digit string using
// value(d_{n-1}...d_0) = sum(d_i * 3^i), where '+' is +1, '0' is 0 and '-' is
// -1. For example, value(+0-) = 3^2 + 0 - 1 = 8.
func parseTernary(digits string) (int64, error) {
	if digits == "" {
		return 0, &LiteralError{Literal: "0t", Err: fmt.Errorf("empty ternary literal")}
	}

	var value int64

	for _, d := range digits {
		var digit int64

		switch d {
		case '+':
			digit = 1
		case '0':
			digit = 0
		case '-':
			digit = -1
		default:
			return 0, &LiteralError{
				Literal: "0t" + digits,
				Err:     fmt.Errorf("invalid ternary digit %q", d),
			}
		}

		value = value*3 + digit
	}

	return value, nil
}
