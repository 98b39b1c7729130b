package asm

import "strings"

// RegisterBank partitions the four register name vocabularies the lexer and
// encoder recognize.
type RegisterBank uint8

const (
	BankGPR RegisterBank = iota
	BankSpecial
	BankVector
	BankFP
)

// gprEncoding maps T0..T6 to their 3-bit field values.
var gprEncoding = map[string]uint8{
	"T0": 0b000,
	"T1": 0b001,
	"T2": 0b010,
	"T3": 0b011,
	"T4": 0b100,
	"T5": 0b101,
	"T6": 0b110,
}

// specialEncoding maps the special register bank. TA is the accumulator and
// genuinely occupies 0b111; TB, TC, TS and TI reuse 0..3 and rely on an
// instruction's op-type to disambiguate them from T0..T3 (see package docs).
var specialEncoding = map[string]uint8{
	"TA": 0b111,
	"TB": 0b000,
	"TC": 0b001,
	"TS": 0b010,
	"TI": 0b011,
}

var vectorRegisters = map[string]bool{"VA": true, "VT": true, "VB": true}
var fpRegisters = map[string]bool{"FA": true, "FT": true, "FB": true}

// lookupRegister reports the bank and 3-bit encoding for a register name, or
// ok == false if name is not a register at all. Vector and floating-point
// registers are always encoded 0; richer encoding is an extension point.
func lookupRegister(name string) (bank RegisterBank, encoding uint8, ok bool) {
	name = strings.ToUpper(name)

	if enc, found := gprEncoding[name]; found {
		return BankGPR, enc, true
	}

	if enc, found := specialEncoding[name]; found {
		return BankSpecial, enc, true
	}

	if vectorRegisters[name] {
		return BankVector, 0, true
	}

	if fpRegisters[name] {
		return BankFP, 0, true
	}

	return 0, 0, false
}
