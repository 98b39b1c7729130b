/*
Package asm implements an assembler for VTX1, an imagined 32-bit VLIW
architecture with balanced-ternary literal syntax, a seven-register general
purpose file, and special, vector, and floating-point register banks. Given
assembly source text, the package produces a raw binary image suitable for
loading at a given origin address, together with a symbol table and an
address-to-source map for building a listing.

	main:
	    LD T0, 0x1234
	    NOP

	    [ADD T2,T0,T1] [SUB T3,T1,T0] [MUL T4,T0,T1]

	loop: ADD T0, T0, T1
	      BNE T0, 0, loop

See |Grammar| for a description of the source syntax.

The package is organized as a strict three-stage pipeline, each stage
consuming the prior stage's output and nothing else:

	Lexer   byte stream    -> token stream
	Parser  token stream   -> program tree
	Encoder program tree   -> binary image + symbol table

Assemble drives all three stages and is the package's main entry point; the
command-line front-end, file I/O, and listing-text formatting are left to
github.com/itworks99/vtx1/internal/cli/cmd.

# Bugs

The special registers TB, TC, TS and TI share their 0..3 encodings with the
low general-purpose registers; disambiguation is meant to come from an
instruction's op-type field, but nothing in this package enforces that a
mnemonic accepting a special register never also accepts T0..T3 in the same
slot. Flagged, not fixed.
*/
package asm

// Grammar declares the syntax of VTX1 assembly in EBNF (with some liberties).
var Grammar = (`
program      = { line } ;
line         = label? ( instruction | vliw | directive | comment )? NEWLINE ;
label        = ident ':' ;
vliw         = '[' instruction ']' , { '[' instruction ']' } ;  (* 1..3 *)
instruction  = mnemonic [ operand { ',' operand } ] ;
operand      = register
             | literal
             | '[' register [ '+' ( register | literal ) ] ']'
             | ident ;                                          (* symbol *)
directive    = '.' ( "ORG" | "ALIGN" | "SPACE" ) literal
             | '.' ( "DB" | "DW" | "DT" ) ( literal | string ) { ',' ( literal | string ) }
             | '.' "EQU" ident ',' literal
             | '.' "INCLUDE" string
             | '.' "SECTION" ident ;
register     = gpr | special | vector | fp ;
gpr          = "T0" | "T1" | "T2" | "T3" | "T4" | "T5" | "T6" ;
special      = "TA" | "TB" | "TC" | "TS" | "TI" ;
vector       = "VA" | "VT" | "VB" ;
fp           = "FA" | "FT" | "FB" ;
literal      = ternary | binary | hex | decimal ;
ternary      = '0t' , { '-' | '0' | '+' } ;
binary       = '0b' , { '0' | '1' } ;
hex          = '0x' , { hexdigit } ;
decimal      = digit , { digit } ;
ident        = ( letter | '_' ) , { letter | digit | '_' } ;
comment      = ';' , { char } ;
`)
