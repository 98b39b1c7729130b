package asm

// SourceLine associates a line of source with the image offset and byte
// count of whatever it emitted, feeding listing-text generation in the CLI
// layer. Only lines that emit bytes get an entry; lines that emit nothing
// (labels alone, comments, blank lines) have none, and a listing reproduces
// them from the source text without an address column.
type SourceLine struct {
	File   string
	Line   int
	Offset uint32
	Length uint32
}

// AddressMap is the ordered sequence of SourceLine entries an assembly run
// produced, in source order.
type AddressMap []SourceLine
