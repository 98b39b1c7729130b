package asm

// PendingPatch records a deferred write into the image buffer for an operand
// that named a symbol rather than a literal value. The encoder's emission
// pass writes a zero immediate and appends a PendingPatch; the resolution
// pass drains the list once every label's address is known.
type PendingPatch struct {
	Symbol     string
	Offset     uint32 // Byte offset in the image where the word begins.
	PC         uint32 // Address of the branch instruction itself, for PC-relative patches.
	PCRelative bool
	At         Pos // Source position, for diagnostics.
}

// patchList accumulates PendingPatch records during emission.
type patchList []PendingPatch

func (pl *patchList) add(p PendingPatch) {
	*pl = append(*pl, p)
}
