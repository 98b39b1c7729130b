package asm

// SymbolTable maps a label name to its absolute byte address, populated
// during the encoder's first pass. Names are stored verbatim: identifiers
// are case-sensitive, unlike mnemonics, directives, and register names,
// which are normalized to upper case elsewhere before they ever reach a
// table lookup.
type SymbolTable map[string]uint32

// Define records a label's address. It reports ErrRedefinedSymbol if the
// symbol is already present; the existing address is left unchanged.
func (s SymbolTable) Define(name string, addr uint32) error {
	if _, exists := s[name]; exists {
		return ErrRedefinedSymbol
	}
	s[name] = addr
	return nil
}

// Lookup returns a symbol's address and whether it is defined.
func (s SymbolTable) Lookup(name string) (uint32, bool) {
	addr, ok := s[name]
	return addr, ok
}
