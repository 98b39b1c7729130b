package asm

import "fmt"

// Result is the encoder's output: the finished binary image, the resolved
// symbol table, the address-to-source map, and the diagnostics accumulated
// across all three passes.
type Result struct {
	Image       []byte
	Symbols     SymbolTable
	AddressMap  AddressMap
	Diagnostics Diagnostics
}

// Encode runs the three-pass code generator over prog: address assignment,
// emission, and symbol resolution. It returns a non-nil Image only when no
// pass recorded an error-severity diagnostic; warnings never block emission.
func Encode(prog *Program) *Result {
	e := &encoder{symbols: SymbolTable{}}

	e.assignAddresses(prog.Statements)
	e.emit(prog.Statements)
	e.resolveSymbols()

	result := &Result{
		Symbols:     e.symbols,
		AddressMap:  e.addrMap,
		Diagnostics: e.diags,
	}

	if !e.diags.HasErrors() {
		result.Image = e.img.Bytes()
	}

	return result
}

type encoder struct {
	symbols SymbolTable
	patches patchList
	diags   Diagnostics
	img     image
	addrMap AddressMap
}

func (e *encoder) errorAt(at Pos, format string, args ...any) {
	e.diags = append(e.diags, &SemanticError{At: at, Message: fmt.Sprintf(format, args...)})
}

func (e *encoder) warnAt(at Pos, format string, args ...any) {
	e.diags = append(e.diags, &Warning{At: at, Message: fmt.Sprintf(format, args...)})
}

// --- Pass 1: address assignment ---

func (e *encoder) assignAddresses(statements []Node) {
	var cursor uint32

	for _, stmt := range statements {
		cursor = e.assignAddress(stmt, cursor)
	}
}

func (e *encoder) assignAddress(node Node, cursor uint32) uint32 {
	switch n := node.(type) {
	case *lineNode:
		e.defineLabel(n.label, cursor)
		return e.assignAddress(n.stmt, cursor)

	case *Label:
		e.defineLabel(n, cursor)
		return cursor

	case *Instruction:
		return cursor + wordSize

	case *VLIW:
		return cursor + vliwSize

	case *Directive:
		return e.assignDirectiveAddress(n, cursor)

	default:
		return cursor
	}
}

func (e *encoder) defineLabel(label *Label, cursor uint32) {
	if label == nil {
		return
	}
	if err := e.symbols.Define(label.Name, cursor); err != nil {
		e.errorAt(label.At, "%s: %q", err, label.Name)
	}
}

func (e *encoder) assignDirectiveAddress(d *Directive, cursor uint32) uint32 {
	switch normalizeDirective(d.Name) {
	case "ORG":
		addr, ok := e.directiveImmediate(d)
		if !ok {
			return cursor
		}
		// A regressing .ORG is ignored in the emission pass; the cursor must
		// stay put here too or labels after it would disagree with the image.
		if uint32(addr) < cursor {
			return cursor
		}
		return uint32(addr)

	case "DB":
		// A string operand emits one byte per character, not one in total.
		var size uint32
		for _, op := range d.Operands {
			if s, ok := op.(*StringLit); ok {
				size += uint32(len(s.Value))
			} else {
				size++
			}
		}
		return cursor + size

	case "DW", "DT":
		return cursor + uint32(len(d.Operands))*wordSize

	case "SPACE":
		n, ok := e.directiveImmediate(d)
		if !ok {
			return cursor
		}
		return cursor + uint32(n)

	case "ALIGN":
		n, ok := e.directiveImmediate(d)
		if !ok || n <= 0 {
			return cursor
		}
		align := uint32(n)
		if rem := cursor % align; rem != 0 {
			return cursor + (align - rem)
		}
		return cursor

	case "EQU":
		e.defineEqu(d)
		return cursor

	case "INCLUDE", "SECTION":
		return cursor

	default:
		return cursor
	}
}

func (e *encoder) defineEqu(d *Directive) {
	if len(d.Operands) != 2 {
		e.errorAt(d.At, "EQU requires a name and a value")
		return
	}
	sym, ok := d.Operands[0].(*SymbolRef)
	if !ok {
		e.errorAt(d.At, "EQU requires an identifier as its first operand")
		return
	}
	imm, ok := d.Operands[1].(*Immediate)
	if !ok {
		e.errorAt(d.At, "EQU requires an immediate as its second operand")
		return
	}
	if err := e.symbols.Define(sym.Name, uint32(imm.Value)); err != nil {
		e.errorAt(d.At, "%s: %q", err, sym.Name)
	}
}

func (e *encoder) directiveImmediate(d *Directive) (int64, bool) {
	if len(d.Operands) != 1 {
		e.errorAt(d.At, ".%s requires exactly one immediate operand", d.Name)
		return 0, false
	}
	imm, ok := d.Operands[0].(*Immediate)
	if !ok {
		e.errorAt(d.At, ".%s requires an immediate operand", d.Name)
		return 0, false
	}
	return imm.Value, true
}

func normalizeDirective(name string) string {
	for len(name) > 0 && name[0] == '.' {
		name = name[1:]
	}
	upper := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return string(upper)
}

// --- Pass 2: emission ---

func (e *encoder) emit(statements []Node) {
	for _, stmt := range statements {
		e.emitStatement(stmt)
	}
}

func (e *encoder) emitStatement(node Node) {
	switch n := node.(type) {
	case *lineNode:
		e.emitStatement(n.stmt)

	case *Label, nil:
		// Addresses were already assigned; nothing to emit.

	case *Instruction:
		word := e.encodeInstruction(n, e.img.Len())
		e.img.AppendWord(word)

	case *VLIW:
		e.emitVLIW(n)

	case *Directive:
		e.emitDirective(n)

	case *Comment, *StringLit:
		// Carries no bytes on its own.
	}
}

func (e *encoder) emitVLIW(v *VLIW) {
	if len(v.Ops) < 1 || len(v.Ops) > 3 {
		e.errorAt(v.At, "VLIW bundle must contain 1 to 3 operations, got %d", len(v.Ops))
	}

	start := e.img.Len()

	for i, op := range v.Ops {
		word := e.encodeInstruction(op, e.img.Len())
		e.img.AppendWord(word)

		if i > 0 {
			prevOffset := e.img.Len() - 2*wordSize
			prev := e.img.ReadWord(prevOffset)
			prev = (prev &^ 0x7) | uint32(FullParallel)
			e.img.PatchWord(prevOffset, prev)
		}
	}

	nop := opcodes["NOP"]
	for e.img.Len()-start < vliwSize {
		word := buildWord(nop.Value, 0, 0, 0, 0, nop.Category, Serial)
		e.img.AppendWord(word)
	}
}

func (e *encoder) emitDirective(d *Directive) {
	switch normalizeDirective(d.Name) {
	case "ORG":
		addr, ok := e.directiveImmediate(d)
		if !ok {
			return
		}
		target := uint32(addr)
		if target < e.img.Len() {
			e.warnAt(d.At, ".ORG %#x is less than the current address %#x, ignoring", target, e.img.Len())
			return
		}
		e.img.PadTo(target)

	case "DB":
		start := e.img.Len()
		for _, op := range d.Operands {
			e.emitByteOperand(op)
		}
		e.recordDataLine(d, start)

	case "DW", "DT":
		start := e.img.Len()
		for _, op := range d.Operands {
			e.emitWordOperand(op)
		}
		e.recordDataLine(d, start)

	case "SPACE":
		n, ok := e.directiveImmediate(d)
		if !ok {
			return
		}
		start := e.img.Len()
		e.img.PadTo(e.img.Len() + uint32(n))
		e.recordDataLine(d, start)

	case "ALIGN":
		n, ok := e.directiveImmediate(d)
		if !ok || n <= 0 {
			return
		}
		align := uint32(n)
		if rem := e.img.Len() % align; rem != 0 {
			e.img.PadTo(e.img.Len() + (align - rem))
		}

	case "EQU", "SECTION":
		// Symbol-table effect only; no bytes.

	case "INCLUDE":
		e.errorAt(d.At, "include resolution not supported")
	}
}

// recordDataLine adds an address-map entry spanning the bytes a data
// directive (.DB/.DW/.DT/.SPACE) just emitted, starting at start, so a
// listing shows the same offset/byte-count column for data lines that it
// shows for instructions. A directive that emitted nothing (an empty
// operand list, or an immediate it failed to parse) leaves no entry.
func (e *encoder) recordDataLine(d *Directive, start uint32) {
	length := e.img.Len() - start
	if length == 0 {
		return
	}
	e.addrMap = append(e.addrMap, SourceLine{File: d.At.File, Line: d.At.Line, Offset: start, Length: length})
}

func (e *encoder) emitByteOperand(op Node) {
	switch v := op.(type) {
	case *Immediate:
		value := v.Value
		if value < 0 || value > 255 {
			e.warnAt(v.At, "value %d is outside byte range, truncating", value)
		}
		e.img.AppendByte(byte(value & 0xFF))
	case *StringLit:
		e.img.AppendBytes([]byte(v.Value))
	default:
		e.errorAt(op.Pos(), ".DB operand must be an immediate or string")
	}
}

func (e *encoder) emitWordOperand(op Node) {
	imm, ok := op.(*Immediate)
	if !ok {
		e.errorAt(op.Pos(), ".DW/.DT operand must be an immediate")
		return
	}
	e.img.AppendWord(uint32(imm.Value))
}

// --- instruction word construction ---

func buildWord(opcode uint8, reg1, reg2, reg3 uint8, immediate uint32, cat Category, par ParFlag) uint32 {
	return (uint32(opcode)&0x3F)<<26 |
		(uint32(reg1)&0x7)<<23 |
		(uint32(reg2)&0x7)<<20 |
		(uint32(reg3)&0x7)<<17 |
		(immediate&0x7FF)<<6 |
		(uint32(cat)&0x7)<<3 |
		(uint32(par) & 0x7)
}

// encodeInstruction builds a single 32-bit instruction word at the given
// image offset, encoding operands positionally by category. addr is the
// byte offset the word will occupy, used to compute PC-relative patches.
func (e *encoder) encodeInstruction(inst *Instruction, addr uint32) uint32 {
	op, ok := opcodes[normalizeMnemonic(inst.Mnemonic)]
	if !ok {
		e.errorAt(inst.At, "unknown instruction %q", inst.Mnemonic)
		return 0
	}

	var reg1, reg2, reg3 uint8
	var immediate uint32

	mnemonic := normalizeMnemonic(inst.Mnemonic)

	switch {
	case mnemonic == "JMP" || mnemonic == "JAL" || mnemonic == "CALL":
		if len(inst.Operands) >= 1 {
			immediate = e.encodeAbsoluteTarget(inst.Operands[0], addr)
		}

	case registerJumpMnemonics[mnemonic]:
		if len(inst.Operands) >= 1 {
			reg1 = e.encodeRegisterOperand(inst.Operands[0])
		}

	case mnemonic == "RET":
		// No operands.

	case branchMnemonics[mnemonic]:
		if len(inst.Operands) >= 1 {
			reg1 = e.encodeRegisterOperand(inst.Operands[0])
		}
		if len(inst.Operands) >= 2 {
			reg2, immediate = e.encodeRegOrImm(inst.Operands[1])
		}
		if len(inst.Operands) >= 3 {
			immediate = e.encodeBranchTarget(inst.Operands[2], addr)
		}

	case op.Category == MEMORY:
		reg1, reg2, reg3, immediate = e.encodeMemoryOperands(inst, addr)

	default:
		// ALU, VECTOR, FPU, SYSTEM, MICROCODE share the (dst, src1, src2|imm)
		// positional shape.
		if len(inst.Operands) >= 1 {
			reg1 = e.encodeRegisterOperand(inst.Operands[0])
		}
		if len(inst.Operands) >= 2 {
			reg2 = e.encodeRegisterOperand(inst.Operands[1])
		}
		if len(inst.Operands) >= 3 {
			switch third := inst.Operands[2].(type) {
			case *Register:
				reg3 = e.encodeRegisterOperand(third)
			case *Immediate:
				immediate = uint32(third.Value) & 0x7FF
			case *SymbolRef:
				immediate = e.encodeAbsoluteTarget(third, addr)
			}
		}
	}

	e.addrMap = append(e.addrMap, SourceLine{File: inst.At.File, Line: inst.At.Line, Offset: addr, Length: wordSize})

	return buildWord(op.Value, reg1, reg2, reg3, immediate, op.Category, Serial)
}

func (e *encoder) encodeMemoryOperands(inst *Instruction, addr uint32) (reg1, reg2, reg3 uint8, immediate uint32) {
	if len(inst.Operands) >= 1 {
		reg1 = e.encodeRegisterOperand(inst.Operands[0])
	}
	if len(inst.Operands) < 2 {
		return
	}

	switch op := inst.Operands[1].(type) {
	case *MemoryRef:
		reg2 = e.encodeRegisterOperand(op.Base)
		switch offset := op.Offset.(type) {
		case *Immediate:
			immediate = uint32(offset.Value) & 0x7FF
		case *Register:
			reg3 = e.encodeRegisterOperand(offset)
		}
	case *Immediate:
		immediate = uint32(op.Value) & 0x7FF
	case *SymbolRef:
		immediate = e.encodeAbsoluteTarget(op, addr)
	}

	return
}

func (e *encoder) encodeRegisterOperand(node Node) uint8 {
	reg, ok := node.(*Register)
	if !ok {
		e.errorAt(node.Pos(), "expected register operand")
		return 0
	}
	_, enc, ok := lookupRegister(reg.Name)
	if !ok {
		e.errorAt(reg.At, "unknown register %q", reg.Name)
		return 0
	}
	return enc
}

// encodeRegOrImm returns either a register encoding (reg, 0) or an immediate
// value (0, imm), matching the "reg_or_imm" operand shape branch
// instructions use for their second operand.
func (e *encoder) encodeRegOrImm(node Node) (reg uint8, immediate uint32) {
	switch n := node.(type) {
	case *Register:
		return e.encodeRegisterOperand(n), 0
	case *Immediate:
		return 0, uint32(n.Value) & 0x7FF
	default:
		e.errorAt(node.Pos(), "expected register or immediate operand")
		return 0, 0
	}
}

// encodeBranchTarget records a PC-relative pending reference against a
// symbol target, or resolves a literal immediate offset directly. It
// returns the immediate field's placeholder value (0 for a pending symbol).
//
// The relative offset is taken against the branch instruction's own
// address, not the address after it: a BNE at address 4 targeting address 0
// encodes -4, not -8.
func (e *encoder) encodeBranchTarget(node Node, addr uint32) uint32 {
	switch n := node.(type) {
	case *SymbolRef:
		e.patches.add(PendingPatch{
			Symbol:     n.Name,
			Offset:     addr,
			PC:         addr,
			PCRelative: true,
			At:         n.At,
		})
		return 0
	case *Immediate:
		return uint32(n.Value) & 0x7FF
	default:
		e.errorAt(node.Pos(), "expected branch target")
		return 0
	}
}

// encodeAbsoluteTarget records an absolute pending reference against a
// symbol, or resolves a literal immediate directly.
func (e *encoder) encodeAbsoluteTarget(node Node, addr uint32) uint32 {
	switch n := node.(type) {
	case *SymbolRef:
		e.patches.add(PendingPatch{
			Symbol:     n.Name,
			Offset:     addr,
			PCRelative: false,
			At:         n.At,
		})
		return 0
	case *Immediate:
		return uint32(n.Value) & 0x7FF
	default:
		e.errorAt(node.Pos(), "expected symbol or immediate")
		return 0
	}
}

func normalizeMnemonic(m string) string {
	upper := make([]byte, len(m))
	for i := 0; i < len(m); i++ {
		c := m[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return string(upper)
}

// --- Pass 3: symbol resolution ---

func (e *encoder) resolveSymbols() {
	for _, patch := range e.patches {
		addr, ok := e.symbols.Lookup(patch.Symbol)
		if !ok {
			e.errorAt(patch.At, "%s %q", ErrUndefinedSymbol, patch.Symbol)
			continue
		}

		var field uint32

		if patch.PCRelative {
			offset := int64(addr) - int64(patch.PC)
			if offset < immMin || offset > immMax {
				e.errorAt(patch.At, "%s: %q", ErrBranchRange, patch.Symbol)
				continue
			}
			field = uint32(offset) & 0x7FF
		} else {
			field = addr & 0x7FF
		}

		if int(patch.Offset)+wordSize > len(e.img.bytes) {
			e.errorAt(patch.At, "%s: patch offset out of bounds", ErrPendingReference)
			continue
		}

		word := e.img.ReadWord(patch.Offset)
		word = (word &^ (uint32(0x7FF) << 6)) | (field << 6)
		e.img.PatchWord(patch.Offset, word)
	}
}
