package asm

import "fmt"

// Parse consumes a token stream and produces a Program together with any
// diagnostics encountered. Parsing never stops at the first error: it
// synchronizes at the next NEWLINE or statement-starting token (a mnemonic,
// a directive, a '[' opening a VLIW bundle, or an identifier followed by a
// colon) and continues, so a
// single source file can report more than one syntax error per run.
func Parse(tokens []Token) (*Program, Diagnostics) {
	p := &parser{tokens: tokens}
	return p.parseProgram(), p.diags
}

type parser struct {
	tokens []Token
	pos    int
	diags  Diagnostics
}

func (p *parser) parseProgram() *Program {
	at := Pos{Line: 1, Column: 1}
	if len(p.tokens) > 0 {
		at = p.tokens[0].At
	}

	prog := &Program{At: at}

	for !p.check(KindEOF) {
		if p.check(KindNewline) {
			p.advance()
			continue
		}

		if p.check(KindError) {
			tok := p.advance()
			p.diags = append(p.diags, &LexError{At: tok.At, Lexeme: tok.Lexeme})
			continue
		}

		stmt := p.parseLine()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}

		if !p.check(KindEOF) && !p.check(KindNewline) {
			p.errorf("expected end of line")
			p.synchronize()
		}

		if p.check(KindNewline) {
			p.advance()
		}
	}

	return prog
}

// parseLine parses one optional label followed by one optional statement.
// A line holding only a label returns the *Label, a line with no label
// returns the statement node, and a line with both returns a *lineNode
// pairing them.
func (p *parser) parseLine() Node {
	var label *Label

	if p.check(KindIdentifier) && p.checkAt(1, KindColon) {
		tok := p.advance()
		p.advance() // colon
		label = &Label{At: tok.At, Name: tok.Lexeme}
	}

	var stmt Node

	switch {
	case p.check(KindNewline), p.check(KindEOF):
		stmt = nil
	case p.check(KindComment):
		stmt = p.parseComment()
	case p.check(KindLBracket):
		stmt = p.parseVLIW()
	case p.peek().Kind.IsMnemonic():
		stmt = p.parseInstruction()
	case p.check(KindDirective):
		stmt = p.parseDirective()
	case label == nil:
		tok := p.peek()
		p.errorf("unexpected token %q", tok.Lexeme)
		p.synchronize()
		return nil
	}

	if label == nil {
		return stmt
	}

	if stmt == nil {
		return label
	}

	// A label sharing a line with a statement is wrapped together with it;
	// the encoder unwraps the pair.
	return &lineNode{label: label, stmt: stmt}
}

// lineNode pairs a label with the statement on the same source line. It is
// unwrapped by the encoder, which treats the two exactly as if they had
// appeared as separate statements at the same address.
type lineNode struct {
	label *Label
	stmt  Node
}

func (n *lineNode) Pos() Pos { return n.label.At }

func (p *parser) parseComment() Node {
	tok := p.advance()
	return &Comment{At: tok.At, Text: tok.Lexeme}
}

func (p *parser) parseInstruction() *Instruction {
	tok := p.advance()
	inst := &Instruction{At: tok.At, Mnemonic: tok.Lexeme, Category: tok.Kind.Category()}

	if p.check(KindNewline) || p.check(KindEOF) || p.check(KindRBracket) {
		return inst
	}

	inst.Operands = append(inst.Operands, p.parseOperand())

	for p.check(KindComma) {
		p.advance()
		inst.Operands = append(inst.Operands, p.parseOperand())
	}

	return inst
}

func (p *parser) parseVLIW() Node {
	at := p.peek().At

	var ops []*Instruction

	for p.check(KindLBracket) && len(ops) < 4 {
		p.advance() // '['

		if !p.peek().Kind.IsMnemonic() {
			p.errorf("expected instruction inside VLIW bundle")
			p.synchronize()
			return &VLIW{At: at, Ops: ops}
		}

		ops = append(ops, p.parseInstruction())

		if !p.expect(KindRBracket, "expected ']' closing VLIW operation") {
			return &VLIW{At: at, Ops: ops}
		}
	}

	if len(ops) < 1 || len(ops) > 3 {
		p.errorAt(at, "VLIW bundle must contain 1 to 3 operations, got %d", len(ops))
	}

	return &VLIW{At: at, Ops: ops}
}

func (p *parser) parseDirective() *Directive {
	tok := p.advance()
	dir := &Directive{At: tok.At, Name: tok.Lexeme}

	if p.check(KindNewline) || p.check(KindEOF) {
		return dir
	}

	dir.Operands = append(dir.Operands, p.parseDirectiveOperand())

	for p.check(KindComma) {
		p.advance()
		dir.Operands = append(dir.Operands, p.parseDirectiveOperand())
	}

	return dir
}

func (p *parser) parseDirectiveOperand() Node {
	if p.check(KindString) {
		tok := p.advance()
		return &StringLit{At: tok.At, Value: unquote(tok.Lexeme)}
	}
	return p.parseOperand()
}

func (p *parser) parseOperand() Node {
	tok := p.peek()

	switch tok.Kind {
	case KindGPR, KindSpecialReg, KindVectorReg, KindFPReg:
		p.advance()
		return &Register{At: tok.At, Name: tok.Lexeme}

	case KindTernary, KindBinary, KindHex, KindDecimal:
		p.advance()
		value, err := ParseLiteral(tok.Lexeme)
		if err != nil {
			p.errorAt(tok.At, "%s", err)
		}
		return &Immediate{At: tok.At, Lexeme: tok.Lexeme, Value: value}

	case KindString:
		p.advance()
		return &StringLit{At: tok.At, Value: unquote(tok.Lexeme)}

	case KindIdentifier:
		p.advance()
		return &SymbolRef{At: tok.At, Name: tok.Lexeme}

	case KindLBracket:
		return p.parseMemoryRef()

	default:
		p.errorf("expected operand, found %q", tok.Lexeme)
		p.advance()
		return nil
	}
}

func (p *parser) parseMemoryRef() Node {
	at := p.advance().At // '['

	baseTok := p.peek()
	if baseTok.Kind != KindGPR && baseTok.Kind != KindSpecialReg &&
		baseTok.Kind != KindVectorReg && baseTok.Kind != KindFPReg {
		p.errorf("expected base register in memory reference")
		p.synchronize()
		return &MemoryRef{At: at}
	}

	p.advance()
	ref := &MemoryRef{At: at, Base: &Register{At: baseTok.At, Name: baseTok.Lexeme}}

	if p.check(KindPlus) {
		p.advance()
		ref.Offset = p.parseOperand()
	}

	p.expect(KindRBracket, "expected ']' closing memory reference")

	return ref
}

// --- token-stream helpers ---

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}
	return p.tokens[idx]
}

func (p *parser) check(k Kind) bool            { return p.peek().Kind == k }
func (p *parser) checkAt(off int, k Kind) bool { return p.peekAt(off).Kind == k }

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(k Kind, message string) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	p.errorf("%s", message)
	return false
}

func (p *parser) errorf(format string, args ...any) {
	p.errorAt(p.peek().At, format, args...)
}

func (p *parser) errorAt(at Pos, format string, args ...any) {
	p.diags = append(p.diags, &SyntaxError{At: at, Message: fmt.Sprintf(format, args...)})
}

// synchronize discards tokens until the next NEWLINE or a token that can
// start a new statement, so one bad line does not cascade into a wall of
// errors.
func (p *parser) synchronize() {
	for !p.check(KindEOF) {
		if p.check(KindNewline) {
			return
		}
		if p.peek().Kind.IsMnemonic() || p.check(KindDirective) || p.check(KindLBracket) {
			return
		}
		if p.check(KindIdentifier) && p.checkAt(1, KindColon) {
			return
		}
		p.advance()
	}
}

func unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' {
		end := len(lexeme)
		if lexeme[end-1] == '"' {
			end--
		}
		return lexeme[1:end]
	}
	return lexeme
}
