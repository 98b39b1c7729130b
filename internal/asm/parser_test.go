package asm_test

import (
	"testing"

	. "github.com/itworks99/vtx1/internal/asm"
)

func parse(t *testing.T, src string) (*Program, Diagnostics) {
	t.Helper()
	return Parse(Lex(src))
}

func TestParseLabelAndInstruction(t *testing.T) {
	prog, diags := parse(t, "main:\n\tLD T0, 0x1234\n\tNOP\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	// A label on its own line, followed by two instruction lines.
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3: %#v", len(prog.Statements), prog.Statements)
	}

	label, ok := prog.Statements[0].(*Label)
	if !ok || label.Name != "main" {
		t.Fatalf("statement 0 = %+v, want Label(main)", prog.Statements[0])
	}
}

func TestParseLabelSharesLineWithInstruction(t *testing.T) {
	prog, diags := parse(t, "loop: ADD T0, T0, T1\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
}

func TestParseVLIWBundleSizes(t *testing.T) {
	cases := []struct {
		src     string
		wantErr bool
	}{
		{"[ADD T0,T1,T2]", false},
		{"[ADD T0,T1,T2] [SUB T3,T1,T0]", false},
		{"[ADD T0,T1,T2] [SUB T3,T1,T0] [MUL T4,T0,T1]", false},
		{"[ADD T0,T1,T2] [SUB T3,T1,T0] [MUL T4,T0,T1] [NOP]", true},
	}

	for _, c := range cases {
		_, diags := parse(t, c.src)
		if diags.HasErrors() != c.wantErr {
			t.Errorf("parse(%q): HasErrors() = %v, want %v (%v)", c.src, diags.HasErrors(), c.wantErr, diags)
		}
	}
}

func TestParseMemoryRef(t *testing.T) {
	prog, diags := parse(t, "LD T0, [T1 + 4]\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	inst, ok := prog.Statements[0].(*Instruction)
	if !ok {
		t.Fatalf("statement 0 is %T, want *Instruction", prog.Statements[0])
	}

	if len(inst.Operands) != 2 {
		t.Fatalf("got %d operands, want 2", len(inst.Operands))
	}

	ref, ok := inst.Operands[1].(*MemoryRef)
	if !ok {
		t.Fatalf("operand 1 is %T, want *MemoryRef", inst.Operands[1])
	}
	if ref.Base.Name != "T1" {
		t.Errorf("base register = %q, want T1", ref.Base.Name)
	}
	if imm, ok := ref.Offset.(*Immediate); !ok || imm.Value != 4 {
		t.Errorf("offset = %+v, want immediate 4", ref.Offset)
	}
}

func TestParseDirectives(t *testing.T) {
	prog, diags := parse(t, ".ORG 0x1000\n.DB 1, 2, \"hi\"\n.EQU FOO, 42\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}

	db, ok := prog.Statements[1].(*Directive)
	if !ok {
		t.Fatalf("statement 1 is %T, want *Directive", prog.Statements[1])
	}
	if len(db.Operands) != 3 {
		t.Errorf("DB operand count = %d, want 3", len(db.Operands))
	}
}

func TestParseSyntaxErrorRecovers(t *testing.T) {
	// A stray ',' at start of line is a syntax error; the parser should
	// still recover and parse the following valid line.
	prog, diags := parse(t, ",\nNOP\n")
	if !diags.HasErrors() {
		t.Fatalf("expected a syntax error")
	}

	var foundNOP bool
	for _, stmt := range prog.Statements {
		if inst, ok := stmt.(*Instruction); ok && inst.Mnemonic == "NOP" {
			foundNOP = true
		}
	}
	if !foundNOP {
		t.Errorf("parser did not recover to parse NOP after a syntax error")
	}
}

func TestParseSymbolReference(t *testing.T) {
	prog, diags := parse(t, "JMP target\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	inst := prog.Statements[0].(*Instruction)
	ref, ok := inst.Operands[0].(*SymbolRef)
	if !ok {
		t.Fatalf("operand is %T, want *SymbolRef", inst.Operands[0])
	}
	if ref.Name != "target" {
		t.Errorf("symbol name = %q, want target", ref.Name)
	}
}
