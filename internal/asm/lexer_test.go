package asm_test

import (
	"testing"

	. "github.com/itworks99/vtx1/internal/asm"
)

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexMnemonicCategories(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"ADD", KindALU},
		{"add", KindALU}, // case-insensitive
		{"LD", KindMemory},
		{"JMP", KindControl},
		{"VADD", KindVector},
		{"FADD", KindFPU},
		{"NOP", KindSystem},
		{"DIV", KindMicrocode},
	}

	for _, c := range cases {
		toks := Lex(c.src)
		if toks[0].Kind != c.kind {
			t.Errorf("Lex(%q)[0].Kind = %s, want %s", c.src, toks[0].Kind, c.kind)
		}
	}
}

// TestLexLongestMatch guards against JAL matching before JALR is fully
// scanned; shorter keywords must never shadow longer ones.
func TestLexLongestMatch(t *testing.T) {
	toks := Lex("JALR T0")
	if toks[0].Kind != KindControl || toks[0].Lexeme != "JALR" {
		t.Fatalf("Lex(\"JALR T0\")[0] = %+v, want JALR", toks[0])
	}
}

func TestLexRegisterBanks(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"T0", KindGPR},
		{"T6", KindGPR},
		{"TA", KindSpecialReg},
		{"TI", KindSpecialReg},
		{"VA", KindVectorReg},
		{"FB", KindFPReg},
	}

	for _, c := range cases {
		toks := Lex(c.src)
		if toks[0].Kind != c.kind {
			t.Errorf("Lex(%q)[0].Kind = %s, want %s", c.src, toks[0].Kind, c.kind)
		}
	}
}

func TestLexPunctuation(t *testing.T) {
	toks := Lex("[T0+1],:")
	got := kinds(toks)
	want := []Kind{
		KindLBracket, KindGPR, KindPlus, KindDecimal, KindRBracket,
		KindComma, KindColon, KindEOF,
	}

	if len(got) != len(want) {
		t.Fatalf("Lex: got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lex token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexDirectives(t *testing.T) {
	for _, name := range []string{"ORG", "DB", "DW", "DT", "EQU", "INCLUDE", "SECTION", "ALIGN", "SPACE"} {
		toks := Lex("." + name)
		if toks[0].Kind != KindDirective {
			t.Errorf("Lex(%q)[0].Kind = %s, want KindDirective", "."+name, toks[0].Kind)
		}
	}

	toks := Lex(".BOGUS")
	if toks[0].Kind != KindError {
		t.Errorf("Lex(\".BOGUS\")[0].Kind = %s, want KindError", toks[0].Kind)
	}
}

func TestLexLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"0t+0-", KindTernary},
		{"0b1010", KindBinary},
		{"0x1A", KindHex},
		{"1234", KindDecimal},
		{`"hello"`, KindString},
	}

	for _, c := range cases {
		toks := Lex(c.src)
		if toks[0].Kind != c.kind {
			t.Errorf("Lex(%q)[0].Kind = %s, want %s", c.src, toks[0].Kind, c.kind)
		}
	}
}

func TestLexCommentsAndNewlines(t *testing.T) {
	toks := Lex("ADD T0 ; a comment\nSUB T1")
	got := kinds(toks)
	want := []Kind{KindALU, KindGPR, KindComment, KindNewline, KindALU, KindGPR, KindEOF}

	if len(got) != len(want) {
		t.Fatalf("Lex: got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lex token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexErrorRecovers(t *testing.T) {
	toks := Lex("ADD T0, #T1")
	if toks[0].Kind != KindALU {
		t.Fatalf("Lex: first token = %s, want KindALU", toks[0].Kind)
	}

	var sawError bool
	for _, tok := range toks {
		if tok.Kind == KindError {
			sawError = true
		}
	}
	if !sawError {
		t.Errorf("Lex: expected a KindError token for '#'")
	}

	if toks[len(toks)-1].Kind != KindEOF {
		t.Errorf("Lex: last token = %s, want KindEOF", toks[len(toks)-1].Kind)
	}
}

func TestLexLineColumn(t *testing.T) {
	toks := Lex("ADD\nSUB")

	if toks[0].At.Line != 1 || toks[0].At.Column != 1 {
		t.Errorf("ADD token at %s, want 1:1", toks[0].At)
	}

	// toks: ADD(0) NEWLINE(1) SUB(2)
	if toks[2].At.Line != 2 || toks[2].At.Column != 1 {
		t.Errorf("SUB token at %s, want 2:1", toks[2].At)
	}
}
