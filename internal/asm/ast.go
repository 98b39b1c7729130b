package asm

// Node is implemented by every program-tree variant. Each variant names its
// own children rather than sharing a single generic child list, which
// removes the presence checks a generic node would force on every consumer.
type Node interface {
	Pos() Pos
}

// Program is the tree root; its children are, in source order, the
// top-level statements.
type Program struct {
	At         Pos
	Statements []Node
}

func (n *Program) Pos() Pos { return n.At }

// Label declares that Name refers to the address of the next
// address-consuming node.
type Label struct {
	At   Pos
	Name string
}

func (n *Label) Pos() Pos { return n.At }

// Instruction is a single mnemonic with its operand list, either standalone
// or as one slot of a VLIW bundle.
type Instruction struct {
	At       Pos
	Mnemonic string
	Category Category
	Operands []Node
}

func (n *Instruction) Pos() Pos { return n.At }

// VLIW is a bundle of 1 to 3 parallel instructions.
type VLIW struct {
	At  Pos
	Ops []*Instruction
}

func (n *VLIW) Pos() Pos { return n.At }

// Directive is an assembler directive together with its operand list.
type Directive struct {
	At       Pos
	Name     string
	Operands []Node
}

func (n *Directive) Pos() Pos { return n.At }

// Register is a register operand.
type Register struct {
	At   Pos
	Name string
}

func (n *Register) Pos() Pos { return n.At }

// MemoryRef is a `[base + offset]` operand. Offset is nil when absent.
type MemoryRef struct {
	At     Pos
	Base   *Register
	Offset Node // *Register, *Immediate, or nil
}

func (n *MemoryRef) Pos() Pos { return n.At }

// Immediate is a numeric literal operand, already decoded to its integer
// value, together with the lexeme it was written as (for diagnostics only).
type Immediate struct {
	At     Pos
	Lexeme string
	Value  int64
}

func (n *Immediate) Pos() Pos { return n.At }

// StringLit is a quoted string operand, used only by data directives.
type StringLit struct {
	At    Pos
	Value string
}

func (n *StringLit) Pos() Pos { return n.At }

// SymbolRef is an identifier used as an operand, resolved at encode time.
type SymbolRef struct {
	At   Pos
	Name string
}

func (n *SymbolRef) Pos() Pos { return n.At }

// Comment is a preserved `;` comment, kept as a tree node so listing
// generation can re-attach it to its source line.
type Comment struct {
	At   Pos
	Text string
}

func (n *Comment) Pos() Pos { return n.At }
