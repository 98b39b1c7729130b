package asm

import (
	"fmt"
	"io"

	"github.com/itworks99/vtx1/internal/log"
)

// NamedReader pairs a reader with a name that is recorded on the positions
// of diagnostics and address-map entries from that input; the core reads
// every byte up front and does no further I/O itself.
type NamedReader struct {
	Name   string
	Reader io.Reader
}

// Options configures an Assemble run. The zero value is a valid
// configuration. There is no origin option: addresses start at 0 and move
// only through .ORG and the other directives in the source. The address map
// is always built since listing generation depends on it and it costs
// little to produce.
type Options struct {
	// Logger receives pass-boundary debug events ("collected symbols",
	// "resolved references"). A nil Logger discards them.
	Logger *log.Logger
}

// Assemble runs the lexer, parser and encoder over each input in order and
// returns the combined result. Diagnostics from every input and every pass
// are collected into a single list; the returned error is non-nil exactly
// when any diagnostic has error severity. Warnings alone never fail a run.
func Assemble(inputs []NamedReader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewFormattedLogger(io.Discard)
	}

	program := &Program{}
	var diags Diagnostics

	for _, in := range inputs {
		src, err := io.ReadAll(in.Reader)
		if err != nil {
			return nil, fmt.Errorf("asm: reading %q: %w", in.Name, err)
		}

		tokens := LexFile(in.Name, string(src))
		logger.Debug("lexed input", log.String("name", in.Name), log.Any("tokens", len(tokens)))

		prog, perrs := Parse(tokens)
		diags = append(diags, perrs...)

		program.Statements = append(program.Statements, prog.Statements...)
	}

	logger.Debug("collected symbols")

	result := Encode(program)
	result.Diagnostics = append(diags, result.Diagnostics...)

	logger.Debug("resolved references", log.Any("errors", len(result.Diagnostics)))

	if result.Diagnostics.HasErrors() {
		result.Image = nil
		return result, result.Diagnostics.Err()
	}

	return result, nil
}
