package cmd_test

import (
	"strings"
	"testing"

	"github.com/itworks99/vtx1/internal/asm"
	"github.com/itworks99/vtx1/internal/cli/cmd"
)

func assemble(t *testing.T, sources []cmd.Source) *asm.Result {
	t.Helper()

	inputs := make([]asm.NamedReader, 0, len(sources))
	for _, src := range sources {
		inputs = append(inputs, asm.NamedReader{Name: src.Name, Reader: strings.NewReader(src.Text)})
	}

	result, err := asm.Assemble(inputs, asm.Options{})
	if err != nil {
		t.Fatalf("Assemble: %s", err)
	}

	return result
}

func TestRenderListingAnnotatesEmittingLines(t *testing.T) {
	sources := []cmd.Source{{
		Name: "main.asm",
		Text: "; leading comment\nmain:\n\tNOP\n",
	}}

	var out strings.Builder
	if err := cmd.RenderListing(&out, assemble(t, sources), sources); err != nil {
		t.Fatalf("RenderListing: %s", err)
	}

	listing := out.String()

	if !strings.Contains(listing, "SYMBOLS") {
		t.Errorf("listing missing symbol table header:\n%s", listing)
	}
	if !strings.Contains(listing, "main") {
		t.Errorf("listing missing symbol 'main':\n%s", listing)
	}

	lines := strings.Split(listing, "\n")

	var commentLine, nopLine string
	for _, line := range lines {
		if strings.Contains(line, "; leading comment") {
			commentLine = line
		}
		if strings.Contains(line, "NOP") {
			nopLine = line
		}
	}

	if commentLine == "" || strings.HasPrefix(strings.TrimRight(commentLine, " "), "0") {
		t.Errorf("comment line should have no address column: %q", commentLine)
	}
	if !strings.HasPrefix(nopLine, "000000") {
		t.Errorf("NOP line should be annotated with its offset: %q", nopLine)
	}
}

// TestRenderListingSeparatesFilesWithSameLineNumbers: two single-line inputs
// both emit on line 1; each file's listing must show only its own bytes.
func TestRenderListingSeparatesFilesWithSameLineNumbers(t *testing.T) {
	sources := []cmd.Source{
		{Name: "a.asm", Text: "NOP\n"},
		{Name: "b.asm", Text: "WFI\n"},
	}

	var out strings.Builder
	if err := cmd.RenderListing(&out, assemble(t, sources), sources); err != nil {
		t.Fatalf("RenderListing: %s", err)
	}

	var nopAddrs, wfiAddrs int
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "000000") && strings.Contains(line, "NOP") {
			nopAddrs++
		}
		if strings.HasPrefix(line, "000004") && strings.Contains(line, "WFI") {
			wfiAddrs++
		}
	}

	if nopAddrs != 1 {
		t.Errorf("NOP at offset 0 annotated %d times, want 1:\n%s", nopAddrs, out.String())
	}
	if wfiAddrs != 1 {
		t.Errorf("WFI at offset 4 annotated %d times, want 1:\n%s", wfiAddrs, out.String())
	}
}
