package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/itworks99/vtx1/internal/asm"
)

// Source pairs an input file's name with its original text, so the listing
// can reproduce every line, including comments and blanks, which never
// appear in the address map.
type Source struct {
	Name string
	Text string
}

// RenderListing writes a human-readable listing for result: first the
// resolved symbol table, then every source line annotated with the image
// offset and machine-code bytes it produced. A line that emitted nothing --
// a label alone, a comment, a blank line -- is reproduced with no address
// column.
func RenderListing(w io.Writer, result *asm.Result, sources []Source) error {
	if err := renderSymbols(w, result.Symbols); err != nil {
		return err
	}

	for _, src := range sources {
		if len(sources) > 1 {
			if _, err := fmt.Fprintf(w, "\n; file: %s\n", src.Name); err != nil {
				return err
			}
		}

		// Each input's address-map entries carry its name, so two inputs
		// whose line numbers collide cannot claim each other's bytes.
		var entries asm.AddressMap
		for _, e := range result.AddressMap {
			if e.File == src.Name {
				entries = append(entries, e)
			}
		}

		lines := strings.Split(src.Text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		var consumed int
		for lineNo, text := range lines {
			consumed = renderLine(w, lineNo+1, text, entries, result.Image)
			entries = entries[consumed:]
		}
	}

	return nil
}

func renderSymbols(w io.Writer, symbols asm.SymbolTable) error {
	if _, err := fmt.Fprintln(w, "SYMBOLS"); err != nil {
		return err
	}

	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "  %-16s 0x%08X\n", name, symbols[name]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

// renderLine prints one source line, consuming every address-map entry
// whose Line matches lineNo (a VLIW bundle contributes up to three), and
// returns how many entries it consumed so the caller can advance its cursor.
func renderLine(w io.Writer, lineNo int, text string, entries asm.AddressMap, image []byte) int {
	var consumed int

	for consumed < len(entries) && entries[consumed].Line == lineNo {
		consumed++
	}

	if consumed == 0 {
		fmt.Fprintf(w, "%26s%s\n", "", text)
		return 0
	}

	for i, e := range entries[:consumed] {
		bytes := image[e.Offset : e.Offset+e.Length]
		hex := make([]string, len(bytes))
		for j, b := range bytes {
			hex[j] = fmt.Sprintf("%02X", b)
		}

		if i == 0 {
			fmt.Fprintf(w, "%06X  %-17s %s\n", e.Offset, strings.Join(hex, " "), text)
		} else {
			fmt.Fprintf(w, "%06X  %-17s\n", e.Offset, strings.Join(hex, " "))
		}
	}

	return consumed
}
