package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/itworks99/vtx1/internal/asm"
	"github.com/itworks99/vtx1/internal/cli"
	"github.com/itworks99/vtx1/internal/log"
)

// Browse is a read-only interactive browser over an assembled program's
// listing and symbol table -- a scaled-down debugger TUI, with one source
// view and one symbol view rather than the registers/memory/stack panels a
// running-machine debugger would need, since the assembler core never
// executes anything.
//
//	vtx1 browse file.asm
func Browse() cli.Command {
	return new(browser)
}

type browser struct{}

func (browser) Description() string {
	return "interactively browse an assembled program's listing and symbols"
}

func (browser) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `browse file.asm

Open an interactive, read-only listing and symbol-table browser.`)

	return err
}

func (browser) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("browse", flag.ExitOnError)
}

func (b *browser) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) == 0 {
		logger.Error("browse: no input file")
		return 1
	}

	sources, err := readSources(args)
	if err != nil {
		logger.Error("browse: read failed", "err", err)
		return 1
	}

	a := &assembler{format: "raw"}

	result, err := a.assemble(sources, logger)
	if err != nil {
		for _, d := range result.Diagnostics {
			logger.Error(d.Error())
		}

		return 1
	}

	tui := newBrowserTUI(result, sources)

	if err := tui.App.Run(); err != nil {
		logger.Error("browse: tui failed", "err", err)
		return 1
	}

	return 0
}

// browserTUI holds the interactive browser's views.
type browserTUI struct {
	App        *tview.Application
	SourceView *tview.TextView
	SymbolView *tview.TextView
	Layout     *tview.Flex
}

func newBrowserTUI(result *asm.Result, sources []Source) *browserTUI {
	t := &browserTUI{App: tview.NewApplication()}

	t.SourceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.SourceView.SetBorder(true).SetTitle(" Listing ")

	t.SymbolView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.SymbolView.SetBorder(true).SetTitle(" Symbols ")

	t.Layout = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.SourceView, 0, 3, true).
		AddItem(t.SymbolView, 0, 1, false)

	t.populate(result, sources)
	t.setupKeyBindings()

	t.App.SetRoot(t.Layout, true)

	return t
}

func (t *browserTUI) populate(result *asm.Result, sources []Source) {
	var listing bytes.Buffer

	// tview interprets "[" as the start of a color tag, so the rendered
	// listing (full of memory references) must be escaped first.
	_ = RenderListing(&listing, result, sources)
	fmt.Fprint(t.SourceView, tview.Escape(listing.String()))

	names := make([]string, 0, len(result.Symbols))
	for name := range result.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(t.SymbolView, "%-16s 0x%08X\n", name, result.Symbols[name])
	}
}

func (t *browserTUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				t.App.Stop()
				return nil
			}
		}

		return event
	})
}
