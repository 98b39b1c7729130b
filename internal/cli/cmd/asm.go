package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itworks99/vtx1/internal/asm"
	"github.com/itworks99/vtx1/internal/cli"
	"github.com/itworks99/vtx1/internal/config"
	"github.com/itworks99/vtx1/internal/encoding"
	"github.com/itworks99/vtx1/internal/log"
	"github.com/itworks99/vtx1/internal/tty"
)

// Assembler is the command that translates VTX1 source into a binary image.
//
//	vtx1 asm -o a.out file.asm
func Assembler() cli.Command {
	return new(assembler)
}

type assembler struct {
	debug   bool
	quiet   bool
	watch   bool
	output  string
	listing string
	origin  string
	format  string
}

func (assembler) Description() string {
	return "assemble source code into a binary image"
}

func (assembler) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `asm [-o file] [-listing file] [-origin n] [-format raw|hex] file.asm...

Assemble one or more source files into a binary image.`)

	return err
}

// FlagSet seeds its defaults from the project file (internal/config), so
// that a bare `vtx1 asm file.asm` honors whatever a vtx1.toml in the user's
// config directory asks for; any flag given on the command line overrides
// the corresponding file value, since flag.Parse always wins over the
// default it was handed here.
func (a *assembler) FlagSet() *cli.FlagSet {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	fs := flag.NewFlagSet("asm", flag.ExitOnError)
	fs.BoolVar(&a.debug, "debug", cfg.Logging.Debug, "enable debug logging")
	fs.BoolVar(&a.quiet, "quiet", cfg.Logging.Compact, "omit source/function fields from log output")
	fs.BoolVar(&a.watch, "watch", false, "re-assemble each time a key is pressed")
	fs.StringVar(&a.output, "o", cfg.Output.Path, "output `filename`")
	fs.StringVar(&a.listing, "listing", cfg.Output.Listing, "listing output `filename`")
	fs.StringVar(&a.origin, "origin", cfg.Sources.Origin, "default origin address, any accepted literal radix")
	fs.StringVar(&a.format, "format", string(cfg.Output.Format), "output format: raw or hex")

	return fs
}

// Run assembles the named files and writes the resulting image (and, if
// requested, a listing) to disk. With -watch, it repeats the assembly every
// time a key is pressed on the controlling terminal, for a tight
// edit-assemble-inspect loop.
func (a *assembler) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if a.debug {
		log.LogLevel.Set(log.Debug)
	}

	if h, ok := logger.Handler().(*log.Handler); ok {
		h.Compact(a.quiet)
	}

	if len(args) == 0 {
		logger.Error("asm: no input files")
		return 1
	}

	if !a.watch {
		return a.assembleOnce(args, logger)
	}

	return a.assembleWatch(ctx, args, logger)
}

func (a *assembler) assembleOnce(args []string, logger *log.Logger) int {
	sources, err := readSources(args)
	if err != nil {
		logger.Error("asm: read failed", "err", err)
		return 1
	}

	result, err := a.assemble(sources, logger)
	if err != nil {
		for _, d := range result.Diagnostics {
			logger.Error(d.Error())
		}

		return 1
	}

	if err := a.writeOutputs(result, sources); err != nil {
		logger.Error("asm: write failed", "err", err)
		return 1
	}

	logger.Debug("assembled", "bytes", len(result.Image), "symbols", len(result.Symbols))

	return 0
}

// assembleWatch re-runs assembleOnce every time a key is pressed, so a
// developer can leave an editor and a terminal side by side and tap a key to
// re-check their work. It requires a real controlling terminal.
func (a *assembler) assembleWatch(ctx context.Context, args []string, logger *log.Logger) int {
	reader, err := tty.Open(os.Stdin)
	if err != nil {
		logger.Error("asm: -watch requires a terminal", "err", err)
		return 1
	}
	defer reader.Restore()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go reader.Run(watchCtx)

	logger.Debug("watching for keypresses; press 'q' to quit")

	for {
		select {
		case <-ctx.Done():
			return 0
		case key := <-reader.Keys():
			if key == 'q' || key == 3 { // 'q' or Ctrl-C
				return 0
			}

			a.assembleOnce(args, logger)
		}
	}
}

func (a *assembler) assemble(sources []Source, logger *log.Logger) (*asm.Result, error) {
	inputs := make([]asm.NamedReader, 0, len(sources)+1)

	// The origin rides in as a synthetic leading input rather than being
	// spliced into the first file's text, which would shift every listing
	// line number by one.
	if a.origin != "" && a.origin != "0" {
		inputs = append(inputs, asm.NamedReader{
			Name:   "<origin>",
			Reader: strings.NewReader(fmt.Sprintf(".ORG %s\n", a.origin)),
		})
	}

	for _, src := range sources {
		inputs = append(inputs, asm.NamedReader{
			Name:   src.Name,
			Reader: strings.NewReader(src.Text),
		})
	}

	return asm.Assemble(inputs, asm.Options{Logger: logger})
}

func (a *assembler) writeOutputs(result *asm.Result, sources []Source) error {
	var (
		payload []byte
		err     error
	)

	switch config.Format(a.format) {
	case config.FormatHex:
		payload, err = encoding.MarshalImage(0, result.Image)
		if err != nil {
			return fmt.Errorf("asm: encoding hex output: %w", err)
		}
	default:
		payload = result.Image
	}

	out, err := os.Create(a.output)
	if err != nil {
		return fmt.Errorf("asm: creating %s: %w", a.output, err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if _, err := buf.Write(payload); err != nil {
		return fmt.Errorf("asm: writing %s: %w", a.output, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("asm: writing %s: %w", a.output, err)
	}

	if a.listing == "" {
		return nil
	}

	lst, err := os.Create(a.listing)
	if err != nil {
		return fmt.Errorf("asm: creating %s: %w", a.listing, err)
	}
	defer lst.Close()

	return RenderListing(lst, result, sources)
}

func readSources(names []string) ([]Source, error) {
	sources := make([]Source, 0, len(names))

	for _, name := range names {
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		sources = append(sources, Source{Name: name, Text: string(text)})
	}

	return sources, nil
}
