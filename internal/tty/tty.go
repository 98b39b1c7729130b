// Package tty provides raw-mode terminal input for the CLI's -watch mode,
// which re-runs an assembly on every keypress.
package tty

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNoTTY is returned if standard input is not a terminal; -watch mode is
// not supported in that case.
var ErrNoTTY = errors.New("tty: stdin is not a terminal")

// KeyReader delivers raw keypresses from a terminal put into non-canonical
// mode, one byte at a time, until its context is cancelled.
type KeyReader struct {
	in    *os.File
	fd    int
	state *term.State
	keyCh chan byte
}

// Open puts sin into raw mode. Keypresses are delivered on Keys() once Run
// is running. Callers must call Restore when done to return the terminal to
// its original state.
func Open(sin *os.File) (*KeyReader, error) {
	fd := int(sin.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTTY, err)
	}

	r := &KeyReader{
		fd:    fd,
		in:    sin,
		state: saved,
		keyCh: make(chan byte, 1),
	}

	if err := r.setTerminalParams(1, 0); err != nil {
		_ = term.Restore(fd, saved)
		return nil, err
	}

	return r, nil
}

// Keys returns the channel keypresses are delivered on.
func (r *KeyReader) Keys() <-chan byte { return r.keyCh }

// Run reads keypresses until ctx is cancelled or the stream ends. It is
// meant to run in its own goroutine; Keys() delivers its output.
func (r *KeyReader) Run(ctx context.Context) {
	_ = syscall.SetNonblock(r.fd, false)

	buf := bufio.NewReader(r.in)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b, err := buf.ReadByte()
		if err != nil {
			return
		}

		select {
		case r.keyCh <- b:
		case <-ctx.Done():
			return
		}
	}
}

// Restore returns the terminal to its state before Open and unblocks any
// in-flight read.
func (r *KeyReader) Restore() {
	_ = r.in.SetReadDeadline(time.Now())
	_ = term.Restore(r.fd, r.state)
}

func (r *KeyReader) setTerminalParams(vmin, vtime byte) error {
	_ = syscall.SetNonblock(r.fd, true)

	termIO, err := unix.IoctlGetTermios(r.fd, getTermiosIoctl)
	if err != nil {
		return err
	}

	termIO.Cc[unix.VMIN] = vmin
	termIO.Cc[unix.VTIME] = vtime

	if err := unix.IoctlSetTermios(r.fd, setTermiosIoctl, termIO); err != nil {
		return err
	}

	_ = r.in.SetReadDeadline(time.Time{})

	return nil
}
