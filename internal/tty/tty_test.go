// Package tty_test tries to test ttys.
//
// When stdin is not a terminal the test checks that Open reports ErrNoTTY. Notably, this
// includes when run with "go test" because it redirects tests' standard input/output streams.
// When stdin is a real terminal the test is skipped; build a test binary and run it directly to
// reach that case:
//
//	$ go test -c && ./tty.test
package tty_test

import (
	"errors"
	"os"
	"testing"

	"github.com/itworks99/vtx1/internal/tty"
)

func TestOpenRequiresTTY(t *testing.T) {
	r, err := tty.Open(os.Stdin)
	if err == nil {
		defer r.Restore()
		t.Skip("stdin is a real terminal; raw-mode behavior exercised manually")
	}

	if !errors.Is(err, tty.ErrNoTTY) {
		t.Fatalf("Open: want ErrNoTTY, got %v", err)
	}
}
