package encoding_test

import (
	"testing"

	"github.com/itworks99/vtx1/internal/encoding"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	image := make([]byte, 40)
	for i := range image {
		image[i] = byte(i)
	}

	text, err := encoding.MarshalImage(0x1000, image)
	if err != nil {
		t.Fatalf("MarshalImage: %s", err)
	}

	got, err := encoding.UnmarshalImage(text)
	if err != nil {
		t.Fatalf("UnmarshalImage: %s", err)
	}

	want := make([]byte, 0x1000+len(image))
	copy(want[0x1000:], image)

	if len(got) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestMarshalEmptyImage(t *testing.T) {
	text, err := encoding.MarshalImage(0, nil)
	if err != nil {
		t.Fatalf("MarshalImage: %s", err)
	}

	got, err := encoding.UnmarshalImage(text)
	if err != nil {
		t.Fatalf("UnmarshalImage: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d bytes, want 0", len(got))
	}
}

func TestUnmarshalRejectsMissingColon(t *testing.T) {
	_, err := encoding.UnmarshalImage([]byte("not a hex record\n"))
	if err == nil {
		t.Fatalf("expected an error for a malformed record")
	}
}
