package asm

import "encoding/binary"

// image is the encoder's growable output buffer. It maintains the
// invariant that offset_in_image always equals the logical
// current address: a `.ORG` to a higher address pads with zero bytes rather
// than leaving a hole, so the buffer's length is always the current address.
type image struct {
	bytes []byte
}

func (im *image) Len() uint32 { return uint32(len(im.bytes)) }

// PadTo zero-fills up to addr. It is the caller's responsibility to have
// already checked addr >= im.Len().
func (im *image) PadTo(addr uint32) {
	for im.Len() < addr {
		im.bytes = append(im.bytes, 0)
	}
}

func (im *image) AppendByte(b byte) {
	im.bytes = append(im.bytes, b)
}

func (im *image) AppendBytes(b []byte) {
	im.bytes = append(im.bytes, b...)
}

// AppendWord appends a 32-bit word in little-endian order, per the binary
// output format.
func (im *image) AppendWord(w uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], w)
	im.bytes = append(im.bytes, buf[:]...)
}

// PatchWord rewrites the 32-bit word beginning at offset, in place.
func (im *image) PatchWord(offset uint32, w uint32) {
	binary.LittleEndian.PutUint32(im.bytes[offset:offset+4], w)
}

// ReadWord reads the 32-bit word beginning at offset.
func (im *image) ReadWord(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(im.bytes[offset : offset+4])
}

func (im *image) Bytes() []byte { return im.bytes }
