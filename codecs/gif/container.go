package gif

import (
	"bytes"
	"compress/lzw"
	"io"

	"github.com/sail-go/sail/sailerr"
)

const (
	extensionIntroducer   = 0x21
	imageDescriptorLabel  = 0x2C
	trailerLabel          = 0x3B
	graphicControlLabel   = 0xF9
	commentExtensionLabel = 0xFE
	applicationExtLabel   = 0xFF
	blockTerminator       = 0x00
)

var magic87a = []byte("GIF87a")
var magic89a = []byte("GIF89a")

// colorTable is a flat RGB color table, 3 bytes per entry.
type colorTable []byte

func (c colorTable) at(index int) (r, g, b byte) {
	off := index * 3
	if off+2 >= len(c) {
		return 0, 0, 0
	}
	return c[off], c[off+1], c[off+2]
}

func (c colorTable) size() int { return len(c) / 3 }

// logicalScreen is the GIF header's logical screen descriptor.
type logicalScreen struct {
	width, height    int
	globalColorTable colorTable
	backgroundIndex  int
}

func readHeaderAndLogicalScreen(r *byteReader) (*logicalScreen, error) {
	sig, err := r.readN(6)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(sig, magic87a) && !bytes.Equal(sig, magic89a) {
		return nil, sailerr.New(sailerr.UnderlyingCodec, "gif.read_header")
	}

	width, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	height, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	packed, err := r.readByte()
	if err != nil {
		return nil, err
	}
	bgIndex, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if _, err := r.readByte(); err != nil { // pixel aspect ratio, unused
		return nil, err
	}

	ls := &logicalScreen{
		width:           int(width),
		height:          int(height),
		backgroundIndex: int(bgIndex),
	}

	if packed&0x80 != 0 {
		size := 1 << ((packed & 0x07) + 1)
		table, err := r.readN(size * 3)
		if err != nil {
			return nil, err
		}
		ls.globalColorTable = table
	}

	return ls, nil
}

// graphicControl carries the fields of one Graphic Control Extension.
type graphicControl struct {
	disposal              int
	delayCentiseconds     int
	transparentColorSet   bool
	transparentColorIndex int
}

func parseGraphicControl(payload []byte) graphicControl {
	var gc graphicControl
	if len(payload) < 4 {
		return gc
	}
	packed := payload[0]
	gc.disposal = int(packed>>2) & 0x07
	gc.delayCentiseconds = int(payload[1]) | int(payload[2])<<8
	if packed&0x01 != 0 {
		gc.transparentColorSet = true
		gc.transparentColorIndex = int(payload[3])
	}
	return gc
}

// imageDescriptor is the fixed part of an Image Descriptor block, before
// its optional local color table and LZW-compressed pixel data.
type imageDescriptor struct {
	left, top, width, height int
	interlaced               bool
	localColorTable          colorTable
}

func readImageDescriptor(r *byteReader) (*imageDescriptor, error) {
	left, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	top, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	width, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	height, err := r.readUint16LE()
	if err != nil {
		return nil, err
	}
	packed, err := r.readByte()
	if err != nil {
		return nil, err
	}

	id := &imageDescriptor{
		left: int(left), top: int(top), width: int(width), height: int(height),
		interlaced: packed&0x40 != 0,
	}

	if packed&0x80 != 0 {
		size := 1 << ((packed & 0x07) + 1)
		table, err := r.readN(size * 3)
		if err != nil {
			return nil, err
		}
		id.localColorTable = table
	}

	return id, nil
}

// decodeIndices reads the LZW minimum code size byte followed by the data
// sub-blocks, and returns one index byte per pixel, in stream order (i.e.
// interlaced row order when the sub-frame is interlaced — the caller maps
// stream position to canvas row via interlacedOffset/interlacedJumps).
func decodeIndices(r *byteReader, width, height int) ([]byte, error) {
	minCodeSize, err := r.readByte()
	if err != nil {
		return nil, err
	}
	raw, err := r.readDataSubBlocks()
	if err != nil {
		return nil, err
	}

	lr := lzw.NewReader(bytes.NewReader(raw), lzw.LSB, int(minCodeSize))
	defer lr.Close()

	out := make([]byte, width*height)
	if _, err := io.ReadFull(lr, out); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.decode_indices", err)
	}
	return out, nil
}
