package gif

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailerr"
)

const (
	disposeUnspecified = iota
	disposeDoNotDispose
	disposeBackground
	disposePrevious
)

var interlacedOffset = [4]int{0, 4, 2, 1}
var interlacedJumps = [4]int{8, 8, 4, 2}

// reader implements codec.Reader for the GIF exemplar codec. It mirrors a
// persistent RGBA canvas across frames, compositing each GIF sub-frame onto
// it per the frame's disposal method.
type reader struct {
	br     *byteReader
	opts   *codec.ReadOptions
	screen *logicalScreen

	canvas [][]byte // one row of screen.width*4 bytes per canvas row

	currentImage int

	disposal, prevDisposal                     int
	row, column, width, height                 int
	prevRow, prevColumn, prevWidth, prevHeight int
	transparencyIndex                          int // -1 when not set

	palette           colorTable
	interlaced        bool
	passes            int
	layer             int
	currentPass       int
	nextInterlacedRow int

	indices   []byte
	rowCursor int

	finished bool
}

// newReader constructs an uninitialized GIF reader. Call Init to bind it to
// a stream.
func newReader() *reader {
	return &reader{transparencyIndex: -1, layer: -1, currentPass: -1}
}

func (r *reader) Init(s iostream.Stream, opts *codec.ReadOptions) error {
	if opts.OutputPixelFormat != pixel.RGBA8888 && opts.OutputPixelFormat != pixel.BGRA8888 {
		return sailerr.New(sailerr.UnsupportedPixelFormat, "gif.read_init")
	}
	r.opts = opts
	r.br = &byteReader{s: s}

	screen, err := readHeaderAndLogicalScreen(r.br)
	if err != nil {
		return sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_init", err)
	}
	r.screen = screen

	r.canvas = make([][]byte, screen.height)
	for i := range r.canvas {
		r.canvas[i] = make([]byte, screen.width*4)
	}

	r.currentImage = -1
	r.disposal = disposeUnspecified
	r.prevDisposal = disposeUnspecified
	return nil
}

// SeekNextFrame scans records until the next Image Descriptor, accumulating
// Graphic Control Extension and metadata state along the way, per the
// ordering GIF actually stores them in (extensions precede the image
// descriptor they apply to).
func (r *reader) SeekNextFrame() (*pixel.Header, error) {
	r.currentImage++

	r.prevDisposal = r.disposal
	r.disposal = disposeUnspecified
	r.transparencyIndex = -1

	r.prevRow, r.prevColumn = r.row, r.column
	r.prevWidth, r.prevHeight = r.width, r.height

	var delayMs int
	var meta *pixel.MetaChain

	for {
		blockType, err := r.br.readByte()
		if err != nil {
			return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
		}

		switch blockType {
		case extensionIntroducer:
			label, err := r.br.readByte()
			if err != nil {
				return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
			}

			switch label {
			case graphicControlLabel:
				payload, err := r.br.readDataSubBlocks()
				if err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
				gc := parseGraphicControl(payload)
				r.disposal = gc.disposal
				if gc.delayCentiseconds == 0 {
					delayMs = 100
				} else {
					delayMs = gc.delayCentiseconds * 10
				}
				if gc.transparentColorSet {
					r.transparencyIndex = gc.transparentColorIndex
				}
			case commentExtensionLabel:
				payload, err := r.br.readDataSubBlocks()
				if err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
				if r.opts.IOOptions&codec.MetaData != 0 {
					if meta == nil {
						meta = &pixel.MetaChain{}
					}
					appendCommentNode(meta, payload)
				}
			case applicationExtLabel:
				idSize, err := r.br.readByte()
				if err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
				appID, err := r.br.readN(int(idSize))
				if err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
				appData, err := r.br.readDataSubBlocks()
				if err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
				if r.opts.IOOptions&codec.MetaData != 0 {
					if meta == nil {
						meta = &pixel.MetaChain{}
					}
					meta.Append(pixel.NewUnknownDataNode(string(appID), appData))
				}
			default:
				if err := r.br.skipDataSubBlocks(); err != nil {
					return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
				}
			}

		case imageDescriptorLabel:
			id, err := readImageDescriptor(r.br)
			if err != nil {
				return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
			}

			r.row, r.column, r.width, r.height = id.top, id.left, id.width, id.height

			if r.column+r.width > r.screen.width || r.row+r.height > r.screen.height {
				return nil, sailerr.New(sailerr.IncorrectImageDimensions, "gif.read_seek_next_frame")
			}

			r.palette = id.localColorTable
			if r.palette == nil {
				r.palette = r.screen.globalColorTable
			}
			if r.palette == nil {
				return nil, sailerr.New(sailerr.MissingPalette, "gif.read_seek_next_frame")
			}

			r.interlaced = id.interlaced
			r.passes = 1
			if r.interlaced {
				r.passes = 4
			}

			indices, err := decodeIndices(r.br, r.width, r.height)
			if err != nil {
				return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read_seek_next_frame", err)
			}
			r.indices = indices
			r.rowCursor = 0
			r.layer = -1
			r.currentPass = -1

			outFormat := r.opts.OutputPixelFormat
			hdr := &pixel.Header{
				Width:        r.screen.width,
				Height:       r.screen.height,
				BytesPerLine: pixel.BytesPerLine(r.screen.width, outFormat),
				PixelFormat:  outFormat,
				Passes:       r.passes,
				Animated:     r.currentImage > 0,
				DelayMs:      delayMs,
				Meta:         meta,
				Source: pixel.SourceImage{
					Compression: pixel.CompressionLZW,
					PixelFormat: pixel.Indexed8,
				},
			}
			if r.interlaced {
				hdr.Props |= pixel.Interlaced
				hdr.Source.Properties |= pixel.Interlaced
			}
			return hdr, nil

		case trailerLabel:
			return nil, sailerr.ErrNoMoreFrames

		default:
			// Unknown top-level record; nothing more can be salvaged.
			return nil, sailerr.New(sailerr.UnderlyingCodec, "gif.read_seek_next_frame")
		}
	}
}

func (r *reader) SeekNextPass() error {
	r.layer++
	r.currentPass++
	return nil
}

func (r *reader) Finish() error {
	if r.finished {
		return sailerr.New(sailerr.StateError, "gif.read_finish")
	}
	r.finished = true
	return nil
}
