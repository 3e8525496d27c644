package gif

import "github.com/sail-go/sail/pixel"

// ReadFrame composites one pass of the current sub-frame onto the
// persistent canvas and copies the full canvas into buf. Disposal of the
// previous sub-frame is applied once, on the first pass of a new frame. The
// canvas itself is always maintained in RGBA8888 order; a BGRA8888 request
// is satisfied by a swapToBGRA pass over buf at the end of each pass, and a
// later pass of the same frame first swaps buf back to RGBA8888.
func (r *reader) ReadFrame(buf []byte) error {
	stride := r.screen.width * 4

	if r.currentImage > 0 && r.currentPass == 0 {
		for cc := r.prevRow; cc < r.prevRow+r.prevHeight; cc++ {
			if r.prevDisposal == disposeBackground {
				start := r.prevColumn * 4
				end := start + r.prevWidth*4
				clear(r.canvas[cc][start:end])
			}
			copy(buf[cc*stride:(cc+1)*stride], r.canvas[cc])
		}
	}

	if r.opts.OutputPixelFormat == pixel.BGRA8888 && r.currentPass > 0 {
		swapToBGRA(buf, r.screen.width, r.screen.height, stride)
	}

	for cc := 0; cc < r.screen.height; cc++ {
		scan := buf[cc*stride : (cc+1)*stride]

		if cc < r.row || cc >= r.row+r.height {
			if r.currentPass == 0 {
				copy(scan, r.canvas[cc])
			}
			continue
		}

		doRead := false
		if r.interlaced {
			if cc == r.row {
				r.nextInterlacedRow = interlacedOffset[r.layer] + r.row
			}
			if cc == r.nextInterlacedRow {
				doRead = true
				r.nextInterlacedRow += interlacedJumps[r.layer]
			}
		} else {
			doRead = true
		}

		if doRead {
			line := r.indices[r.rowCursor*r.width : (r.rowCursor+1)*r.width]
			r.rowCursor++

			copy(scan, r.canvas[cc])

			for i := 0; i < r.width; i++ {
				idx := int(line[i])
				if r.transparencyIndex >= 0 && idx == r.transparencyIndex {
					continue
				}

				red, green, blue := r.palette.at(idx)
				off := (r.column + i) * 4

				scan[off] = red
				scan[off+1] = green
				scan[off+2] = blue
				scan[off+3] = 255
			}
		}

		if r.currentPass == r.passes-1 {
			copy(r.canvas[cc], scan)
		}
	}

	if r.opts.OutputPixelFormat == pixel.BGRA8888 {
		swapToBGRA(buf, r.screen.width, r.screen.height, stride)
	}

	return nil
}
