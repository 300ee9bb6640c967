// Package term hosts the game on an ANSI terminal: it renders the RGB frame
// buffer with truecolor half-block characters and decodes raw terminal input
// into game key events. Both the local terminal front end and the SSH server
// run on this package.
package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gbeane/retro-game/internal/draw"
	"github.com/gbeane/retro-game/internal/object"
)

// maxChunkSize is the maximum bytes to write at once. 1400 stays under a
// typical MTU so frames flow smoothly over SSH.
const maxChunkSize = 1400

// Renderer draws a frame buffer to a terminal, packing two vertical pixels
// into each cell with the upper-half block and fg/bg colors. Output is
// accumulated per frame and flushed in chunks.
type Renderer struct {
	out    io.Writer
	buf    strings.Builder
	numBuf [20]byte // scratch for allocation-free integer formatting
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Frame renders the full frame buffer, centered in a termW×termH terminal.
// Pixels that do not fit are clipped.
func (r *Renderer) Frame(fb *draw.FrameBuffer, termW, termH int) error {
	cols := fb.Width()
	rows := fb.Height() / 2

	offCol := (termW - cols) / 2
	if offCol < 0 {
		offCol = 0
	}
	offRow := (termH - rows) / 2
	if offRow < 0 {
		offRow = 0
	}

	visCols := cols
	if termW < cols {
		visCols = termW
	}
	visRows := rows
	if termH < rows {
		visRows = termH
	}

	r.buf.Reset()
	r.buf.Grow(visCols * visRows * 8)

	for row := 0; row < visRows; row++ {
		r.moveCursor(offCol+1, offRow+row+1)

		// Track the previous cell's colors so repeated colors don't repeat
		// escape sequences.
		var fg, bg object.Color
		haveColors := false

		for col := 0; col < visCols; col++ {
			top := fb.At(col, row*2)
			bottom := fb.At(col, row*2+1)

			if !haveColors || top != fg {
				r.sgrColor(38, top)
				fg = top
			}
			if !haveColors || bottom != bg {
				r.sgrColor(48, bottom)
				bg = bottom
			}
			haveColors = true

			r.buf.WriteRune('▀')
		}
		r.buf.WriteString("\033[0m")
	}

	return r.flush()
}

// moveCursor appends an ANSI cursor position sequence (1-based).
func (r *Renderer) moveCursor(col, row int) {
	r.buf.WriteString("\033[")
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(row), 10))
	r.buf.WriteByte(';')
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(col), 10))
	r.buf.WriteByte('H')
}

// sgrColor appends a truecolor SGR sequence; plane is 38 for foreground, 48
// for background.
func (r *Renderer) sgrColor(plane int, c object.Color) {
	r.buf.WriteString("\033[")
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(plane), 10))
	r.buf.WriteString(";2;")
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(c[0]), 10))
	r.buf.WriteByte(';')
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(c[1]), 10))
	r.buf.WriteByte(';')
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(c[2]), 10))
	r.buf.WriteByte('m')
}

// flush writes the accumulated frame in MTU-sized chunks and resets the
// buffer.
func (r *Renderer) flush() error {
	data := r.buf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(r.out, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
