package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gbeane/retro-game/internal/draw"
	"github.com/gbeane/retro-game/internal/object"
)

func TestFrameCentersAndFills(t *testing.T) {
	fb := draw.NewFrameBuffer()
	fb.Clear(object.Color{10, 20, 30})

	var out bytes.Buffer
	r := NewRenderer(&out)
	if err := r.Frame(fb, 300, 100); err != nil {
		t.Fatal(err)
	}
	s := out.String()

	// 192x160 pixels pack into 192x80 cells, centered in 300x100.
	if !strings.Contains(s, "\033[11;55H") {
		t.Error("first row should be positioned at the centering offset")
	}
	if got, want := strings.Count(s, "▀"), fb.Width()*fb.Height()/2; got != want {
		t.Errorf("should emit %d cells, got %d", want, got)
	}
	if !strings.Contains(s, "38;2;10;20;30") {
		t.Error("output should carry the truecolor foreground")
	}
	if !strings.Contains(s, "48;2;10;20;30") {
		t.Error("output should carry the truecolor background")
	}

	// A uniform frame needs one color change per row, not per cell.
	if got := strings.Count(s, "38;2;"); got != fb.Height()/2 {
		t.Errorf("uniform rows should set the foreground once each, got %d", got)
	}
	if got, want := strings.Count(s, "\033[0m"), fb.Height()/2; got != want {
		t.Errorf("each row should end with a reset, got %d", got)
	}
}

func TestFrameClipsSmallTerminals(t *testing.T) {
	fb := draw.NewFrameBuffer()

	var out bytes.Buffer
	r := NewRenderer(&out)
	if err := r.Frame(fb, 100, 40); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "▀"); got != 100*40 {
		t.Errorf("clipped frame should emit 4000 cells, got %d", got)
	}
}

func TestCursorHelpers(t *testing.T) {
	var out bytes.Buffer
	HideCursor(&out)
	ShowCursor(&out)
	ClearScreen(&out)
	s := out.String()
	for _, seq := range []string{"\033[?25l", "\033[?25h", "\033[2J"} {
		if !strings.Contains(s, seq) {
			t.Errorf("missing escape sequence %q", seq)
		}
	}
}
