package term

import (
	"io"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only deliver discrete repeats, so a short window bridges the
// gaps between autorepeat events.
const keyHoldDuration = 150 * time.Millisecond

// Keys is the decoded input state for one frame.
type Keys struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Fire  bool
	Any   bool // any byte arrived this poll
}

// Stream reads raw terminal bytes on a background goroutine and decodes
// them on demand. Poll never blocks.
type Stream struct {
	ch    chan byte
	carry []byte // incomplete escape sequence held over from the last poll
	quit  time.Time
	left  time.Time
	rght  time.Time
	up    time.Time
}

// StartStream begins reading from r. The goroutine exits when r returns an
// error, typically on EOF or session close.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for i := 0; i < n; i++ {
				select {
				case s.ch <- buf[i]:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Poll drains pending input and returns the key state for this frame.
// Held keys (rotation, thrust, quit) stay active for keyHoldDuration after
// their last byte; fire and the any-key flag report only fresh bytes.
func (s *Stream) Poll() Keys {
	now := time.Now()

	buf := s.carry
	carried := len(buf)
	s.carry = nil
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.quit = now
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys := Keys{Any: len(buf) > carried}
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			if i+1 >= len(buf) || (buf[i+1] == '[' && i+2 >= len(buf)) {
				// Possible sequence torn mid-read; hold the tail for the
				// next poll.
				s.carry = append(s.carry, buf[i:]...)
				break
			}
			// The byte after a real CSI prefix arrives in the same batch,
			// so an ESC followed by anything but '[' is a bare ESC press.
			if buf[i+1] != '[' {
				continue
			}
			switch buf[i+2] {
			case 'A':
				s.up = now
			case 'C':
				s.rght = now
			case 'D':
				s.left = now
			}
			i += 2
			continue
		}
		switch b {
		case 'q', 'Q', 0x03: // ctrl-c
			s.quit = now
		case 'a', 'A':
			s.left = now
		case 'd', 'D':
			s.rght = now
		case 'w', 'W':
			s.up = now
		case ' ':
			keys.Fire = true
		}
	}

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	keys.Quit = keys.Quit || held(s.quit)
	keys.Left = held(s.left)
	keys.Right = held(s.rght)
	keys.Up = held(s.up)
	return keys
}
