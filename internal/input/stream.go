package input

import (
	"bufio"
	"io"
	"sync"
	"time"
)

const esc = '\x1b'

// Stream reads raw terminal bytes on its own goroutine and presses the
// matching signals on a State.
type Stream struct {
	state  *State
	keymap Keymap
	now    func() time.Time

	done chan struct{}
	mu   sync.Mutex
	err  error
}

// StartStream spawns a goroutine that decodes r into presses on state.
// The stream ends when r returns an error (io.EOF when a session closes).
func StartStream(r io.Reader, state *State, keymap Keymap) *Stream {
	s := &Stream{
		state:  state,
		keymap: keymap,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	go s.run(br)
	return s
}

// Done is closed once the underlying reader is exhausted.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns the read error that ended the stream, nil for a clean EOF or
// while still running.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) run(br *bufio.Reader) {
	defer close(s.done)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err != io.EOF {
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}

		if b == esc {
			s.handleEscape(br)
			continue
		}
		if sig, ok := s.keymap.Lookup(b); ok {
			s.state.Press(sig, s.now())
		}
	}
}

// handleEscape decodes an escape sequence whose bytes are already buffered.
// A lone ESC (nothing buffered behind it) is the Escape key.
func (s *Stream) handleEscape(br *bufio.Reader) {
	if br.Buffered() < 2 {
		s.state.Press(s.keymap.Escape, s.now())
		return
	}
	next, _ := br.Peek(1)
	if next[0] != '[' && next[0] != 'O' {
		s.state.Press(s.keymap.Escape, s.now())
		return
	}
	_, _ = br.ReadByte()

	// CSI: parameter and intermediate bytes, then one final byte in 0x40-0x7E.
	for br.Buffered() > 0 {
		c, err := br.ReadByte()
		if err != nil {
			return
		}
		if c >= 0x40 && c <= 0x7e {
			if sig, ok := s.keymap.LookupArrow(c); ok {
				s.state.Press(sig, s.now())
			}
			return
		}
	}
}
