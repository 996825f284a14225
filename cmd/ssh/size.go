package main

import (
	"sync"

	"github.com/charmbracelet/ssh"

	"github.com/tomz197/arena/internal/draw"
)

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

// follow applies window changes until winCh is closed.
func (s *sizeTracker) follow(winCh <-chan ssh.Window) {
	for win := range winCh {
		s.update(win.Width, win.Height)
	}
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize

// slots caps the number of concurrent sessions.
type slots struct {
	ch chan struct{}
}

func newSlots(n int) *slots {
	if n < 1 {
		n = 1
	}
	return &slots{ch: make(chan struct{}, n)}
}

// acquire takes a slot without blocking and reports whether one was free.
func (s *slots) acquire() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *slots) release() {
	<-s.ch
}

func (s *slots) inUse() int {
	return len(s.ch)
}
