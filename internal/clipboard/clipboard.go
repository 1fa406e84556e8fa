// Package clipboard writes picked colors to the system clipboard.
package clipboard

import (
	"errors"
	"log"
	"sync"
	"time"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

var ErrUnavailable = errors.New("clipboard: no clipboard backend available")

// Clipboard prefers golang.design/x/clipboard, which keeps ownership of the
// selection and can tell when another program replaces it. When that backend
// cannot start (no cgo, no display) it falls back to atotto/clipboard, which
// shells out to xclip/xsel/wl-copy/pbcopy.
type Clipboard struct {
	initOnce sync.Once
	nativeOK bool

	mu      sync.Mutex
	changed <-chan struct{}

	// overridable in tests
	initNative  func() error
	writeNative func(b []byte) <-chan struct{}
	writeTool   func(s string) error
	toolMissing func() bool
}

func New() *Clipboard {
	return &Clipboard{
		initNative: clipboard.Init,
		writeNative: func(b []byte) <-chan struct{} {
			return clipboard.Write(clipboard.FmtText, b)
		},
		writeTool:   atotto.WriteAll,
		toolMissing: func() bool { return atotto.Unsupported },
	}
}

// WriteText puts s on the clipboard.
func (c *Clipboard) WriteText(s string) error {
	c.initOnce.Do(func() {
		if err := c.initNative(); err != nil {
			log.Printf("clipboard: native backend unavailable: %v; using external tool", err)
			return
		}
		c.nativeOK = true
	})

	if c.nativeOK {
		ch := c.writeNative([]byte(s))
		c.mu.Lock()
		c.changed = ch
		c.mu.Unlock()
		return nil
	}
	if c.toolMissing() {
		return ErrUnavailable
	}
	return c.writeTool(s)
}

// Hold blocks until another program takes the clipboard over or limit elapses.
// On X11 the selection dies with its owner, so the process lingers briefly
// after writing. It returns immediately when the fallback backend was used.
func (c *Clipboard) Hold(limit time.Duration) {
	c.mu.Lock()
	ch := c.changed
	c.mu.Unlock()
	if ch == nil || limit <= 0 {
		return
	}
	timer := time.NewTimer(limit)
	defer timer.Stop()
	select {
	case <-ch:
	case <-timer.C:
	}
}
