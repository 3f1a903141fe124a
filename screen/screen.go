//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"fmt"
	"sync"
	"time"

	"github.com/timburks/jote/editor"
	jote "github.com/timburks/jote/types"
)

// Terminal backends
const (
	BackendTermbox = "termbox"
	BackendANSI    = "ansi"
)

// The Screen draws the state of an Editor on a Terminal.
type Screen struct {
	terminal jote.Terminal
	size     jote.Size // screen size
	now      func() time.Time

	closeOnce sync.Once
	closeErr  error
}

// NewScreen opens the terminal using the named backend.
func NewScreen(backend string) (*Screen, error) {
	var t jote.Terminal
	var err error
	switch backend {
	case BackendTermbox, "":
		t, err = newTermboxTerminal()
	case BackendANSI:
		t, err = newANSITerminal()
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return NewScreenWithTerminal(t), nil
}

func NewScreenWithTerminal(t jote.Terminal) *Screen {
	return &Screen{terminal: t, now: time.Now}
}

// SetClock replaces the time source used to expire status messages.
func (s *Screen) SetClock(now func() time.Time) {
	s.now = now
}

// Close restores the terminal. It is safe to call more than once and from
// more than one goroutine; only the first call reaches the terminal.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.terminal.Close()
	})
	return s.closeErr
}

func (s *Screen) GetSize() jote.Size {
	return s.size
}

// Render scrolls the editor for the current terminal size and writes one frame.
func (s *Screen) Render(e *editor.Editor) error {
	screenSize, err := s.terminal.Size()
	if err != nil {
		return err
	}
	s.size = screenSize

	// reserve the last two rows for the status and message bars
	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	return s.terminal.WriteFrame(Compose(e, s.now()))
}

func (s *Screen) GetNextEvent() (*jote.Event, error) {
	return s.terminal.ReadEvent()
}
