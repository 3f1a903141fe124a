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
	"errors"
	"io"
	"os"

	"github.com/nsf/termbox-go"
	jote "github.com/timburks/jote/types"
)

// termboxTerminal uses termbox for terminal setup and input. Frames are
// written directly to the terminal rather than through termbox cells.
type termboxTerminal struct {
	out io.Writer
}

func newTermboxTerminal() (*termboxTerminal, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &termboxTerminal{out: os.Stdout}, nil
}

func (t *termboxTerminal) Size() (jote.Size, error) {
	cols, rows := termbox.Size()
	if cols <= 0 || rows <= 0 {
		return jote.Size{}, errors.New("unable to get terminal size")
	}
	return jote.Size{Rows: rows, Cols: cols}, nil
}

func (t *termboxTerminal) ReadEvent() (*jote.Event, error) {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			if event.Key == 0 && event.Ch != 0 {
				return &jote.Event{Type: jote.EventKey, Ch: event.Ch}, nil
			}
			return &jote.Event{Type: jote.EventKey, Key: key(event.Key)}, nil
		case termbox.EventResize:
			return &jote.Event{Type: jote.EventResize}, nil
		case termbox.EventError:
			return nil, event.Err
		}
	}
}

func (t *termboxTerminal) WriteFrame(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

func (t *termboxTerminal) Close() error {
	termbox.Close()
	return nil
}

func key(k termbox.Key) jote.Key {
	switch k {
	case termbox.KeyArrowDown:
		return jote.KeyArrowDown
	case termbox.KeyArrowLeft:
		return jote.KeyArrowLeft
	case termbox.KeyArrowRight:
		return jote.KeyArrowRight
	case termbox.KeyArrowUp:
		return jote.KeyArrowUp
	case termbox.KeyPgdn:
		return jote.KeyPgdn
	case termbox.KeyPgup:
		return jote.KeyPgup
	case termbox.KeyHome:
		return jote.KeyHome
	case termbox.KeyEnd:
		return jote.KeyEnd
	case termbox.KeyDelete:
		return jote.KeyDelete
	case termbox.KeyBackspace2:
		return jote.KeyBackspace
	case termbox.KeyEnter:
		return jote.KeyEnter
	case termbox.KeyTab:
		return jote.KeyTab
	case termbox.KeyEsc:
		return jote.KeyEsc
	case termbox.KeySpace:
		return jote.KeySpace
	}
	// the remaining control chords share their codes with Ctrl-A..Ctrl-Z
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return jote.KeyCtrlA + jote.Key(k-termbox.KeyCtrlA)
	}
	return jote.KeyUnsupported
}
