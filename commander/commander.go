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
package commander

import (
	"errors"
	"io/fs"

	"github.com/timburks/jote/editor"
	jote "github.com/timburks/jote/types"
)

// DefaultQuitTimes is the number of extra Ctrl-Q presses needed to quit
// with unsaved changes.
const DefaultQuitTimes = 4

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    *editor.Editor
	reporter  jote.Reporter
	running   bool
	quitTimes int // configured number of quit warnings
	remaining int // warnings left before an unsaved quit is allowed
}

func NewCommander(e *editor.Editor, quitTimes int) *Commander {
	if quitTimes < 0 {
		quitTimes = 0
	}
	return &Commander{
		editor:    e,
		reporter:  e,
		running:   true,
		quitTimes: quitTimes,
		remaining: quitTimes,
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessEvent(event *jote.Event) error {
	switch event.Type {
	case jote.EventKey:
		return c.ProcessKey(event)
	case jote.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

// ProcessResize does nothing; the next frame picks up the new size.
func (c *Commander) ProcessResize(event *jote.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *jote.Event) error {
	e := c.editor

	switch event.Key {
	case jote.KeyCtrlQ:
		if e.GetBuffer().Modified() && c.remaining > 0 {
			c.reporter.SetMessage("WARNING: There are unsaved changes in file. "+
				"Press Ctrl-Q %d more times to quit.", c.remaining)
			c.remaining--
			return nil
		}
		c.running = false
		return nil
	case jote.KeyCtrlS:
		c.Save()
	case jote.KeyArrowUp:
		e.MoveCursor(jote.MoveUp)
	case jote.KeyArrowDown:
		e.MoveCursor(jote.MoveDown)
	case jote.KeyArrowLeft:
		e.MoveCursor(jote.MoveLeft)
	case jote.KeyArrowRight:
		e.MoveCursor(jote.MoveRight)
	case jote.KeyPgup:
		e.PageUp()
	case jote.KeyPgdn:
		e.PageDown()
	case jote.KeyHome:
		e.MoveToBeginningOfLine()
	case jote.KeyEnd:
		e.MoveToEndOfLine()
	case jote.KeyEnter, jote.KeyBackspace, jote.KeyDelete, jote.KeyCtrlH:
		// editing is insert-only
	case jote.KeyCtrlL, jote.KeyEsc:
		break
	case jote.KeyTab:
		e.InsertChar('\t')
	case jote.KeySpace:
		e.InsertChar(' ')
	case jote.KeyNone:
		if event.Ch >= ' ' && event.Ch < 127 {
			e.InsertChar(byte(event.Ch))
		}
	}
	c.remaining = c.quitTimes
	return nil
}

// Save writes the document and reports the result on the message bar.
// Failures leave the document unchanged.
func (c *Commander) Save() {
	n, err := c.editor.WriteFile()
	switch {
	case errors.Is(err, editor.ErrNoFileName):
		c.reporter.SetMessage("No file name")
	case err != nil:
		c.reporter.SetMessage("Can't save! I/O error: %s", describe(err))
	default:
		c.reporter.SetMessage("%d bytes written to the file", n)
	}
}

// describe returns the operating system's text for err when there is one.
func describe(err error) string {
	var pathError *fs.PathError
	if errors.As(err, &pathError) {
		return pathError.Err.Error()
	}
	return err.Error()
}
