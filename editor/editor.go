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
package editor

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/timburks/jote/files"
	jote "github.com/timburks/jote/types"
)

// DefaultMessageTimeout is how long a status message stays on the message bar.
const DefaultMessageTimeout = 5 * time.Second

// The Editor manages the editing of text in a Buffer.
// Cursor.Row may equal the row count, which places the cursor on the
// virtual line after the last row.
type Editor struct {
	Cursor         jote.Point    // logical cursor position
	RenderedX      int           // rendered column of the cursor, set by Scroll
	Offset         jote.Size     // display offset
	Buffer         *Buffer       // the document being edited
	size           jote.Size     // size of editing area
	message        string        // status message
	messageTime    time.Time     // when the status message was set
	messageTimeout time.Duration // how long messages are displayed
	now            func() time.Time
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.messageTimeout = DefaultMessageTimeout
	e.now = time.Now
	return e
}

// SetClock replaces the time source used to stamp status messages.
func (e *Editor) SetClock(now func() time.Time) {
	e.now = now
}

func (e *Editor) SetTabWidth(tabWidth int) {
	e.Buffer.SetTabWidth(tabWidth)
}

func (e *Editor) SetMessageTimeout(timeout time.Duration) {
	e.messageTimeout = timeout
}

// ReadFile loads path into the buffer. A missing file leaves an empty
// document that will be created on the first save.
func (e *Editor) ReadFile(path string) error {
	lines, err := files.LoadLines(path)
	if os.IsNotExist(err) {
		log.Printf("new file %s", path)
		e.Buffer.LoadLines(nil)
	} else if err != nil {
		return err
	} else {
		e.Buffer.LoadLines(lines)
		log.Printf("read %d lines from %s", len(lines), path)
	}
	e.Buffer.SetFileName(path)
	e.Cursor = jote.Point{}
	e.Offset = jote.Size{}
	return nil
}

// WriteFile saves the buffer to its file and returns the number of bytes written.
// The modified flag is cleared only when the whole document was written.
func (e *Editor) WriteFile() (int, error) {
	path := e.Buffer.GetFileName()
	if path == "" {
		return 0, ErrNoFileName
	}
	n, err := files.SaveLines(path, e.Buffer.Lines())
	if err != nil {
		log.Printf("save %s failed: %v", path, err)
		return n, err
	}
	e.Buffer.SetModified(false)
	log.Printf("wrote %d bytes to %s", n, path)
	return n, nil
}

// ErrNoFileName is returned when saving a document that was never named.
var ErrNoFileName = errors.New("no file name")

func (e *Editor) SetSize(s jote.Size) {
	if s.Rows < 0 {
		s.Rows = 0
	}
	if s.Cols < 0 {
		s.Cols = 0
	}
	e.size = s
}

func (e *Editor) GetSize() jote.Size {
	return e.size
}

func (e *Editor) GetCursor() jote.Point {
	return e.Cursor
}

func (e *Editor) GetOffset() jote.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() *Buffer {
	return e.Buffer
}

// Scroll recomputes the rendered cursor column and adjusts the display offset
// so that the cursor is inside the editing area.
func (e *Editor) Scroll() {
	e.RenderedX = 0
	if row := e.Buffer.GetRow(e.Cursor.Row); row != nil {
		e.RenderedX = row.RenderedX(e.Cursor.Col)
	}

	// vertical
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row >= e.Offset.Rows+e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	// horizontal
	if e.RenderedX < e.Offset.Cols {
		e.Offset.Cols = e.RenderedX
	}
	if e.RenderedX >= e.Offset.Cols+e.size.Cols {
		e.Offset.Cols = e.RenderedX - e.size.Cols + 1
	}
	if e.Offset.Rows < 0 {
		e.Offset.Rows = 0
	}
	if e.Offset.Cols < 0 {
		e.Offset.Cols = 0
	}
}

func (e *Editor) MoveCursor(direction int) {
	row := e.Buffer.GetRow(e.Cursor.Row)
	switch direction {
	case jote.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// wrap to the end of the previous row
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case jote.MoveRight:
		if row != nil {
			if e.Cursor.Col < row.Length() {
				e.Cursor.Col++
			} else if e.Cursor.Col == row.Length() {
				// wrap to the start of the next row
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		}
	case jote.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case jote.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount() {
			e.Cursor.Row++
		}
	}
	e.KeepCursorInRow()
}

// KeepCursorInRow clamps the cursor to the document and to the length of its row.
func (e *Editor) KeepCursorInRow() {
	if e.Cursor.Row > e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount()
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	e.KeepCursorInRow()
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(jote.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	e.KeepCursorInRow()
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(jote.MoveDown)
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
	e.KeepCursorInRow()
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	e.KeepCursorInRow()
}

// InsertChar inserts c at the cursor. On the virtual line past the end of
// the document a new row is appended first.
func (e *Editor) InsertChar(c byte) {
	e.KeepCursorInRow()
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.AppendRow(nil)
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// SetMessage sets the status message shown on the message bar.
func (e *Editor) SetMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.now()
}

// GetMessage returns the status message if it has not expired at time now.
func (e *Editor) GetMessage(now time.Time) string {
	if e.message == "" || now.Sub(e.messageTime) >= e.messageTimeout {
		return ""
	}
	return e.message
}
