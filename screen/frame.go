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
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/timburks/jote/editor"
)

// Escape sequences used to build frames.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	homeCursor  = "\x1b[H"
	clearToEOL  = "\x1b[K"
	inverseMode = "\x1b[7m"
	defaultMode = "\x1b[m"
	newLine     = "\r\n"
)

const maxFileNameLength = 20

//go:embed VERSION
var embeddedVersion string

// Version returns the editor version shown in the welcome banner.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Compose builds one complete frame for the editor. The editor should have
// been scrolled for its current size before this is called.
func Compose(e *editor.Editor, now time.Time) []byte {
	var frame bytes.Buffer
	frame.WriteString(hideCursor)
	frame.WriteString(homeCursor)

	drawRows(&frame, e)
	drawStatusBar(&frame, e)
	drawMessageBar(&frame, e, now)

	cursor := e.GetCursor()
	offset := e.GetOffset()
	fmt.Fprintf(&frame, "\x1b[%d;%dH",
		cursor.Row-offset.Rows+1,
		e.RenderedX-offset.Cols+1)
	frame.WriteString(showCursor)
	return frame.Bytes()
}

func drawRows(frame *bytes.Buffer, e *editor.Editor) {
	b := e.GetBuffer()
	size := e.GetSize()
	offset := e.GetOffset()
	for y := 0; y < size.Rows; y++ {
		fileRow := y + offset.Rows
		if row := b.GetRow(fileRow); row != nil {
			frame.Write(row.Slice(offset.Cols, size.Cols))
		} else if b.GetRowCount() == 0 && y == size.Rows/2 {
			drawWelcome(frame, size.Cols)
		} else if size.Cols > 0 {
			frame.WriteString("~")
		}
		frame.WriteString(clearToEOL)
		frame.WriteString(newLine)
	}
}

// drawWelcome centers the banner on a line that starts with the filler glyph.
func drawWelcome(frame *bytes.Buffer, cols int) {
	if cols < 1 {
		return
	}
	welcome := fmt.Sprintf("Welcome to JoTE Editor ==> Version: %s", Version())
	if len(welcome) > cols-1 {
		welcome = welcome[:cols-1]
	}
	frame.WriteString("~")
	for padding := (cols-len(welcome))/2 - 1; padding > 0; padding-- {
		frame.WriteString(" ")
	}
	frame.WriteString(welcome)
}

// statusText returns the left and right parts of the status bar.
func statusText(e *editor.Editor) (string, string) {
	b := e.GetBuffer()
	name := b.GetFileName()
	if name == "" {
		name = "<New File>"
	}
	if len(name) > maxFileNameLength {
		name = name[:maxFileNameLength]
	}
	modified := ""
	if b.Modified() {
		modified = "(modified)"
	}
	cursor := e.GetCursor()
	left := fmt.Sprintf("%s - %d lines %s", name, b.GetRowCount(), modified)
	right := fmt.Sprintf("(%d,%d)", cursor.Col+1, cursor.Row+1)
	return left, right
}

// drawStatusBar draws the status bar in inverse video. The right part is
// drawn only if it exactly fills the space remaining after the left part.
func drawStatusBar(frame *bytes.Buffer, e *editor.Editor) {
	cols := e.GetSize().Cols
	left, right := statusText(e)
	if len(left) > cols {
		left = left[:cols]
	}
	frame.WriteString(inverseMode)
	frame.WriteString(left)
	for length := len(left); length < cols; length++ {
		if cols-length == len(right) {
			frame.WriteString(right)
			break
		}
		frame.WriteString(" ")
	}
	frame.WriteString(defaultMode)
	frame.WriteString(newLine)
}

func drawMessageBar(frame *bytes.Buffer, e *editor.Editor, now time.Time) {
	frame.WriteString(clearToEOL)
	message := e.GetMessage(now)
	cols := e.GetSize().Cols
	if len(message) > cols {
		message = message[:cols]
	}
	frame.WriteString(message)
}
