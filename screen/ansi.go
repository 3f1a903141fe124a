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
	"bufio"
	"errors"
	"fmt"
	"os"

	jote "github.com/timburks/jote/types"
	"golang.org/x/term"
)

// ansiTerminal puts the controlling terminal into raw mode itself and
// decodes escape sequences with decodeKey.
type ansiTerminal struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader
	state  *term.State
}

func newANSITerminal() (*ansiTerminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("not running in a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return &ansiTerminal{
		in:     os.Stdin,
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		state:  state,
	}, nil
}

func (t *ansiTerminal) Size() (jote.Size, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return jote.Size{}, fmt.Errorf("getting terminal size: %w", err)
	}
	return jote.Size{Rows: rows, Cols: cols}, nil
}

func (t *ansiTerminal) ReadEvent() (*jote.Event, error) {
	return decodeKey(t.reader)
}

func (t *ansiTerminal) WriteFrame(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

// Close clears the screen and restores the original terminal mode.
func (t *ansiTerminal) Close() error {
	if t.state == nil {
		return nil
	}
	t.out.WriteString("\x1b[2J")
	t.out.WriteString(homeCursor)
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}
