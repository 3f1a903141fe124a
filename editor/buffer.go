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

// A Buffer holds the rows of the document being edited.
type Buffer struct {
	rows     []*Row
	fileName string
	modified bool
	tabWidth int
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	b.tabWidth = DefaultTabWidth
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) Modified() bool {
	return b.modified
}

func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth changes the tab stop spacing and re-renders every row.
func (b *Buffer) SetTabWidth(tabWidth int) {
	b.tabWidth = validTabWidth(tabWidth)
	for _, row := range b.rows {
		row.setTabWidth(b.tabWidth)
	}
}

// LoadLines replaces the contents of the buffer and clears the modified flag.
func (b *Buffer) LoadLines(lines [][]byte) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.AppendRow(line)
	}
	b.modified = false
}

// Lines returns the text of each row.
func (b *Buffer) Lines() [][]byte {
	lines := make([][]byte, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.Text
	}
	return lines
}

func (b *Buffer) AppendRow(text []byte) {
	b.rows = append(b.rows, NewRow(text, b.tabWidth))
	b.modified = true
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns row i or nil when i is out of range.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if row := b.GetRow(i); row != nil {
		return row.Length()
	}
	return 0
}

func (b *Buffer) InsertCharacter(row, col int, c byte) {
	if r := b.GetRow(row); r != nil {
		r.InsertChar(col, c)
		b.modified = true
	}
}
