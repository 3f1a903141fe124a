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

// DefaultTabWidth is the tab stop spacing used when none is configured.
const DefaultTabWidth = 4

// A row of text in the editor.
// Render is Text with tabs expanded and is rebuilt whenever Text changes.
type Row struct {
	Text     []byte
	Render   []byte
	tabWidth int
}

func NewRow(text []byte, tabWidth int) *Row {
	r := &Row{tabWidth: validTabWidth(tabWidth)}
	r.setText(append([]byte(nil), text...))
	return r
}

func validTabWidth(tabWidth int) int {
	if tabWidth < 1 {
		return DefaultTabWidth
	}
	return tabWidth
}

// advance returns the rendered column that follows a character drawn at col.
func advance(col int, c byte, tabWidth int) int {
	if c == '\t' {
		return col + tabWidth - col%tabWidth
	}
	return col + 1
}

// RenderedX converts a logical column in text to its rendered column.
// Columns past the end of text are treated as the end of text.
func RenderedX(text []byte, cursorX int, tabWidth int) int {
	tabWidth = validTabWidth(tabWidth)
	if cursorX > len(text) {
		cursorX = len(text)
	}
	rx := 0
	for i := 0; i < cursorX; i++ {
		rx = advance(rx, text[i], tabWidth)
	}
	return rx
}

func (r *Row) setText(text []byte) {
	r.Text = text
	r.update()
}

// update rebuilds Render from Text.
func (r *Row) update() {
	render := make([]byte, 0, len(r.Text))
	for _, c := range r.Text {
		next := advance(len(render), c, r.tabWidth)
		if c == '\t' {
			for len(render) < next {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.Render = render
}

func (r *Row) setTabWidth(tabWidth int) {
	r.tabWidth = validTabWidth(tabWidth)
	r.update()
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) RenderLength() int {
	return len(r.Render)
}

// RenderedX returns the rendered column of logical column col.
func (r *Row) RenderedX(col int) int {
	return RenderedX(r.Text, col, r.tabWidth)
}

// InsertChar inserts c before col; out of range columns append.
func (r *Row) InsertChar(col int, c byte) {
	if col < 0 || col > len(r.Text) {
		col = len(r.Text)
	}
	line := make([]byte, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// Slice returns up to width rendered bytes starting at rendered column offset.
func (r *Row) Slice(offset, width int) []byte {
	if offset < 0 {
		offset = 0
	}
	length := len(r.Render) - offset
	if length < 0 {
		length = 0
	}
	if length > width {
		length = width
	}
	if length <= 0 {
		return nil
	}
	return r.Render[offset : offset+length]
}
