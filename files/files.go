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

// Package files reads and writes documents as newline-terminated lines.
package files

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// LoadLines reads the file at path and returns its lines with any trailing
// newline and carriage return characters removed.
func LoadLines(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadLines(file)
}

// ReadLines splits r into lines the way LoadLines does.
func ReadLines(r io.Reader) ([][]byte, error) {
	reader := bufio.NewReader(r)
	lines := make([][]byte, 0)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, trimLineEnding(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func trimLineEnding(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// Join returns lines as file contents, each line followed by a single newline.
func Join(lines [][]byte) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// SaveLines writes lines to path, creating the file if needed, and returns the
// number of bytes written.
func SaveLines(path string, lines [][]byte) (int, error) {
	contents := Join(lines)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	if err = file.Truncate(int64(len(contents))); err != nil {
		return 0, err
	}
	n, err := file.Write(contents)
	if err != nil {
		return n, err
	}
	if n != len(contents) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
