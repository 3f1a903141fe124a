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
package files

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLinesStripsLineEndings(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("one\r\ntwo\n\nthree"))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	expected := []string{"one", "two", "", "three"}
	if len(lines) != len(expected) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(expected))
	}
	for i, line := range lines {
		if string(line) != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, line, expected[i])
		}
	}
}

func TestReadLinesEmpty(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines from an empty file", len(lines))
	}
}

func TestSaveNormalizesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\nc"), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines failed: %v", err)
	}
	n, err := SaveLines(path, lines)
	if err != nil {
		t.Fatalf("SaveLines failed: %v", err)
	}
	if n != 6 {
		t.Errorf("wrote %d bytes, expected 6", n)
	}
	actual, _ := os.ReadFile(path)
	if !bytes.Equal(actual, []byte("a\nb\nc\n")) {
		t.Errorf("saved %q", actual)
	}
}

func TestSaveTruncatesLongerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 100)), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := SaveLines(path, [][]byte{[]byte("short")}); err != nil {
		t.Fatalf("SaveLines failed: %v", err)
	}
	actual, _ := os.ReadFile(path)
	if string(actual) != "short\n" {
		t.Errorf("saved %q", actual)
	}
}

func TestSaveToDirectoryFails(t *testing.T) {
	n, err := SaveLines(t.TempDir(), [][]byte{[]byte("text")})
	if err == nil {
		t.Errorf("saving to a directory should fail")
	}
	if n != 0 {
		t.Errorf("wrote %d bytes to a directory", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
