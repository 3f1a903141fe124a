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

	jote "github.com/timburks/jote/types"
)

const escape = 0x1b

// Escape sequences sent by terminals for special keys, without the leading ESC.
var escapeSequences = map[string]jote.Key{
	"[A":  jote.KeyArrowUp,
	"[B":  jote.KeyArrowDown,
	"[C":  jote.KeyArrowRight,
	"[D":  jote.KeyArrowLeft,
	"[H":  jote.KeyHome,
	"[F":  jote.KeyEnd,
	"OH":  jote.KeyHome,
	"OF":  jote.KeyEnd,
	"[1~": jote.KeyHome,
	"[3~": jote.KeyDelete,
	"[4~": jote.KeyEnd,
	"[5~": jote.KeyPgup,
	"[6~": jote.KeyPgdn,
	"[7~": jote.KeyHome,
	"[8~": jote.KeyEnd,
}

// escapePrefixes holds every proper prefix of the known sequences.
var escapePrefixes = map[string]bool{}

func init() {
	for sequence := range escapeSequences {
		for i := 1; i < len(sequence); i++ {
			escapePrefixes[sequence[:i]] = true
		}
	}
}

// decodeKey reads one keypress from r. Bytes of an escape sequence are
// expected to arrive together; a lone ESC, or a sequence that matches no
// known key, is reported as KeyEsc and consumed whole.
func decodeKey(r *bufio.Reader) (*jote.Event, error) {
	c, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if c != escape {
		return byteEvent(c), nil
	}
	sequence := make([]byte, 0, 3)
	for r.Buffered() > 0 {
		next, err := r.ReadByte()
		if err != nil {
			break
		}
		sequence = append(sequence, next)
		if key, ok := escapeSequences[string(sequence)]; ok {
			return keyEvent(key), nil
		}
		if !escapePrefixes[string(sequence)] {
			break
		}
	}
	if len(sequence) > 0 && sequence[0] == '[' {
		skipControlSequence(r, sequence[1:])
	}
	return keyEvent(jote.KeyEsc), nil
}

// skipControlSequence discards the rest of an unknown CSI sequence, up to
// and including its final byte, so that none of it is read as text.
func skipControlSequence(r *bufio.Reader, read []byte) {
	if len(read) > 0 && isFinalByte(read[len(read)-1]) {
		return
	}
	for r.Buffered() > 0 {
		c, err := r.ReadByte()
		if err != nil || isFinalByte(c) {
			return
		}
	}
}

func isFinalByte(c byte) bool {
	return c >= 0x40 && c <= 0x7e
}

func keyEvent(key jote.Key) *jote.Event {
	return &jote.Event{Type: jote.EventKey, Key: key}
}

func byteEvent(c byte) *jote.Event {
	switch {
	case c == '\r':
		return keyEvent(jote.KeyEnter)
	case c == '\t':
		return keyEvent(jote.KeyTab)
	case c == ' ':
		return keyEvent(jote.KeySpace)
	case c == 127:
		return keyEvent(jote.KeyBackspace)
	case c >= 1 && c <= 26:
		return keyEvent(jote.CtrlKey('a' + c - 1))
	case c < 32:
		return keyEvent(jote.KeyUnsupported)
	default:
		return &jote.Event{Type: jote.EventKey, Ch: rune(c)}
	}
}
