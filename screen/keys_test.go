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
	"io"
	"strings"
	"testing"

	jote "github.com/timburks/jote/types"
)

func decodeAll(t *testing.T, input string) []*jote.Event {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(input))
	events := make([]*jote.Event, 0)
	for {
		event, err := decodeKey(r)
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("decodeKey failed: %v", err)
		}
		events = append(events, event)
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	cases := []struct {
		input string
		key   jote.Key
	}{
		{"\x1b[A", jote.KeyArrowUp},
		{"\x1b[B", jote.KeyArrowDown},
		{"\x1b[C", jote.KeyArrowRight},
		{"\x1b[D", jote.KeyArrowLeft},
		{"\x1b[H", jote.KeyHome},
		{"\x1bOH", jote.KeyHome},
		{"\x1b[1~", jote.KeyHome},
		{"\x1b[7~", jote.KeyHome},
		{"\x1b[F", jote.KeyEnd},
		{"\x1bOF", jote.KeyEnd},
		{"\x1b[4~", jote.KeyEnd},
		{"\x1b[8~", jote.KeyEnd},
		{"\x1b[3~", jote.KeyDelete},
		{"\x1b[5~", jote.KeyPgup},
		{"\x1b[6~", jote.KeyPgdn},
		{"\x1b", jote.KeyEsc},
		{"\x1b[", jote.KeyEsc},
		{"\x1b[Z", jote.KeyEsc},
		{"\x1b[9~", jote.KeyEsc},
	}
	for _, c := range cases {
		events := decodeAll(t, c.input)
		if len(events) == 0 {
			t.Errorf("%q: no events", c.input)
			continue
		}
		if events[0].Key != c.key {
			t.Errorf("%q: key = %d, expected %d", c.input, events[0].Key, c.key)
		}
	}
}

func TestDecodeBytes(t *testing.T) {
	events := decodeAll(t, "a\r\t \x7f\x11\x13\x00~")
	expected := []jote.Event{
		{Type: jote.EventKey, Ch: 'a'},
		{Type: jote.EventKey, Key: jote.KeyEnter},
		{Type: jote.EventKey, Key: jote.KeyTab},
		{Type: jote.EventKey, Key: jote.KeySpace},
		{Type: jote.EventKey, Key: jote.KeyBackspace},
		{Type: jote.EventKey, Key: jote.KeyCtrlQ},
		{Type: jote.EventKey, Key: jote.KeyCtrlS},
		{Type: jote.EventKey, Key: jote.KeyUnsupported},
		{Type: jote.EventKey, Ch: '~'},
	}
	if len(events) != len(expected) {
		t.Fatalf("got %d events, expected %d", len(events), len(expected))
	}
	for i, event := range events {
		if *event != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, *event, expected[i])
		}
	}
}

func TestDecodeSequenceFollowedByText(t *testing.T) {
	events := decodeAll(t, "\x1b[Ax\x1b[6~")
	if len(events) != 3 {
		t.Fatalf("got %d events, expected 3", len(events))
	}
	if events[0].Key != jote.KeyArrowUp || events[1].Ch != 'x' || events[2].Key != jote.KeyPgdn {
		t.Errorf("unexpected events %+v %+v %+v", *events[0], *events[1], *events[2])
	}
}

func TestDecodeUnknownSequenceIsConsumed(t *testing.T) {
	cases := []string{
		"\x1b[2~x",    // insert
		"\x1b[1;5Cx",  // ctrl-right
		"\x1b[15;2~x", // shift-F5
		"\x1b[Zx",     // back tab
	}
	for _, input := range cases {
		events := decodeAll(t, input)
		if len(events) != 2 {
			t.Errorf("%q: got %d events, expected 2", input, len(events))
			continue
		}
		if events[0].Key != jote.KeyEsc {
			t.Errorf("%q: first key = %d, expected escape", input, events[0].Key)
		}
		if events[1].Key != jote.KeyNone || events[1].Ch != 'x' {
			t.Errorf("%q: second event = %+v, expected 'x'", input, *events[1])
		}
	}
}
