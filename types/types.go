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
package types

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key identifies a decoded keypress.
// KeyNone means the event carries a literal character in Ch.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPgup
	KeyPgdn
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeySpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyUnsupported
)

// CtrlKey returns the control chord for a letter, e.g. CtrlKey('q') == KeyCtrlQ.
func CtrlKey(c byte) Key {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return KeyUnsupported
	}
	return KeyCtrlA + Key(c-'a')
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Terminal reads input events and displays complete frames.
type Terminal interface {
	Size() (Size, error)
	ReadEvent() (*Event, error)
	WriteFrame(frame []byte) error
	Close() error
}

// A Reporter receives status messages for the message bar.
type Reporter interface {
	SetMessage(format string, args ...interface{})
}
