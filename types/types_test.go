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

import "testing"

func TestCtrlKey(t *testing.T) {
	cases := []struct {
		c    byte
		want Key
	}{
		{'a', KeyCtrlA},
		{'q', KeyCtrlQ},
		{'S', KeyCtrlS},
		{'z', KeyCtrlZ},
		{'1', KeyUnsupported},
		{'[', KeyUnsupported},
	}
	for _, c := range cases {
		if got := CtrlKey(c.c); got != c.want {
			t.Errorf("CtrlKey(%q) = %d, expected %d", c.c, got, c.want)
		}
	}
}
