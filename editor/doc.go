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

// Package editor implements the text model and cursor handling of jote.
// A Buffer holds the rows of one document; each Row keeps its raw text
// and a rendered copy with tabs expanded. The Editor owns the cursor and
// the display offset and keeps the cursor visible when Scroll is called
// before each frame.
package editor
