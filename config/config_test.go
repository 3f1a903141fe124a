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
package config

import (
	"os"
	"strings"
	"path/filepath"
	"testing"
	"time"
)

func writeInit(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "init.lisp")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TabWidth != 4 || cfg.QuitTimes != 4 {
		t.Errorf("tab width %d, quit times %d", cfg.TabWidth, cfg.QuitTimes)
	}
	if cfg.MessageTimeout != 5*time.Second {
		t.Errorf("message timeout %v", cfg.MessageTimeout)
	}
	if cfg.Terminal != "termbox" {
		t.Errorf("terminal %q", cfg.Terminal)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.lisp"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeInit(t, `; wider tabs
(tab-width 8)
(terminal "ansi") ; raw escape codes
(message-timeout 2.5)
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TabWidth != 8 || cfg.Terminal != "ansi" {
		t.Errorf("settings not applied: %+v", *cfg)
	}
	if cfg.MessageTimeout != 2*time.Second {
		t.Errorf("message timeout %v", cfg.MessageTimeout)
	}
	if cfg.QuitTimes != 4 {
		t.Errorf("quit times %d should keep its default", cfg.QuitTimes)
	}
}

func TestLoadInvalidValue(t *testing.T) {
	for _, source := range []string{
		"(tab-width 0)",
		"(quit-times -1)",
		"(tab-width \"wide\")",
		"(terminal \"vt52\")",
		"(terminal 1)",
	} {
		cfg, err := Load(writeInit(t, source))
		if err == nil {
			t.Errorf("%s: expected an error", source)
		}
		if cfg == nil || *cfg != *Default() {
			t.Errorf("%s: expected defaults, got %+v", source, cfg)
		}
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != "/tmp/xdg/jote/init.lisp" {
		t.Errorf("Path() = %s", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")
	if got := Path(); got != "/home/user/.jote/init.lisp" {
		t.Errorf("Path() = %s", got)
	}
}

func TestEvalQuotedForm(t *testing.T) {
	cfg := Default()
	if err := cfg.Eval("(tab-width 8) 'done"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("tab width %d, expected 8", cfg.TabWidth)
	}
}

func TestEvalNamesFailingForm(t *testing.T) {
	cfg := Default()
	err := cfg.Eval("(tab-width 8)\n; keep going\n(quit-times \"many\")\n(terminal \"ansi\")")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "quit-times") {
		t.Errorf("error does not name the failing form: %v", err)
	}
	// forms before the failure are applied, forms after it are not
	if cfg.TabWidth != 8 || cfg.Terminal != "termbox" {
		t.Errorf("unexpected settings %+v", *cfg)
	}
}
