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

// Package config holds the editor settings. Settings are written as lisp
// forms such as (tab-width 8) and evaluated with golisp: first the embedded
// defaults, then the user's init file if one exists.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/steelseries/golisp"
)

//go:embed default.lisp
var defaults string

// Terminal backends understood by the screen package.
var terminals = map[string]bool{"termbox": true, "ansi": true}

type Config struct {
	TabWidth       int
	QuitTimes      int
	MessageTimeout time.Duration
	Terminal       string
}

// current is the Config being filled in while a script is evaluated.
var current *Config

func init() {
	golisp.MakePrimitiveFunction("tab-width", "1", TabWidthImpl)
	golisp.MakePrimitiveFunction("quit-times", "1", QuitTimesImpl)
	golisp.MakePrimitiveFunction("message-timeout", "1", MessageTimeoutImpl)
	golisp.MakePrimitiveFunction("terminal", "1", TerminalImpl)
}

// Default returns the settings from the embedded default script.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Eval(defaults); err != nil {
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Path returns the location of the user's init file.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jote", "init.lisp")
	}
	return filepath.Join(os.Getenv("HOME"), ".jote", "init.lisp")
}

// Load returns the defaults overridden by the init file at path. A missing
// file is not an error. When the file fails to evaluate, the defaults are
// returned along with the error.
func Load(path string) (*Config, error) {
	cfg := Default()
	source, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	loaded := *cfg
	if err := loaded.Eval(string(source)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return &loaded, nil
}

// Eval evaluates each form in source against cfg. An error names the
// form that failed.
func (cfg *Config) Eval(source string) error {
	forms, err := golisp.ParseAll(source)
	if err != nil {
		return err
	}
	current = cfg
	defer func() { current = nil }()
	for _, form := range forms {
		if _, err := golisp.Eval(form, golisp.Global); err != nil {
			return fmt.Errorf("%s: %w", golisp.String(form), err)
		}
	}
	return nil
}

func intArgument(name string, args *golisp.Data, min int) (int, error) {
	val := golisp.Car(args)
	var n int
	switch {
	case golisp.IntegerP(val):
		n = int(golisp.IntegerValue(val))
	case golisp.FloatP(val):
		n = int(golisp.FloatValue(val))
	default:
		return 0, fmt.Errorf("%s requires a number", name)
	}
	if n < min {
		return 0, fmt.Errorf("%s must be at least %d", name, min)
	}
	return n, nil
}

func TabWidthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := intArgument("tab-width", args, 1)
	if err != nil {
		return nil, err
	}
	if current != nil {
		current.TabWidth = n
	}
	return golisp.Car(args), nil
}

func QuitTimesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := intArgument("quit-times", args, 0)
	if err != nil {
		return nil, err
	}
	if current != nil {
		current.QuitTimes = n
	}
	return golisp.Car(args), nil
}

func MessageTimeoutImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := intArgument("message-timeout", args, 0)
	if err != nil {
		return nil, err
	}
	if current != nil {
		current.MessageTimeout = time.Duration(n) * time.Second
	}
	return golisp.Car(args), nil
}

func TerminalImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("terminal requires a string")
	}
	name := golisp.StringValue(val)
	if !terminals[name] {
		return nil, fmt.Errorf("unknown terminal %q", name)
	}
	if current != nil {
		current.Terminal = name
	}
	return val, nil
}
