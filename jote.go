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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timburks/jote/commander"
	"github.com/timburks/jote/config"
	"github.com/timburks/jote/editor"
	"github.com/timburks/jote/screen"
)

const helpMessage = "Help: Press Ctrl-Q to quit | Ctrl-S to save"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Open a log file.
	f, err := os.OpenFile(filepath.Join(os.Getenv("HOME"), ".jotelog"), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg, configErr := config.Load(config.Path())
	if configErr != nil {
		log.Printf("config: %v", configErr)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetTabWidth(cfg.TabWidth)
	e.SetMessageTimeout(cfg.MessageTimeout)

	// If a file was specified on the command line, read it.
	if len(args) > 0 {
		if len(args) > 1 {
			log.Printf("ignoring extra arguments %v", args[1:])
		}
		if err = e.ReadFile(args[0]); err != nil {
			log.Printf("%+v", err)
			fmt.Fprintf(os.Stderr, "jote: %v\n", err)
			return 1
		}
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg.QuitTimes)

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Terminal)
	if err != nil {
		log.Printf("%+v", err)
		fmt.Fprintf(os.Stderr, "jote: %v\n", err)
		return 1
	}
	defer s.Close()
	closeOnSignal(s)

	if configErr != nil {
		e.SetMessage("Config error: %v", configErr)
	} else {
		e.SetMessage(helpMessage)
	}

	// Run the main event loop.
	for c.IsRunning() {
		if err = s.Render(e); err != nil {
			return fail(s, err)
		}
		event, err := s.GetNextEvent()
		if err != nil {
			return fail(s, err)
		}
		if err = c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	return 0
}

// fail restores the terminal before reporting a fatal error.
func fail(s *screen.Screen, err error) int {
	s.Close()
	log.Printf("fatal: %+v", err)
	fmt.Fprintf(os.Stderr, "jote: %v\n", err)
	return 1
}

// closeOnSignal restores the terminal and exits when the process is terminated.
func closeOnSignal(s *screen.Screen) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-signals
		s.Close()
		log.Printf("exiting on %v", sig)
		os.Exit(1)
	}()
}
