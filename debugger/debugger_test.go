// This file is part of Gophercube.
//
// Gophercube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercube.  If not, see <https://www.gnu.org/licenses/>.

package debugger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gophercube/gophercube/debugger"
	"github.com/gophercube/gophercube/debugger/terminal"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	return <-trm.inp, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	// wait generously for the first line of output. some commands take
	// several milliseconds to respond (ejecting closes the settings file
	// watcher, for example) so a short timeout here risks missing the
	// output entirely
	select {
	case s := <-trm.out:
		trm.output = append(trm.output, s)
	case <-time.After(500 * time.Millisecond):
		return
	}

	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. a matter of milliseconds should be sufficient
		// to detect the end of a burst
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the most
// recent output. it can easily be adapted to compare the whole output if
// necessary.
func (trm *mockTerm) cmpOutput(s string) {
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf(fmt.Sprintf("unexpected debugger output (nothing) should be (%s)", s))
			return
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf(fmt.Sprintf("unexpected debugger output (%s) should be (%s)", trm.output[l], s))
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()
	trm.testPeekPoke()
	trm.testWatches()
	trm.testBreakpoints()
	trm.testEject()
}

func (trm *mockTerm) testPeekPoke() {
	trm.sndInput("POKE $80001000 c0ffee")
	trm.cmpOutput("80001000 (MEM1) -> 00c0ffee")

	trm.sndInput("PEEK 80001000")
	trm.cmpOutput("80001000 (MEM1) -> 00c0ffee")

	trm.sndInput("PEEK zzz")
	trm.cmpOutput("cannot peek address: zzz")
}

func (trm *mockTerm) testWatches() {
	trm.sndInput("WATCH $80001000 health")
	trm.cmpOutput("added watch #0")

	trm.sndInput("LIST WATCHES")
	trm.cmpOutput("  0 health           80001000 00c0ffee 12648430")

	// editing the decimal column writes through to memory
	trm.sndInput("WATCH DEC 0 255")
	trm.sndInput("PEEK 80001000")
	trm.cmpOutput("80001000 (MEM1) -> 000000ff")

	trm.sndInput("WATCH NAME 0 energy")
	trm.sndInput("LIST WATCHES")
	trm.cmpOutput("  0 energy           80001000 000000ff 255")

	// a bad address is rejected without changing the watch
	trm.sndInput("WATCH ADDRESS 0 badaddr")
	trm.cmpOutput("invalid input provided: badaddr")

	trm.sndInput("DROP WATCH 0")
	trm.cmpOutput("watch #0 dropped")

	trm.sndInput("LIST WATCHES")
	trm.cmpOutput("no watches")
}

func (trm *mockTerm) testBreakpoints() {
	trm.sndInput("WATCH 80002000 timer")
	trm.cmpOutput("added watch #0")

	trm.sndInput("WATCH BREAK 0")
	trm.cmpOutput("memory breakpoint requested at 80002000")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput("  0 80002000")

	trm.sndInput("DROP BREAK 0")
	trm.cmpOutput("breakpoint #0 dropped")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput("no breakpoints")

	trm.sndInput("CLEAR WATCHES")
	trm.cmpOutput("watches cleared")
}

func (trm *mockTerm) testEject() {
	trm.sndInput("EJECT")
	trm.cmpOutput("game ejected")

	// watch persistence needs an attached game
	trm.sndInput("SAVE WATCHES")
	trm.cmpOutput("no game attached")

	trm.sndInput("LOAD WATCHES")
	trm.cmpOutput("no game attached")
}

// run the debugger with a portable resources directory so that test files
// stay away from the user's real configuration directory.
func startDebugger(t *testing.T, trm *mockTerm, initScript string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf(err.Error())
	}
	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, "gophercube_userfiles"), 0700); err != nil {
		t.Fatalf(err.Error())
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf(err.Error())
	}
	defer func() {
		_ = os.Chdir(wd)
	}()

	// a small memory image. the six character header code doubles as the
	// game ID
	imageFile := filepath.Join(tmp, "test.img")
	if err := os.WriteFile(imageFile, append([]byte("GALE01"), make([]byte, 64)...), 0600); err != nil {
		t.Fatalf(err.Error())
	}

	dbg, err := debugger.NewDebugger(trm)
	if err != nil {
		t.Fatalf(err.Error())
	}

	go trm.testSequence()

	if err := dbg.Start(initScript, imageFile); err != nil {
		t.Fatalf(err.Error())
	}
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)
	startDebugger(t, trm, "")
}

func TestDebugger_withNonExistantInitScript(t *testing.T) {
	trm := newMockTerm(t)
	startDebugger(t, trm, "non_existent_script")
}
