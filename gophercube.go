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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gophercube/gophercube/debugger"
	"github.com/gophercube/gophercube/debugger/terminal"
	"github.com/gophercube/gophercube/debugger/terminal/colorterm"
	"github.com/gophercube/gophercube/debugger/terminal/plainterm"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/modalflag"
	"github.com/gophercube/gophercube/resources"
	"github.com/gophercube/gophercube/statsview"
	"github.com/gophercube/gophercube/version"
)

// the name of the script to run on debugger start. the file lives in the
// resources directory and is optional.
const defaultInitScript = "debuggerInit"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DEBUG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)

	case "VERSION":
		vers, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	defInitScript, err := resources.JoinPath(defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	// a memory image file is optional. the debugger starts with no game
	// attached and one can be inserted from the terminal
	switch len(md.RemainingArgs()) {
	case 0:
		return dbg.Start(*initScript, "")
	case 1:
		return dbg.Start(*initScript, md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
