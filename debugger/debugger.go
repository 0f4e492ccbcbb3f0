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

// Package debugger is the terminal front-end for inspecting the emulated
// machine. All debugger state is owned by a single goroutine - the one that
// called Start(). Other goroutines communicate with the debugger by pushing
// functions onto the RawEvents channel.
package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gophercube/gophercube/debugger/dbgmem"
	"github.com/gophercube/gophercube/debugger/govern"
	"github.com/gophercube/gophercube/debugger/script"
	"github.com/gophercube/gophercube/debugger/terminal"
	"github.com/gophercube/gophercube/debugger/terminal/commandline"
	"github.com/gophercube/gophercube/debugger/watchpanel"
	"github.com/gophercube/gophercube/debugger/watches"
	"github.com/gophercube/gophercube/gamesettings"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/imagefile"
	"github.com/gophercube/gophercube/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	mch   *hardware.Machine
	mem   dbgmem.DbgMem
	state govern.State

	wtc     *watches.Watches
	panel   *watchpanel.Panel
	halting *breakpoints
	prefs   *Preferences

	term   terminal.Terminal
	events *terminal.ReadEvents

	// rows from the most recent panel refresh. the debugger is the panel's
	// registered renderer
	watchRows []watchpanel.Row

	// watches the attached game's settings file for external edits. nil
	// when no game is attached or live reload is off
	settingsWatcher *gamesettings.Watcher

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		mch:   hardware.NewMachine(),
		state: govern.EmulatorStart,
		wtc:   watches.NewWatches(),
		term:  term,
	}
	dbg.mem = dbgmem.DbgMem{Mem: dbg.mch.Mem}

	var err error
	dbg.prefs, err = newPreferences()
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg.halting = newBreakpoints(dbg)

	dbg.panel = watchpanel.NewPanel(dbg.wtc, dbg.mem, func() govern.State {
		return dbg.state
	})
	dbg.panel.Renderer = dbg
	dbg.panel.RequestMemoryBreakpoint = dbg.halting.add
	dbg.panel.Settings = dbg.settings
	dbg.panel.StringLen = dbg.prefs.stringLen

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(_ os.Signal) error {
			return terminal.UserInterrupt
		},
		RawEvents: make(chan func(), 32),
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	return dbg, nil
}

// RenderWatchRows implements the watchpanel.Renderer interface.
func (dbg *Debugger) RenderWatchRows(rows []watchpanel.Row) {
	dbg.watchRows = rows
}

// PushRawEvent sends a function to be run on the debugger goroutine. Used by
// other goroutines, the settings file watcher for example.
func (dbg *Debugger) PushRawEvent(f func()) {
	select {
	case dbg.events.RawEvents <- f:
	default:
		logger.Log("debugger", "dropped raw event (queue full)")
	}
}

// Start the main debugging loop. If initScript is not empty the commands in
// the file are run before the interactive loop begins. If filename is not
// empty the image is inserted first.
func (dbg *Debugger) Start(initScript string, filename string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(commandList))

	dbg.running = true

	if filename != "" {
		if err := dbg.insert(filename); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if initScript != "" {
		scr, err := script.RescribeScript(initScript)
		if err != nil {
			logger.Logf("debugger", "error running init script: %s", err)
		} else {
			dbg.term.Silence(true)
			if err := dbg.inputLoop(scr); err != nil {
				dbg.term.Silence(false)
				return fmt.Errorf("debugger: %w", err)
			}
			dbg.term.Silence(false)
		}
	}

	err = dbg.inputLoop(dbg.term)

	dbg.stopSettingsWatcher()
	signal.Stop(dbg.events.Signal)

	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	return nil
}

// printLine sends a formatted string to the attached terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// settings returns the game settings for the attached image. This is the
// function behind the watch panel's Settings hook. Settings are available
// only while a game is attached and the emulation is active.
func (dbg *Debugger) settings() (*gamesettings.Settings, error) {
	img := dbg.mch.Image()
	if img == nil {
		return nil, fmt.Errorf("no game attached")
	}
	if !dbg.state.Active() {
		return nil, fmt.Errorf("emulation is not active")
	}
	return gamesettings.Load(img.GameID)
}

// insert an image into the machine. The emulation moves through the Starting
// state to Paused, watches are loaded from the game's settings when the
// autoload preference is set, and the settings file watcher is started when
// the live reload preference is set.
func (dbg *Debugger) insert(filename string) error {
	img, err := imagefile.Load(filename)
	if err != nil {
		return err
	}

	dbg.state = govern.Starting

	if err := dbg.mch.Attach(img); err != nil {
		dbg.state = govern.EmulatorStart
		return err
	}
	dbg.state = govern.Paused

	logger.Logf("debugger", "inserted %s", img.String())
	dbg.printLine(terminal.StyleFeedback, "inserted %s", img.String())

	dbg.stopSettingsWatcher()

	if dbg.prefs.autoLoadWatches.Get().(bool) {
		if err := dbg.panel.Load(); err != nil {
			logger.Log("debugger", err.Error())
		}
	} else {
		dbg.panel.Refresh()
	}

	if dbg.prefs.liveWatchReload.Get().(bool) {
		dbg.startSettingsWatcher(img.GameID)
	}

	return nil
}

// eject the current image and return to the EmulatorStart state.
func (dbg *Debugger) eject() {
	dbg.stopSettingsWatcher()
	dbg.mch.Detach()
	dbg.state = govern.EmulatorStart
	dbg.panel.Refresh()
}

func (dbg *Debugger) startSettingsWatcher(gameID string) {
	set, err := gamesettings.Load(gameID)
	if err != nil {
		logger.Log("debugger", err.Error())
		return
	}

	// the watcher notifies from its own goroutine. forward to the debugger
	// goroutine before touching any debugger state
	w, err := gamesettings.NewWatcher(set.Path(), func() {
		dbg.PushRawEvent(func() {
			if err := dbg.panel.Load(); err != nil {
				logger.Log("debugger", err.Error())
			}
		})
	})
	if err != nil {
		logger.Log("debugger", err.Error())
		return
	}

	dbg.settingsWatcher = w
}

func (dbg *Debugger) stopSettingsWatcher() {
	if dbg.settingsWatcher != nil {
		_ = dbg.settingsWatcher.Close()
		dbg.settingsWatcher = nil
	}
}

// prompt builds the terminal prompt from the attached image and the current
// emulation state.
func (dbg *Debugger) prompt() terminal.Prompt {
	content := "no game"
	if img := dbg.mch.Image(); img != nil {
		content = img.ShortName()
		if dbg.state == govern.Running {
			content = fmt.Sprintf("%s (running)", content)
		}
	}
	return terminal.Prompt{Type: terminal.PromptTypeCommand, Content: content}
}
