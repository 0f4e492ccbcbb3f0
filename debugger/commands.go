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

package debugger

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/gophercube/gophercube/debugger/govern"
	"github.com/gophercube/gophercube/debugger/script"
	"github.com/gophercube/gophercube/debugger/terminal"
	"github.com/gophercube/gophercube/debugger/terminal/commandline"
	"github.com/gophercube/gophercube/debugger/watches"
	"github.com/gophercube/gophercube/debugger/watchpanel"
	"github.com/gophercube/gophercube/hardware/memory/memorymap"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/prefs"
)

// debugger keywords.
const (
	cmdHelp   = "HELP"
	cmdInsert = "INSERT"
	cmdEject  = "EJECT"
	cmdRun    = "RUN"
	cmdHalt   = "HALT"
	cmdReset  = "RESET"
	cmdQuit   = "QUIT"
	cmdExit   = "EXIT"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdMemMap = "MEMMAP"
	cmdWatch  = "WATCH"
	cmdList   = "LIST"
	cmdDrop   = "DROP"
	cmdClear  = "CLEAR"
	cmdLoad   = "LOAD"
	cmdSave   = "SAVE"
	cmdLog    = "LOG"
	cmdPrefs  = "PREFS"
	cmdMemViz = "MEMVIZ"
	cmdScript = "SCRIPT"
)

// commandList is used for tab completion at the terminal.
var commandList = []string{
	cmdHelp, cmdInsert, cmdEject, cmdRun, cmdHalt, cmdReset, cmdQuit,
	cmdExit, cmdPeek, cmdPoke, cmdMemMap, cmdWatch, cmdList, cmdDrop,
	cmdClear, cmdLoad, cmdSave, cmdLog, cmdPrefs, cmdMemViz, cmdScript,
}

// help contains the help text for the debugger's top level commands.
var help = map[string]string{
	cmdHelp:   "Lists commands and provides help for individual debugger commands",
	cmdInsert: "Insert game image into emulation (from file)",
	cmdEject:  "Eject the current game image",
	cmdRun:    "Run the emulation",
	cmdHalt:   "Halt the emulation",
	cmdReset:  "Reset the emulation to its initial state",
	cmdQuit:   "Exits the emulator",
	cmdExit:   "Exits the emulator",
	cmdPeek:   "Inspect an individual memory address",
	cmdPoke:   "Modify an individual memory address",
	cmdMemMap: "Display the memory map",
	cmdWatch:  "Add a watch (WATCH address [label]) or edit one (WATCH NAME|ADDRESS|HEX|DEC|BREAK n ...)",
	cmdList:   "List current entries for WATCHES and BREAKS",
	cmdDrop:   "Drop a specific WATCH or BREAK, using the number reported by LIST",
	cmdClear:  "Clear all entries in WATCHES and BREAKS",
	cmdLoad:   "Load WATCHES from the attached game's settings file",
	cmdSave:   "Save WATCHES to the attached game's settings file",
	cmdLog:    "Print the central log (LOG LAST prints the most recent entry, LOG CLEAR empties the log)",
	cmdPrefs:  "Show or change debugger preferences (AUTOLOAD, LIVERELOAD, STRINGLEN)",
	cmdMemViz: "Dump the watch and breakpoint structures as a dot graph (to file)",
	cmdScript: "Run commands from specified file",
}

// parseCommand scans tokenised input for a valid command and acts upon it.
func (dbg *Debugger) parseCommand(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	default:
		return fmt.Errorf("%s is not a debugger command", command)

	case cmdHelp:
		keyword, present := tokens.Get()
		if present {
			keyword = strings.ToUpper(keyword)
			if txt, ok := help[keyword]; ok {
				dbg.printLine(terminal.StyleHelp, txt)
			} else {
				dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
			}
			return nil
		}

		commands := make([]string, 0, len(help))
		for k := range help {
			commands = append(commands, k)
		}
		sort.Strings(commands)
		dbg.printLine(terminal.StyleHelp, strings.Join(commands, " "))

	case cmdInsert:
		filename, present := tokens.Get()
		if !present {
			return fmt.Errorf("INSERT requires a filename")
		}
		return dbg.insert(filename)

	case cmdEject:
		dbg.eject()
		dbg.printLine(terminal.StyleFeedback, "game ejected")

	case cmdRun:
		if dbg.mch.Image() == nil {
			return fmt.Errorf("no game attached")
		}
		dbg.state = govern.Running
		dbg.panel.Refresh()

	case cmdHalt:
		if !dbg.state.Active() {
			return fmt.Errorf("emulation is not running")
		}
		dbg.state = govern.Paused
		dbg.panel.Refresh()

	case cmdReset:
		if err := dbg.mch.Reset(); err != nil {
			return err
		}
		if dbg.state.Active() {
			dbg.state = govern.Paused
		}
		dbg.panel.Refresh()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdQuit, cmdExit:
		dbg.running = false

	case cmdPeek:
		address, present := tokens.Get()
		if !present {
			return fmt.Errorf("PEEK requires an address")
		}
		ai, err := dbg.mem.Peek(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, ai.String())

	case cmdPoke:
		address, present := tokens.Get()
		if !present {
			return fmt.Errorf("POKE requires an address")
		}
		value, present := tokens.Get()
		if !present {
			return fmt.Errorf("POKE requires a value")
		}
		v, err := parseData(value)
		if err != nil {
			return err
		}
		ai, err := dbg.mem.Poke(address, v)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, ai.String())

	case cmdMemMap:
		dbg.printLine(terminal.StyleHelp, "Physical   Cached     Uncached   Size      Area")
		dbg.printLine(terminal.StyleHelp, fmt.Sprintf("%08x   %08x   %08x   %08x  MEM1",
			0, memorymap.OriginCached, memorymap.OriginUncached, memorymap.MEM1Size))

	case cmdWatch:
		return dbg.parseWatchCommand(tokens)

	case cmdList:
		arg, _ := tokens.Get()
		switch strings.ToUpper(arg) {
		case "WATCHES":
			dbg.printWatchRows()
		case "BREAKS":
			dbg.halting.list()
		case "":
			dbg.printWatchRows()
			dbg.halting.list()
		default:
			return fmt.Errorf("unknown LIST option (%s)", arg)
		}

	case cmdDrop:
		arg, _ := tokens.Get()
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("DROP requires an entry number")
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return fmt.Errorf("drop attempt requires a numeric argument (%s)", num)
		}

		switch strings.ToUpper(arg) {
		case "WATCH":
			if err := dbg.panel.DeleteWatch(n); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "watch #%d dropped", n)
		case "BREAK":
			if err := dbg.halting.drop(n); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", n)
		default:
			return fmt.Errorf("unknown DROP option (%s)", arg)
		}

	case cmdClear:
		arg, _ := tokens.Get()
		switch strings.ToUpper(arg) {
		case "WATCHES":
			dbg.wtc.Clear()
			dbg.panel.Refresh()
			dbg.printLine(terminal.StyleFeedback, "watches cleared")
		case "BREAKS":
			dbg.halting.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		case "":
			dbg.wtc.Clear()
			dbg.panel.Refresh()
			dbg.halting.clear()
			dbg.printLine(terminal.StyleFeedback, "watches and breakpoints cleared")
		default:
			return fmt.Errorf("unknown CLEAR option (%s)", arg)
		}

	case cmdLoad:
		arg, _ := tokens.Get()
		if !strings.EqualFold(arg, "WATCHES") {
			return fmt.Errorf("LOAD only understands WATCHES")
		}
		if err := dbg.panel.Load(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%d watches loaded", dbg.wtc.Len())

	case cmdSave:
		arg, _ := tokens.Get()
		if !strings.EqualFold(arg, "WATCHES") {
			return fmt.Errorf("SAVE only understands WATCHES")
		}
		if err := dbg.panel.Save(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%d watches saved", dbg.wtc.Len())

	case cmdLog:
		arg, _ := tokens.Get()
		switch strings.ToUpper(arg) {
		case "":
			logger.Write(termWriter{dbg: dbg})
		case "LAST":
			logger.Tail(termWriter{dbg: dbg}, 1)
		case "CLEAR":
			logger.Clear()
		default:
			return fmt.Errorf("unknown LOG option (%s)", arg)
		}

	case cmdPrefs:
		return dbg.parsePrefsCommand(tokens)

	case cmdMemViz:
		filename, present := tokens.Get()
		if !present {
			return fmt.Errorf("MEMVIZ requires a filename")
		}
		return dbg.memViz(filename)

	case cmdScript:
		filename, present := tokens.Get()
		if !present {
			return fmt.Errorf("SCRIPT requires a filename")
		}
		scr, err := script.RescribeScript(filename)
		if err != nil {
			return err
		}
		return dbg.inputLoop(scr)
	}

	return nil
}

// parseWatchCommand handles the WATCH sub-commands. A bare address adds a
// new watch; NAME, ADDRESS, HEX and DEC route through the watch panel's edit
// dispatch; BREAK emits the breakpoint request.
func (dbg *Debugger) parseWatchCommand(tokens *commandline.Tokens) error {
	arg, present := tokens.Get()
	if !present {
		return fmt.Errorf("WATCH requires an address or a sub-command")
	}

	edit := func(num string, col watchpanel.Column, text string) error {
		n, err := strconv.Atoi(num)
		if err != nil {
			return fmt.Errorf("watch edit requires a numeric watch number (%s)", num)
		}
		return dbg.panel.CellEdit(n, dbg.wtc.Generation(), col, text)
	}

	switch strings.ToUpper(arg) {
	case "NAME":
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH NAME requires a watch number")
		}
		// no label deletes the watch, matching the panel's edit semantics
		return edit(num, watchpanel.ColLabel, tokens.Remainder())

	case "ADDRESS":
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH ADDRESS requires a watch number")
		}
		address, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH ADDRESS requires an address")
		}
		return edit(num, watchpanel.ColAddress, address)

	case "HEX":
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH HEX requires a watch number")
		}
		value, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH HEX requires a value")
		}
		return edit(num, watchpanel.ColHex, value)

	case "DEC":
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH DEC requires a watch number")
		}
		value, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH DEC requires a value")
		}
		return edit(num, watchpanel.ColDec, value)

	case "BREAK":
		num, present := tokens.Get()
		if !present {
			return fmt.Errorf("WATCH BREAK requires a watch number")
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return fmt.Errorf("watch edit requires a numeric watch number (%s)", num)
		}
		return dbg.panel.AddBreakpoint(n)

	default:
		// a bare address adds a new watch
		ai := dbg.mem.GetAddressInfo(arg)
		if ai == nil {
			return fmt.Errorf("invalid watch address (%s)", arg)
		}
		dbg.panel.AddWatch(tokens.Remainder(), ai.Address)
		dbg.panel.Refresh()
		dbg.printLine(terminal.StyleFeedback, "added watch #%d", dbg.wtc.Len()-1)
	}

	return nil
}

// parsePrefsCommand handles the PREFS sub-commands. Changes are saved to
// disk immediately.
func (dbg *Debugger) parsePrefsCommand(tokens *commandline.Tokens) error {
	arg, present := tokens.Get()
	if !present {
		dbg.printLine(terminal.StyleFeedback, "autoload watches: %v", dbg.prefs.autoLoadWatches.Get())
		dbg.printLine(terminal.StyleFeedback, "live watch reload: %v", dbg.prefs.liveWatchReload.Get())
		dbg.printLine(terminal.StyleFeedback, "string column length: %v", dbg.prefs.stringColLength.Get())
		return nil
	}

	onOff := func(p *prefs.Bool) error {
		v, present := tokens.Get()
		if !present {
			return fmt.Errorf("expected ON or OFF")
		}
		switch strings.ToUpper(v) {
		case "ON":
			return p.Set(true)
		case "OFF":
			return p.Set(false)
		}
		return fmt.Errorf("expected ON or OFF (%s)", v)
	}

	switch strings.ToUpper(arg) {
	case "AUTOLOAD":
		if err := onOff(&dbg.prefs.autoLoadWatches); err != nil {
			return err
		}
	case "LIVERELOAD":
		if err := onOff(&dbg.prefs.liveWatchReload); err != nil {
			return err
		}
	case "STRINGLEN":
		v, present := tokens.Get()
		if !present {
			return fmt.Errorf("STRINGLEN requires a length")
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid string column length (%s)", v)
		}
		if err := dbg.prefs.stringColLength.Set(n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown PREFS option (%s)", arg)
	}

	return dbg.prefs.save()
}

// printWatchRows refreshes the watch panel and prints the resulting rows as
// a five column table. Rows whose address can't currently be read print in
// the alternate style.
func (dbg *Debugger) printWatchRows() {
	dbg.panel.Refresh()

	if len(dbg.watchRows) <= 1 {
		dbg.printLine(terminal.StyleFeedback, "no watches")
		return
	}

	dbg.printLine(terminal.StyleHelp, "  # Label            Address  Hex      Dec        String")
	for _, row := range dbg.watchRows {
		if row.ID == watchpanel.AddRowID {
			continue
		}

		style := terminal.StyleWatch
		if !row.AddressValid {
			style = terminal.StyleWatchInvalid
		}

		l := fmt.Sprintf("%3d %-16s %-8s %-8s %-10s %s",
			row.ID, row.Label, row.Address, row.Hex, row.Dec, row.String)
		dbg.printLine(style, strings.TrimRight(l, " "))
	}
}

// memViz dumps the debugger's watch and breakpoint structures to a dot graph.
func (dbg *Debugger) memViz(filename string) error {
	type vizState struct {
		Watches     []watches.Watch
		Breakpoints []uint32
	}

	viz := vizState{
		Watches:     make([]watches.Watch, 0, dbg.wtc.Len()),
		Breakpoints: dbg.halting.breaks,
	}
	for i := 0; i < dbg.wtc.Len(); i++ {
		wch, _ := dbg.wtc.Watch(i)
		viz.Watches = append(viz.Watches, wch)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, &viz)
	dbg.printLine(terminal.StyleFeedback, "%s written", filename)

	return nil
}

// parseData converts a value argument to a 32 bit number. Hexadecimal with
// an optional 0x prefix.
func parseData(value string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value (%s)", value)
	}
	return uint32(v), nil
}

// termWriter lets the central logger write to the terminal.
type termWriter struct {
	dbg *Debugger
}

func (tw termWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tw.dbg.printLine(terminal.StyleLog, l)
	}
	return len(p), nil
}
