// This file is part of Simonvid.
//
// Simonvid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simonvid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simonvid.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/digest"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/display/headless"
	"github.com/simonvid/simonvid/display/sdlwindow"
	"github.com/simonvid/simonvid/display/snapshot"
	"github.com/simonvid/simonvid/grid"
	"github.com/simonvid/simonvid/hardware"
	"github.com/simonvid/simonvid/hardware/preferences"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/line/console"
	"github.com/simonvid/simonvid/line/serialport"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/modalflag"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/prefs"
	"github.com/simonvid/simonvid/random"
	"github.com/simonvid/simonvid/refresh"
	"github.com/simonvid/simonvid/simon"
	"github.com/simonvid/simonvid/statsview"
	"github.com/simonvid/simonvid/timer"
	"github.com/simonvid/simonvid/version"
	"github.com/simonvid/simonvid/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the launched mode provides
	// its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of windows
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the window
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// creator() returns a nil pointer wrapped in a non-nil
				// interface on error
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate window creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "PATTERN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "PATTERN":
		err = pattern(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.Current())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	lineType := md.AddString("line", "CONSOLE", "line to the player: CONSOLE, SERIAL, STDIO")
	port := md.AddString("port", "", "serial device (SERIAL line only). detected if not set")
	baud := md.AddInt("baud", 0, "serial baud rate (SERIAL line only)")
	dispType := md.AddString("display", "SDL", "board display: SDL, HEADLESS")
	snapshotDir := md.AddString("snapshot", "", "save every frame as a PNG to this directory")
	wav := md.AddString("wav", "", "record tones to wav file")
	memvizFile := md.AddString("memviz", "", "write graph of the final state of every game to file")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	prefsArg := md.AddString("prefs", "", "preferences to override. eg. \"simon.capacity::6\"")
	savePrefs := md.AddBool("saveprefs", false, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log is echoed to stderr because stdout may be the line to the player
	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	logger.Log(logger.Allow, "simonvid", version.Current())

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer prefs.PopCommandLineStack()
	}

	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	if *port != "" {
		if err := hwPrefs.Port.Set(*port); err != nil {
			return err
		}
	}
	if *baud != 0 {
		if err := hwPrefs.Baud.Set(*baud); err != nil {
			return err
		}
	}

	simonPrefs, err := simon.NewPreferences()
	if err != nil {
		return err
	}

	// the launched mode handles interrupts by cancelling the context
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sig := refresh.NewSignal()

	rw, err := openLine(*lineType, hwPrefs, sig, cancel)
	if err != nil {
		return err
	}
	ln := line.NewLine(rw)
	defer ln.Close()

	disp, err := openDisplay(*dispType, hwPrefs, sig, cancel, sync)
	if err != nil {
		return err
	}

	if *snapshotDir != "" {
		disp, err = snapshot.NewSnapshot(disp, *snapshotDir)
		if err != nil {
			return err
		}
	}

	var tmr timer.Delayer = timer.Sleeper{}
	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw = wavwriter.New(*wav, tmr)
		tmr = aw
	}

	brd, err := hardware.NewBoard(hwPrefs, disp, ln, sig, tmr)
	if err != nil {
		return err
	}
	if aw != nil {
		brd.Renderer.AddListener(aw)
	}

	err = brd.Initialise()
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	mn := simon.NewMenu(brd, simonPrefs, random.Default)
	if *memvizFile != "" {
		mn.OnSession = func(m mode.Mode, e *simon.Engine) {
			if err := writeMemviz(*memvizFile, e); err != nil {
				logger.Log(logger.Allow, "memviz", err)
			}
		}
	}

	err = mn.Run(ctx)
	if err != nil {
		return err
	}

	if aw != nil {
		err = aw.Close()
		if err != nil {
			return err
		}
	}

	if *savePrefs {
		err = hwPrefs.Save()
		if err != nil {
			return err
		}
		err = simonPrefs.Save()
		if err != nil {
			return err
		}
	}

	return nil
}

// openLine returns the device for the named line type. The interrupt function
// is called if the player presses the interrupt key on the console.
func openLine(lineType string, hwPrefs *preferences.Preferences, sig *refresh.Signal, interrupt func()) (io.ReadWriter, error) {
	switch strings.ToUpper(lineType) {
	case "CONSOLE":
		return console.Open(console.DefaultDevice, sig, interrupt)

	case "SERIAL":
		baud, ok := hwPrefs.Baud.Get().(int)
		if !ok {
			baud = serialport.DefaultBaud
		}
		return serialport.Open(hwPrefs.Port.String(), baud)

	case "STDIO":
		return struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, nil
	}

	return nil, curated.Errorf("unknown line type (%s)", lineType)
}

// openDisplay returns the display for the named display type. SDL windows are
// created on the main thread.
func openDisplay(dispType string, hwPrefs *preferences.Preferences, sig *refresh.Signal, quit func(), sync *mainSync) (display.Display, error) {
	width, _ := hwPrefs.Width.Get().(int)
	height, _ := hwPrefs.Height.Get().(int)

	switch strings.ToUpper(dispType) {
	case "SDL":
		sync.creator <- func() (GuiCreator, error) {
			return sdlwindow.NewWindow(version.ApplicationName, width, height, sig, quit)
		}

		select {
		case g := <-sync.creation:
			return g.(*sdlwindow.Window), nil
		case err := <-sync.creationError:
			return nil, err
		}

	case "HEADLESS":
		return headless.NewHeadless(width, height)
	}

	return nil, curated.Errorf("unknown display type (%s)", dispType)
}

// writeMemviz writes a graph of the engine to the named file. The file is
// overwritten at the end of every game.
func writeMemviz(filename string, e *simon.Engine) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, e)

	return nil
}

// pattern draws the board into a headless display and prints the digest of
// the resulting frame.
func pattern(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	modeName := md.AddString("mode", mode.ThreeByThree.String(), "board layout: 2x2, 3x3")
	active := md.AddInt("active", preferences.TestPatternCell, "index of the highlighted cell")
	width := md.AddInt("width", 1280, "width of frame")
	height := md.AddInt("height", 720, "height of frame")
	png := md.AddString("png", "", "save frame as a PNG file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := mode.Parse(*modeName)
	if err != nil {
		return err
	}

	hd, err := headless.NewHeadless(*width, *height)
	if err != nil {
		return err
	}

	err = grid.NewRenderer(hd).Render(m, *active)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%x\n", digest.Frame(hd.Frame()))))

	if *png != "" {
		return snapshot.Save(*png, hd.Frame())
	}

	return nil
}
