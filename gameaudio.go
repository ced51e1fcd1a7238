// This file is part of GameAudio.
//
// GameAudio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameAudio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameAudio.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gameaudio/analysis"
	"github.com/jetsetilly/gameaudio/digest"
	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/gui/sdlaudio"
	"github.com/jetsetilly/gameaudio/keys"
	"github.com/jetsetilly/gameaudio/logger"
	"github.com/jetsetilly/gameaudio/modalflag"
	"github.com/jetsetilly/gameaudio/performance"
	"github.com/jetsetilly/gameaudio/performance/limiter"
	"github.com/jetsetilly/gameaudio/song"
	"github.com/jetsetilly/gameaudio/statsview"
	"github.com/jetsetilly/gameaudio/tracker"
	"github.com/jetsetilly/gameaudio/tuning"
	"github.com/jetsetilly/gameaudio/version"
	"github.com/jetsetilly/gameaudio/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. PLAY mode handles ctrl-c itself so that
	// the speaker is silenced and the audio device is drained.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// number of times per second the emulation is serviced in PLAY mode.
const playRate = 50

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
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
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "RENDER", "TRACE", "NOTES", "ANALYSE", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("available songs: %s", strings.Join(songNames(), ", ")))

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

	case "RENDER":
		err = render(md)

	case "TRACE":
		err = trace(md)

	case "NOTES":
		err = listNotes(md)

	case "ANALYSE":
		err = analyse(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// set debugging log echo. the log.echo preference is used if the flag is not
// set.
func setEcho(emu *emulation, flag bool) {
	if flag || emu.env.Prefs.Echo.Get().(bool) {
		logger.SetEcho(newLogColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	songName := md.AddString("song", "demo", "song to play")
	wav := md.AddString("wav", "", "record audio to wav file")
	duration := md.AddDuration("duration", 0, "stop after duration (zero plays until quit)")
	prefsArg := md.AddString("prefs", "", "preferences override (key::value; ...)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	notes, err := lookupSong(*songName)
	if err != nil {
		return err
	}

	emu, err := newEmulation(*prefsArg)
	if err != nil {
		return err
	}
	setEcho(emu, *log)

	aud, err := sdlaudio.NewAudio(emu.env, emu.board.Speaker.SampleRate(), emu.env.Prefs.Buffer.Get().(int))
	if err != nil {
		return err
	}
	emu.board.AddAudioMixer(aud)

	if *wav != "" {
		aw, err := wavwriter.New(emu.env, *wav, emu.board.Speaker.SampleRate())
		if err != nil {
			return err
		}
		emu.board.AddAudioMixer(aw)
	}

	// PLAY mode handles ctrl-c itself from this point
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *duration > 0 {
		var cancelDuration context.CancelFunc
		ctx, cancelDuration = context.WithTimeout(ctx, *duration)
		defer cancelDuration()
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(ctx, os.Stdout)
	}

	// the keyboard is optional. without it the song plays until ctrl-c or
	// until the duration has elapsed
	var actions <-chan keys.Action
	kb, err := keys.Open()
	if err != nil {
		logger.Log(emu.env, "play", err)
	} else {
		defer kb.Close()
		actions = kb.Listen(ctx)
	}

	st := newStyles()
	names := songNames()
	current := *songName
	songs := map[string]*song.Song{current: song.NewSong(notes)}

	status := func() {
		state, s, pos := emu.state()
		var label string
		if state == gameaudio.Playing {
			label = st.playing.Render(state.String())
		} else {
			label = st.idle.Render(state.String())
		}
		var detail string
		if s != nil {
			detail = st.note.Render(s.Note((pos + s.Len() - 1) % s.Len()).String())
		}
		fmt.Printf("\r\033[K%s %s %s %s", label, st.value.Render(current), detail,
			st.help.Render("[space] play/stop [r] restart [n] next [q] quit"))
	}

	emu.play(songs[current])
	status()

	lim := limiter.NewLimiter(playRate)
	defer lim.Stop()

	// the position of the song when the status was last printed
	lastPos := -1

	for {
		select {
		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue // for loop
			}

			switch a {
			case keys.Toggle:
				if state, _, _ := emu.state(); state == gameaudio.Playing {
					emu.stop()
				} else {
					emu.play(songs[current])
				}
			case keys.Restart:
				emu.restart()
			case keys.Next:
				for i, n := range names {
					if n == current {
						current = names[(i+1)%len(names)]
						break // range loop
					}
				}
				if _, ok := songs[current]; !ok {
					notes, err := lookupSong(current)
					if err != nil {
						return err
					}
					songs[current] = song.NewSong(notes)
				}
				emu.play(songs[current])
			case keys.Quit:
				cancel()
			}
			status()

		default:
			if err := lim.Wait(ctx); err != nil {
				emu.stop()
				fmt.Println()
				return emu.board.End()
			}

			if err := emu.board.RunFor(lim.Period()); err != nil {
				return err
			}

			if _, _, pos := emu.state(); pos != lastPos {
				lastPos = pos
				status()
			}
		}
	}
}

func render(md *modalflag.Modes) error {
	md.NewMode()

	songName := md.AddString("song", "demo", "song to render")
	duration := md.AddDuration("duration", 0, "length of recording (zero renders one pass of the song)")
	prefsArg := md.AddString("prefs", "", "preferences override (key::value; ...)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("wav file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	notes, err := lookupSong(*songName)
	if err != nil {
		return err
	}

	emu, err := newEmulation(*prefsArg)
	if err != nil {
		return err
	}
	setEcho(emu, *log)

	aw, err := wavwriter.New(emu.env, md.GetArg(0), emu.board.Speaker.SampleRate())
	if err != nil {
		return err
	}
	emu.board.AddAudioMixer(aw)

	dig := digest.NewAudio()
	emu.board.AddAudioMixer(dig)

	s := song.NewSong(notes)
	d := *duration
	if d <= 0 {
		d = s.Duration()
	}

	emu.play(s)
	if err := emu.board.RunFor(d); err != nil {
		return err
	}
	emu.stop()

	if err := emu.board.End(); err != nil {
		return err
	}

	fmt.Printf("* %s rendered to %s (%s, %d samples)\n", *songName, md.GetArg(0), d, aw.Len())
	fmt.Printf("* digest: %s\n", dig.Hash())
	return nil
}

func trace(md *modalflag.Modes) error {
	md.NewMode()

	songName := md.AddString("song", "demo", "song to trace")
	duration := md.AddDuration("duration", 0, "length of trace (zero traces one pass of the song)")
	viz := md.AddString("memviz", "", "write graphviz diagram of the emulation to file")
	prefsArg := md.AddString("prefs", "", "preferences override (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	notes, err := lookupSong(*songName)
	if err != nil {
		return err
	}

	emu, err := newEmulation(*prefsArg)
	if err != nil {
		return err
	}

	s := song.NewSong(notes)
	d := *duration
	if d <= 0 {
		d = s.Duration()
	}

	tr := tracker.NewTracker(0)
	emu.board.SetTracker(tr)

	emu.play(s)
	if err := emu.board.RunFor(d); err != nil {
		return err
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, emu.board)
		if err := f.Close(); err != nil {
			return err
		}
	}

	emu.stop()
	if err := emu.board.End(); err != nil {
		return err
	}

	st := newStyles()
	fmt.Println(st.title.Render(fmt.Sprintf("%s: %s", *songName, s)))
	fmt.Printf("%s %s %s\n", column(st.heading, "time", 12), column(st.heading, "note", 6), st.heading.Render("registers"))
	for _, e := range tr.Copy() {
		ns := st.note
		if e.Note == "-" {
			ns = st.rest
		}
		fmt.Printf("%s %s %s\n", column(st.value, e.At.String(), 12), column(ns, e.Note, 6), e.State)
	}
	fmt.Printf("%d interrupts\n", emu.board.Interrupts())

	return nil
}

func listNotes(md *modalflag.Modes) error {
	md.NewMode()

	songName := md.AddString("song", "demo", "song to list")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	notes, err := lookupSong(*songName)
	if err != nil {
		return err
	}
	s := song.NewSong(notes)

	st := newStyles()
	fmt.Println(st.title.Render(fmt.Sprintf("%s: %d notes, %s", *songName, s.Len(), s.Duration())))
	fmt.Printf("%s %s %s %s %s %s\n",
		column(st.heading, "#", 4), column(st.heading, "note", 6), column(st.heading, "key", 5),
		column(st.heading, "freq", 8), column(st.heading, "duty", 8), st.heading.Render("length"))

	for i := range s.Len() {
		n := s.Note(i)
		if n.IsRest() {
			fmt.Printf("%s %s %s %s %s %s\n",
				column(st.value, fmt.Sprint(i), 4), column(st.rest, "rest", 6), column(st.rest, "-", 5),
				column(st.rest, "-", 8), column(st.rest, "-", 8), st.value.Render(n.Length().String()))
			continue // for loop
		}
		high, total := gameaudio.Duty(n.Volume())
		fmt.Printf("%s %s %s %s %s %s\n",
			column(st.value, fmt.Sprint(i), 4), column(st.note, tuning.Name(n.Key()), 6),
			column(st.value, fmt.Sprint(n.Key()), 5), column(st.value, fmt.Sprintf("%dHz", tuning.Frequency(n.Key())), 8),
			column(st.value, fmt.Sprintf("%d/%d", high, total), 8), st.value.Render(n.Length().String()))
	}

	return nil
}

func analyse(md *modalflag.Modes) error {
	md.NewMode()

	minimum := md.AddDuration("min", 2*analysis.Window, "shortest segment that is reported separately")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(newLogColorizer(os.Stdout), false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("wav or mp3 file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pcm, err := analysis.Load(logger.Allow, md.GetArg(0))
	if err != nil {
		return err
	}

	st := newStyles()
	fmt.Println(st.title.Render(fmt.Sprintf("%s: %.2fs at %dHz", md.GetArg(0), pcm.Duration(), pcm.SampleRate)))
	for _, seg := range analysis.Notes(pcm, *minimum) {
		if seg.Rest {
			fmt.Println(st.rest.Render(seg.String()))
		} else {
			fmt.Println(st.note.Render(seg.String()))
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	songName := md.AddString("song", "demo", "song to play during the check")
	duration := md.AddDuration("duration", 5*time.Second, "real time duration of the check")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL")
	prefsArg := md.AddString("prefs", "", "preferences override (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	notes, err := lookupSong(*songName)
	if err != nil {
		return err
	}

	env, err := newEnvironment(*prefsArg)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, env, prf, notes, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	deps := md.AddBool("deps", false, "list the dependencies compiled into the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if r != "" {
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Printf("%s %s\n", version.ApplicationName, v)
	}

	if *deps {
		for _, d := range version.Dependencies() {
			fmt.Println(d)
		}
	}

	return nil
}
