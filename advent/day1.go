package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cespare/advent/advent/dial"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
	register("1i", day1i)
}

func day1a(cfg *config, args []string) error {
	r, err := day1(cfg, args, os.Stdin)
	if err != nil {
		return err
	}
	fmt.Println(r.Landings)
	return nil
}

func day1b(cfg *config, args []string) error {
	r, err := day1(cfg, args, os.Stdin)
	if err != nil {
		return err
	}
	fmt.Println(r.Crossings)
	return nil
}

func day1(cfg *config, args []string, stdin io.Reader) (dial.Result, error) {
	input, err := cfg.readInput(1, args, stdin)
	if err != nil {
		return dial.Result{}, err
	}
	ds := dial.Parse(input)
	if !cfg.verbose {
		return dial.Run(ds, nil), nil
	}
	skipped := len(dial.Lines(input)) - len(ds)
	log.Printf("Parsed %s directives (%s lines skipped)",
		humanize.Comma(int64(len(ds))), humanize.Comma(int64(skipped)))
	r := dial.Run(ds, func(s dial.Step) {
		log.Printf("%s: %s -> %d (crossed 0 %d times)",
			humanize.Ordinal(s.Index+1), s.Directive, s.Pointer, s.Crossed)
	})
	log.Printf("Landed on 0 %s times; reached 0 %s times",
		humanize.Comma(int64(r.Landings)), humanize.Comma(int64(r.Crossings)))
	return r, nil
}

func day1i(cfg *config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("1i takes no args")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      promptFor(dial.Start),
		HistoryFile: cfg.history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	s := newSession()
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if s.handle(line, l.Stdout()) {
			return nil
		}
		l.SetPrompt(promptFor(s.dial.Pointer()))
	}
}

func promptFor(pointer int) string {
	return fmt.Sprintf("[%02d] > ", pointer)
}

// A session applies directives typed one at a time.
type session struct {
	dial   *dial.Dial
	result dial.Result
	moves  int
}

func newSession() *session {
	return &session{dial: dial.New()}
}

// handle processes one line of interactive input and reports whether the
// session should end.
func (s *session) handle(line string, w io.Writer) (quit bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "reset":
		*s = *newSession()
		fmt.Fprintf(w, "pointer %d\n", s.dial.Pointer())
		return false
	case "state":
		pretty.Fprintf(w, "%# v\n", s.state())
		return false
	}
	d, ok := dial.ParseDirective(line)
	if !ok {
		fmt.Fprintf(w, "ignoring %q (want L<n> or R<n>)\n", line)
		return false
	}
	crossed := s.dial.Apply(d)
	s.moves++
	if s.dial.AtZero() {
		s.result.Landings++
	}
	s.result.Crossings = s.dial.Crossings()
	fmt.Fprintf(w, "pointer %d, reached 0 %d times\n", s.dial.Pointer(), crossed)
	return false
}

type sessionState struct {
	Moves    int
	Pointer  int
	Position int
	Result   dial.Result
}

func (s *session) state() sessionState {
	return sessionState{
		Moves:    s.moves,
		Pointer:  s.dial.Pointer(),
		Position: s.dial.Position(),
		Result:   s.result,
	}
}
