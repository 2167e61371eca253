package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cespare/advent/advent/dial"
	"github.com/kr/pretty"
)

func TestDay1(t *testing.T) {
	want := dial.Result{Landings: 3, Crossings: 6}
	for _, cfg := range []*config{
		{inputs: map[string]string{}},
		{inputs: map[string]string{}, verbose: true},
	} {
		got, err := day1(cfg, []string{"testdata/day1.txt"}, strings.NewReader(""))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("verbose=%t: got %+v; want %+v", cfg.verbose, got, want)
		}
	}

	got, err := day1(&config{}, nil, strings.NewReader("L20\nR30\nL100\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (dial.Result{Crossings: 1}); got != want {
		t.Errorf("stdin: got %+v; want %+v", got, want)
	}
}

func TestSession(t *testing.T) {
	s := newSession()
	var buf bytes.Buffer
	for _, line := range []string{"R50", "", "bogus", "L100", "  R5 "} {
		if s.handle(line, &buf) {
			t.Fatalf("handle(%q) ended the session", line)
		}
	}
	want := sessionState{
		Moves:    3,
		Pointer:  95,
		Position: -5,
		Result:   dial.Result{Landings: 2, Crossings: 2},
	}
	if diff := pretty.Diff(s.state(), want); len(diff) > 0 {
		t.Errorf("state diff: %v", diff)
	}
	if out := buf.String(); !strings.Contains(out, `ignoring "bogus"`) {
		t.Errorf("output does not mention the bad line:\n%s", out)
	}

	buf.Reset()
	s.handle("state", &buf)
	if !strings.Contains(buf.String(), "Landings:") {
		t.Errorf("state output missing result:\n%s", buf.String())
	}

	s.handle("reset", &buf)
	if diff := pretty.Diff(s.state(), sessionState{Pointer: dial.Start, Position: dial.Start}); len(diff) > 0 {
		t.Errorf("after reset: %v", diff)
	}
	if !s.handle("quit", &buf) {
		t.Error("quit did not end the session")
	}
}
