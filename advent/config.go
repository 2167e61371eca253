package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config is the optional INI file plus global flags.
//
//	[inputs]
//	1 = inputs/day1.txt
//
//	[interactive]
//	history = /tmp/advent_history
type config struct {
	inputs  map[string]string // day -> input file
	history string
	verbose bool
}

// loadConfig reads the INI file at path. If path is empty, advent.ini in
// the working directory is used if it exists.
func loadConfig(path string) (*config, error) {
	cfg := &config{inputs: make(map[string]string)}
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	for day, input := range file.Section("inputs") {
		if _, err := strconv.Atoi(day); err != nil {
			return nil, fmt.Errorf("config %s: bad day %q in [inputs]", path, day)
		}
		cfg.inputs[day] = input
	}
	cfg.history, _ = file.Get("interactive", "history")
	return cfg, nil
}

// readInput returns the puzzle input for day. An explicit file argument
// wins ("-" means stdin); otherwise the config's [inputs] entry is used,
// falling back to stdin.
func (cfg *config) readInput(day int, args []string, stdin io.Reader) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("need at most 1 arg (input file); got %d", len(args))
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		path = cfg.inputs[strconv.Itoa(day)]
	}
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %s", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
