package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

var (
	configFile = flag.String("config", "", "INI config file (default: advent.ini, if present)")
	verbose    = flag.Bool("v", false, "Trace each step to stderr")
	profile    = flag.String("fgprof", "", "Write a wall-clock profile of the solution to this file")
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	cfg.verbose = *verbose

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
			f.Close()
		}()
	}

	if err := fn(cfg, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "and the flags are:")
	flag.PrintDefaults()
}

type solution func(cfg *config, args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name like "12b" into its day and suffix.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
