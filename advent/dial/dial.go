// Package dial simulates the safe dial from day 1: a pointer on a circular
// scale numbered 0 through 99 that is turned left and right by a list of
// rotation directives.
package dial

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Size is the number of positions on the dial.
	Size = 100
	// Start is where the pointer rests before the first rotation.
	Start = 50
)

// A Direction is the way a directive turns the dial.
type Direction int8

const (
	Left  Direction = iota + 1 // toward higher numbers
	Right                      // toward lower numbers
)

// ParseDirection maps 'L' and 'R' to a Direction.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// A Directive is a single rotation: a direction and a number of clicks.
// Distances may exceed Size, in which case the dial wraps more than once.
type Directive struct {
	Dir      Direction
	Distance int
}

// String formats d the way it appears in puzzle input (for example, "L30").
func (d Directive) String() string {
	return d.Dir.String() + strconv.Itoa(d.Distance)
}

// ParseDirective parses a line such as "R1000". It reports false if the
// first byte is not a direction or the rest is not a non-negative base-10
// integer that fits in 32 bits.
func ParseDirective(line string) (Directive, bool) {
	if line == "" {
		return Directive{}, false
	}
	dir, ok := ParseDirection(line[0])
	if !ok {
		return Directive{}, false
	}
	n, err := strconv.ParseInt(line[1:], 10, 32)
	if err != nil || n < 0 {
		return Directive{}, false
	}
	return Directive{Dir: dir, Distance: int(n)}, true
}

// Lines trims surrounding whitespace from input and splits it into lines.
func Lines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Parse returns the directives in input, in order.
// Lines that ParseDirective rejects are skipped.
func Parse(input string) []Directive {
	var ds []Directive
	for _, line := range Lines(input) {
		if d, ok := ParseDirective(line); ok {
			ds = append(ds, d)
		}
	}
	return ds
}

// A Dial tracks the pointer and how many times it has reached 0.
//
// The position is kept as an unbounded integer; only its residue mod Size
// is visible on the dial.
type Dial struct {
	pos       int
	crossings int
}

// New returns a Dial pointing at Start.
func New() *Dial {
	return &Dial{pos: Start}
}

// Apply turns the dial by d and returns the number of times the pointer
// passed through or stopped on 0 during the turn.
func (dl *Dial) Apply(d Directive) int {
	var n int
	switch d.Dir {
	case Left:
		// Clicks visit pos+1 ... pos+Distance.
		n = floorDiv(dl.pos+d.Distance, Size) - floorDiv(dl.pos, Size)
		dl.pos += d.Distance % Size
	case Right:
		// Clicks visit pos-1 ... pos-Distance.
		n = floorDiv(dl.pos-1, Size) - floorDiv(dl.pos-d.Distance-1, Size)
		dl.pos -= d.Distance % Size
	}
	dl.crossings += n
	return n
}

// Position returns the raw, unnormalized position.
func (dl *Dial) Position() int { return dl.pos }

// Pointer returns the number the dial points at, in [0, Size).
func (dl *Dial) Pointer() int { return floorMod(dl.pos, Size) }

// AtZero reports whether the dial points at 0.
func (dl *Dial) AtZero() bool { return dl.Pointer() == 0 }

// Crossings returns the total number of times the pointer has reached 0
// while turning.
func (dl *Dial) Crossings() int { return dl.crossings }

// floorDiv divides rounding toward negative infinity.
// (Go's / truncates toward zero.)
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
