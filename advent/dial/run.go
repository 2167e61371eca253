package dial

// Result holds the two puzzle answers.
type Result struct {
	Landings  int // moves that ended with the pointer on 0
	Crossings int // times the pointer reached 0, counting every wrap
}

// A Step describes one applied directive.
type Step struct {
	Index     int
	Directive Directive
	Pointer   int // after the move
	Crossed   int // crossings during the move
}

// Run applies ds in order to a new Dial.
// If trace is non-nil, it is called after each move.
func Run(ds []Directive, trace func(Step)) Result {
	dl := New()
	var r Result
	for i, d := range ds {
		crossed := dl.Apply(d)
		if dl.AtZero() {
			r.Landings++
		}
		if trace != nil {
			trace(Step{
				Index:     i,
				Directive: d,
				Pointer:   dl.Pointer(),
				Crossed:   crossed,
			})
		}
	}
	r.Crossings = dl.Crossings()
	return r
}

// Solve parses input and runs it.
func Solve(input string) Result {
	return Run(Parse(input), nil)
}
