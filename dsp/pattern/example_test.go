package pattern_test

import (
	"fmt"

	"github.com/cwbudde/algo-modular/dsp/pattern"
)

func ExampleEngine() {
	e := pattern.NewEngine()
	e.Update(pattern.Params{Length: 8, Fill: 3, Accents: 1, Rotation: 1, Style: pattern.Euclidean})

	steps, accents := e.Steps(), e.Accents()
	for i := range steps {
		switch {
		case accents[i]:
			fmt.Print("X")
		case steps[i]:
			fmt.Print("x")
		default:
			fmt.Print(".")
		}
	}
	fmt.Println()

	// Output:
	// .X..x..x
}

func ExampleSequencer() {
	s := pattern.NewSequencer()
	p := pattern.Params{Length: 4, Fill: 2, Style: pattern.Linear}

	for i := 0; i < 5; i++ {
		st := s.Process(p, true, false, false)
		fmt.Println(st.Index, st.Active, st.EndOfCycle)
	}

	// Output:
	// 0 true false
	// 1 false false
	// 2 true false
	// 3 false false
	// 0 true true
}

func ExampleFormat() {
	e := pattern.NewEngine()
	e.Update(pattern.Params{Length: 16, Fill: 4, Accents: 2, Padding: 2, Style: pattern.Linear})
	fmt.Println(e)

	// Output:
	// X...x...X...x.....
}
