package grid_test

import (
	"fmt"

	"github.com/katalvlaran/optgrow/grid"
)

// ExampleNew builds the default 150-point grid of the log-linear
// growth model and inspects its bounds.
func ExampleNew() {
	g, err := grid.New(8, 150)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("len=%d min=%g max=%g\n", len(g), g.Min(), g.Max())
	// Output:
	// len=150 min=1e-06 max=8
}

// ExampleNewShockSample draws a reproducible lognormal shock sample.
func ExampleNewShockSample() {
	a, _ := grid.NewShockSample(1, 0.1, 250, 42)
	b, _ := grid.NewShockSample(1, 0.1, 250, 42)
	fmt.Println("len:", len(a))
	fmt.Println("reproducible:", a[0] == b[0] && a[249] == b[249])
	// Output:
	// len: 250
	// reproducible: true
}
