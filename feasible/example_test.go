package feasible_test

import (
	"fmt"

	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/feasible"
	"github.com/feasibrush/feasibrush/raster"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Run
////////////////////////////////////////////////////////////////////////////////

// ExampleRun demonstrates driving a uniformly negative latent to completion
// under a 3×3 brush: every pixel ends up SOLID, since with a constant field
// every magnitude comparison in the selection cascade is a tie, and ties go
// to solid.
func ExampleRun() {
	full, _ := raster.FullBoolGrid(3, 3)
	br, _ := brush.NewBrush(full)

	data := make([][]float64, 5)
	for i := range data {
		row := make([]float64, 5)
		for j := range row {
			row[j] = -1
		}
		data[i] = row
	}
	L, _ := raster.FromFloat64(data)

	d, err := feasible.Run(L, br)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			label, _ := d.PixelLabel(i, j)
			if label == feasible.SolidLabel {
				fmt.Print("S")
			} else {
				fmt.Print("V")
			}
		}
		fmt.Println()
	}
	// Output:
	// SSSSS
	// SSSSS
	// SSSSS
	// SSSSS
	// SSSSS
}

////////////////////////////////////////////////////////////////////////////////
// Example: Stream with a step hook
////////////////////////////////////////////////////////////////////////////////

// ExampleStream demonstrates consuming the driver as a generator while a
// WithOnStep hook records the index of each applied action; the last index
// is the number of steps the run took.
func ExampleStream() {
	full, _ := raster.FullBoolGrid(1, 1)
	br, _ := brush.NewBrush(full)

	L, _ := raster.FromFloat64([][]float64{{5, -5}})

	steps := 0
	for res := range feasible.Stream(L, br, feasible.WithOnStep(func(st feasible.StepTrace) {
		steps = st.Step
	})) {
		if res.Err != nil {
			fmt.Println("error:", res.Err)
			return
		}
	}
	fmt.Println("steps:", steps)
	// Output:
	// steps: 2
}
