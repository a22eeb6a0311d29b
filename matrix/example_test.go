package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/glayout/matrix"
)

// ExampleDense_Row reads the coordinates of one vertex from a 3×2 position matrix.
func ExampleDense_Row() {
	pos, err := matrix.NewDenseFrom([][]float64{
		{0.0, 0.5},
		{1.0, 0.25},
		{0.5, 1.0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	row, _ := pos.Row(1)
	fmt.Println(row)

	_, err = pos.Row(3)
	fmt.Println(err)
	fmt.Print(pos)

	// Output:
	// [1 0.25]
	// Dense.Row(3,0): matrix: index out of range
	// [0, 0.5]
	// [1, 0.25]
	// [0.5, 1]
}
