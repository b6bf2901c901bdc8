package lhs_test

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/AI-Pranto/asapy-go/lhs"
)

// ExampleUniformSample
//
// Scenario:
//
//	Draw 4 stratified samples of a single variable. Sorting the column
//	shows exactly one draw per quarter of the unit interval — the even
//	coverage guarantee that plain Monte Carlo lacks.
func ExampleUniformSample() {
	s, err := lhs.UniformSample(1, 4, lhs.NewRand(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	col := make([]float64, 4)
	mat.Col(col, 0, s)
	sort.Float64s(col)
	for i, v := range col {
		lo, hi := float64(i)/4, float64(i+1)/4
		fmt.Printf("stratum [%.2f, %.2f) hit: %v\n", lo, hi, v >= lo && v < hi)
	}
	// Output:
	// stratum [0.00, 0.25) hit: true
	// stratum [0.25, 0.50) hit: true
	// stratum [0.50, 0.75) hit: true
	// stratum [0.75, 1.00) hit: true
}

// ExampleNormalSample
//
// Scenario:
//
//	Two independent stratified normal columns with different marginals;
//	the shape of the result is numSamples×numVars.
func ExampleNormalSample() {
	s, err := lhs.NormalSample(100, []float64{20, 1}, []float64{1, 0.05}, lhs.NewRand(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, c := s.Dims()
	fmt.Printf("%d samples × %d variables\n", r, c)
	// Output:
	// 100 samples × 2 variables
}
