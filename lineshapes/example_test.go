package lineshapes_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlfit/lineshapes"
)

// ExampleGaussian prints the height of a unit-area gaussian at its
// center: 1/(sigma·√2π).
func ExampleGaussian() {
	h := lineshapes.Gaussian(0, 1, 0, 1)
	fmt.Printf("height=%.6f expected=%.6f\n", h, 1/math.Sqrt(2*math.Pi))
	// Output:
	// height=0.398942 expected=0.398942
}

// ExampleLorentzian shows the exact half-maximum crossing at one sigma
// from the center — the reason the lorentzian fwhm factor is 2.0.
func ExampleLorentzian() {
	peak := lineshapes.Lorentzian(0, 1, 0, 0.5)
	half := lineshapes.Lorentzian(0.5, 1, 0, 0.5)
	fmt.Printf("ratio=%.2f\n", half/peak)
	// Output:
	// ratio=0.50
}
