package lineshapes

import "math"

// tiny is the positive floor applied to width parameters so a zero or
// negative width never divides by zero.
const tiny = 1e-15

// s2pi = √(2π), the gaussian normalization constant.
var s2pi = math.Sqrt(2 * math.Pi)

// Gaussian evaluates the area-normalized gaussian
//
//	amplitude / (sigma·√2π) · exp(−(x−center)² / (2·sigma²))
func Gaussian(x, amplitude, center, sigma float64) float64 {
	s := math.Max(sigma, tiny)
	d := x - center

	return amplitude / (s * s2pi) * math.Exp(-d*d/(2*s*s))
}

// Lorentzian evaluates the area-normalized lorentzian
//
//	amplitude / (π·sigma·(1 + ((x−center)/sigma)²))
func Lorentzian(x, amplitude, center, sigma float64) float64 {
	s := math.Max(sigma, tiny)
	d := (x - center) / s

	return amplitude / (math.Pi * s * (1 + d*d))
}

// Voigt evaluates the area-normalized voigt profile — the convolution
// of a gaussian and a lorentzian — with the lorentzian half-width gamma
// tied to sigma:
//
//	amplitude · Re w(z) / (sigma·√2π),  z = (x−center + i·sigma) / (sigma·√2)
//
// where w is the Faddeeva function (see wofz).
func Voigt(x, amplitude, center, sigma float64) float64 {
	s := math.Max(sigma, tiny)
	gamma := s
	z := complex((x-center)/(s*math.Sqrt2), gamma/(s*math.Sqrt2))

	return amplitude * real(wofz(z)) / (s * s2pi)
}

// Exponential evaluates amplitude · exp(−x/decay).
func Exponential(x, amplitude, decay float64) float64 {
	return amplitude * math.Exp(-x/decay)
}

// PowerLaw evaluates amplitude · x^exponent.
func PowerLaw(x, amplitude, exponent float64) float64 {
	return amplitude * math.Pow(x, exponent)
}

// Linear evaluates slope·x + intercept.
func Linear(x, slope, intercept float64) float64 {
	return slope*x + intercept
}

// Parabolic evaluates a·x² + b·x + c.
func Parabolic(x, a, b, c float64) float64 {
	return (a*x+b)*x + c
}

// Constant evaluates to c for every x.
func Constant(x, c float64) float64 {
	_ = x

	return c
}
