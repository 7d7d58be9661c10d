package lineshapes

import (
	"math"
	"math/cmplx"
)

// wofz evaluates the Faddeeva function w(z) = exp(−z²)·erfc(−iz) for
// Im(z) ≥ 0, using Humlicek's w4 rational approximations (J. Quant.
// Spectrosc. Radiat. Transfer 27, 437 (1982)).
//
// The upper half-plane splits into four regions on s = |Re z| + Im z;
// each gets its own rational approximant in t = i·conj(z)... precisely
// t = complex(Im z, −Re z). Relative accuracy is about 1e-4 across the
// whole domain, which is ample for lineshape evaluation.
func wofz(z complex128) complex128 {
	x, y := real(z), imag(z)
	t := complex(y, -x)
	s := math.Abs(x) + y

	switch {
	case s >= 15:
		// Region I: single-pole approximation.
		return t * 0.5641896 / (0.5 + t*t)

	case s >= 5.5:
		// Region II.
		u := t * t

		return t * (1.410474 + u*0.5641896) / (0.75 + u*(3.0+u))

	case y >= 0.195*math.Abs(x)-0.176:
		// Region III.
		return (16.4955 + t*(20.20933+t*(11.96482+t*(3.778987+t*0.5642236)))) /
			(16.4955 + t*(38.82363+t*(39.27121+t*(21.69274+t*(6.699398+t)))))

	default:
		// Region IV: near the real axis, where the exponential term of
		// w(z) must be restored explicitly.
		u := t * t
		num := t * (36183.31 - u*(3321.9905-u*(1540.787-u*(219.0313-u*(35.76683-u*(1.320522-u*0.56419))))))
		den := 32066.6 - u*(24322.84-u*(9022.228-u*(2186.181-u*(364.2191-u*(61.57037-u*(1.841439-u))))))

		return cmplx.Exp(u) - num/den
	}
}
