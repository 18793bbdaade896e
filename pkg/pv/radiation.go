package pv

import "math"

// BlackbodyRadiance evaluates Planck's law at wavelength lambda (m) and
// temperature t (K). The result is a spectral power density in W/(m²·m).
func BlackbodyRadiance(lambda, t float64) float64 {
	return planck(lambda, t)
}

// SpectralRadiance evaluates Planck's law for every wavelength in l (m) at
// temperature t (K). The returned slice has the same length and order as l;
// l itself is not modified.
func SpectralRadiance(l []float64, t float64) Values {
	out := make(Values, len(l))
	for i, lambda := range l {
		out[i] = planck(lambda, t)
	}
	return out
}

func planck(lambda, t float64) float64 {
	return 2 * Planck * SpeedOfLight * SpeedOfLight / math.Pow(lambda, 5) /
		math.Expm1(Planck*SpeedOfLight/(lambda*Boltzmann*t))
}

// AirMass returns the relative optical air mass for a sun angle theta in
// degrees from zenith. It is singular at 90°.
func AirMass(theta float64) float64 {
	return 1 / math.Cos(theta*math.Pi/180)
}
