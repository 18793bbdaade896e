package pv

import "math"

// JunctionVoltage returns the built-in voltage (V) of a p-n junction.
// na, nd and ni are acceptor, donor and intrinsic concentrations in 1/cm³,
// t is the temperature in K.
func JunctionVoltage(na, nd, ni, t float64) float64 {
	return Boltzmann * t / ElementaryCharge * math.Log(na*nd/(ni*ni))
}

// DepletionWidth returns the depletion region width (µm) of a silicon
// junction. See DepletionWidthPermittivity.
func DepletionWidth(na, nd, vbi float64) float64 {
	return DepletionWidthPermittivity(na, nd, vbi, SiliconPermittivity)
}

// DepletionWidthPermittivity returns the depletion region width in µm for
// concentrations na, nd in 1/cm³, built-in voltage vbi in V and relative
// permittivity epsR.
func DepletionWidthPermittivity(na, nd, vbi, epsR float64) float64 {
	na *= perCm3ToPerM3
	nd *= perCm3ToPerM3
	w := math.Sqrt(2 * epsR * VacuumPermittivity / ElementaryCharge * vbi * (1/na + 1/nd))
	return w * mToUm
}
