package pv

import "math"

// ThermalVoltage returns kT/q in V at temperature t (K).
func ThermalVoltage(t float64) float64 {
	return Boltzmann * t / ElementaryCharge
}

// OpenCircuitVoltage returns the open-circuit voltage in V. jph and jo are
// the photocurrent and saturation current densities in the same unit
// (typically mA/cm²), t is the temperature in K.
func OpenCircuitVoltage(jph, jo, t float64) float64 {
	return Boltzmann * t / ElementaryCharge * math.Log(jph/jo+1)
}

// Efficiency returns the conversion efficiency of a cell as a fraction, from
// its max-power voltage ump (V), max-power current imp (A), height h (m) and
// width w (m), under StandardIrradiance.
func Efficiency(ump, imp, h, w float64) float64 {
	return ump * imp / (h * w) / StandardIrradiance
}
