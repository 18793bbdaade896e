package pv

// DiffusionCurrentDensity returns the diffusion current density in A/cm².
// de is the diffusivity (cm²/s), dn the concentration change (1/cm³) over the
// distance dx (cm).
func DiffusionCurrentDensity(de, dn, dx float64) float64 {
	return ElementaryCharge * de * dn / dx
}

// DriftCurrentDensity returns the drift current density in A/cm² for carrier
// density n (1/cm³), mobility mu (cm²/V·s) and field e (V/cm).
func DriftCurrentDensity(n, mu, e float64) float64 {
	return n * ElementaryCharge * mu * e
}
