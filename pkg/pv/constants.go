package pv

// CODATA 2018 values.
const (
	Boltzmann          = 1.380649e-23     // J/K
	ElementaryCharge   = 1.602176634e-19  // C
	SpeedOfLight       = 2.99792458e8     // m/s
	Planck             = 6.62607015e-34   // J·s
	VacuumPermittivity = 8.8541878128e-12 // F/m
)

const (
	// SiliconPermittivity is the relative permittivity used by DepletionWidth.
	SiliconPermittivity = 11.7

	// StandardIrradiance is the STC irradiance in W/m².
	StandardIrradiance = 1000.0

	perCm3ToPerM3 = 1e6
	mToUm         = 1e6
)
