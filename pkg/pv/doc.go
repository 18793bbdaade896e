// Package pv provides closed-form formulas for photovoltaic engineering.
//
// The formulas cover four areas:
//
//   - junction electrostatics: [JunctionVoltage], [DepletionWidth]
//   - carrier transport: [DiffusionCurrentDensity], [DriftCurrentDensity]
//   - radiation and geometry: [SpectralRadiance], [BlackbodyRadiance], [AirMass]
//   - cell and system performance: [ThermalVoltage], [OpenCircuitVoltage], [Efficiency]
//
// Every function is a pure mapping of float64 inputs to a float64 result.
// Units are a documented convention only and are not checked: concentrations
// are given in 1/cm³, lengths as stated per function. Passing the wrong unit
// yields a result of the wrong magnitude.
//
// # Invalid input
//
// Formulas never validate input and never return errors. Non-physical input
// (zero distance, non-positive log argument) produces NaN or ±Inf following
// IEEE-754. Use [Check] or [Values.IsValid] when a checked result is needed:
//
//	vbi, err := pv.Check(pv.JunctionVoltage(na, nd, ni, 300))
//	if errors.Is(err, pv.ErrNumericDomain) {
//	    ...
//	}
//
// # Thread Safety
//
// All functions are reentrant. The only shared data are the constants and a
// [Registry], which is read-only once built.
package pv
