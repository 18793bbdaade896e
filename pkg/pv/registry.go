package pv

import (
	"fmt"
	"sort"
)

// Param describes one input of a Formula.
type Param struct {
	Name       string
	Unit       string
	Default    float64
	HasDefault bool
}

// Formula is a named scalar formula with documented inputs.
type Formula struct {
	Name   string
	Unit   string
	Params []Param
	fn     func(args []float64) float64
}

func (f *Formula) required() int {
	n := 0
	for _, p := range f.Params {
		if !p.HasDefault {
			n++
		}
	}
	return n
}

// Call evaluates f with positional args. Trailing parameters that carry a
// default may be omitted.
func (f *Formula) Call(args ...float64) (float64, error) {
	if len(args) < f.required() || len(args) > len(f.Params) {
		return 0, &ArityError{Formula: f.Name, Min: f.required(), Max: len(f.Params), Got: len(args)}
	}
	full := make([]float64, len(f.Params))
	copy(full, args)
	for i := len(args); i < len(f.Params); i++ {
		full[i] = f.Params[i].Default
	}
	return f.fn(full), nil
}

// CallNamed evaluates f with args keyed by parameter name. Missing
// parameters fall back to their default; keys that name no parameter are
// rejected.
func (f *Formula) CallNamed(args map[string]float64) (float64, error) {
	full := make([]float64, len(f.Params))
	for i, p := range f.Params {
		v, ok := args[p.Name]
		switch {
		case ok:
			full[i] = v
		case p.HasDefault:
			full[i] = p.Default
		default:
			return 0, fmt.Errorf("%w: %s requires %q", ErrMissingParam, f.Name, p.Name)
		}
	}
	for _, key := range sortedKeys(args) {
		if !f.hasParam(key) {
			return 0, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, f.Name, key)
		}
	}
	return f.fn(full), nil
}

func (f *Formula) hasParam(name string) bool {
	for _, p := range f.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (f *Formula) clone() *Formula {
	c := *f
	c.Params = make([]Param, len(f.Params))
	copy(c.Params, f.Params)
	return &c
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Registry maps formula names to scalar formulas. It is not modified after
// NewRegistry returns and may be shared between goroutines.
type Registry struct {
	formulas map[string]*Formula
}

func NewRegistry() *Registry {
	r := &Registry{formulas: make(map[string]*Formula)}

	r.add("junction_voltage", "V", func(a []float64) float64 {
		return JunctionVoltage(a[0], a[1], a[2], a[3])
	}, Param{Name: "na", Unit: "1/cm3"}, Param{Name: "nd", Unit: "1/cm3"},
		Param{Name: "ni", Unit: "1/cm3"}, Param{Name: "t", Unit: "K"})

	r.add("depletion_width", "um", func(a []float64) float64 {
		return DepletionWidthPermittivity(a[0], a[1], a[2], a[3])
	}, Param{Name: "na", Unit: "1/cm3"}, Param{Name: "nd", Unit: "1/cm3"},
		Param{Name: "vbi", Unit: "V"},
		Param{Name: "eps_r", Default: SiliconPermittivity, HasDefault: true})

	r.add("diffusion_current_density", "A/cm2", func(a []float64) float64 {
		return DiffusionCurrentDensity(a[0], a[1], a[2])
	}, Param{Name: "de", Unit: "cm2/s"}, Param{Name: "dn", Unit: "1/cm3"},
		Param{Name: "dx", Unit: "cm"})

	r.add("drift_current_density", "A/cm2", func(a []float64) float64 {
		return DriftCurrentDensity(a[0], a[1], a[2])
	}, Param{Name: "n", Unit: "1/cm3"}, Param{Name: "mu", Unit: "cm2/Vs"},
		Param{Name: "e", Unit: "V/cm"})

	r.add("blackbody_radiance", "W/(m2*m)", func(a []float64) float64 {
		return BlackbodyRadiance(a[0], a[1])
	}, Param{Name: "lambda", Unit: "m"}, Param{Name: "t", Unit: "K"})

	r.add("air_mass", "", func(a []float64) float64 {
		return AirMass(a[0])
	}, Param{Name: "theta", Unit: "deg"})

	r.add("thermal_voltage", "V", func(a []float64) float64 {
		return ThermalVoltage(a[0])
	}, Param{Name: "t", Unit: "K"})

	r.add("open_circuit_voltage", "V", func(a []float64) float64 {
		return OpenCircuitVoltage(a[0], a[1], a[2])
	}, Param{Name: "jph", Unit: "mA/cm2"}, Param{Name: "jo", Unit: "mA/cm2"},
		Param{Name: "t", Unit: "K"})

	r.add("efficiency", "", func(a []float64) float64 {
		return Efficiency(a[0], a[1], a[2], a[3])
	}, Param{Name: "ump", Unit: "V"}, Param{Name: "imp", Unit: "A"},
		Param{Name: "h", Unit: "m"}, Param{Name: "w", Unit: "m"})

	return r
}

func (r *Registry) add(name, unit string, fn func([]float64) float64, params ...Param) {
	r.formulas[name] = &Formula{Name: name, Unit: unit, Params: params, fn: fn}
}

// Get returns a copy of the named formula. Changes to the copy do not
// affect the registry.
func (r *Registry) Get(name string) (*Formula, error) {
	f, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return f.clone(), nil
}

func (r *Registry) lookup(name string) (*Formula, error) {
	f, ok := r.formulas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormula, name)
	}
	return f, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formulas))
	for name := range r.formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Eval(name string, args ...float64) (float64, error) {
	f, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	return f.Call(args...)
}

func (r *Registry) EvalNamed(name string, args map[string]float64) (float64, error) {
	f, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	return f.CallNamed(args)
}
