package config

import "sort"

var Presets = map[string]*Case{
	"silicon_junction": {
		Name: "silicon_junction", Formula: "junction_voltage",
		Params: map[string]float64{"na": DefaultDoping, "nd": DefaultDoping, "ni": DefaultIntrinsic, "t": DefaultTemperature},
	},
	"silicon_depletion": {
		Name: "silicon_depletion", Formula: "depletion_width",
		Params: map[string]float64{"na": 1e16, "nd": 1e16, "vbi": 0.714},
	},
	"gaas_depletion": {
		Name: "gaas_depletion", Formula: "depletion_width",
		Params: map[string]float64{"na": 1e17, "nd": 1e17, "vbi": 1.2, "eps_r": 12.9},
	},
	"electron_diffusion": {
		Name: "electron_diffusion", Formula: "diffusion_current_density",
		Params: map[string]float64{"de": 36, "dn": 1e16, "dx": 1e-4},
	},
	"electron_drift": {
		Name: "electron_drift", Formula: "drift_current_density",
		Params: map[string]float64{"n": 1e16, "mu": 1350, "e": 10},
	},
	"sun_peak": {
		Name: "sun_peak", Formula: "blackbody_radiance",
		Params: map[string]float64{"lambda": 500e-9, "t": DefaultSunTemp},
	},
	"am0": {
		Name: "am0", Formula: "air_mass",
		Params: map[string]float64{"theta": 0},
	},
	"am1.5": {
		Name: "am1.5", Formula: "air_mass",
		Params: map[string]float64{"theta": 48.19},
	},
	"silicon_voc": {
		Name: "silicon_voc", Formula: "open_circuit_voltage",
		Params: map[string]float64{"jph": 35, "jo": DefaultSaturationJo, "t": DefaultTemperature},
	},
	"reference_cell": {
		Name: "reference_cell", Formula: "efficiency",
		Params: map[string]float64{"ump": 0.5, "imp": 2.0, "h": 0.1, "w": 0.1},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Case {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Params = make(map[string]float64, len(p.Params))
	for k, v := range p.Params {
		c.Params[k] = v
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
