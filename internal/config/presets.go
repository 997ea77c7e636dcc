package config

func f(v float64) *float64 { return &v }

var Presets = map[string]map[string]*Config{
	"pt0": {
		"unity": {
			Element: "pt0", Signal: "step", Dt: 1.0, Duration: 20.0,
			Plant:  PlantConfig{Kp: 1.0, Delay: 0.0},
			Source: SourceConfig{Post: 1.0},
		},
		"lag2": {
			Element: "pt0", Signal: "step", Dt: 1.0, Duration: 20.0,
			Plant:  PlantConfig{Kp: 1.0, Delay: 2.0},
			Source: SourceConfig{Post: 1.0},
		},
	},
	"pt1": {
		"unity": {
			Element: "pt1", Signal: "step", Dt: 1.0, Duration: 20.0,
			Plant:  PlantConfig{Kp: 1.0, T1: 1.0},
			Source: SourceConfig{Post: 1.0},
		},
		"slow": {
			Element: "pt1", Signal: "step", Dt: 0.1, Duration: 30.0,
			Plant:  PlantConfig{Kp: 1.0, T1: 5.0},
			Source: SourceConfig{Post: 1.0},
		},
		"closed": {
			Element: "pt1", Signal: "step", Controller: "pid", Dt: 0.1, Duration: 20.0,
			Plant:  PlantConfig{Kp: 1.0, T1: 1.0},
			Source: SourceConfig{Post: 5.0},
			PID:    PIDConfig{Kp: 2.0, Ki: 1.0},
		},
	},
	"pt2": {
		"underdamped": {
			Element: "pt2", Signal: "step", Dt: 0.05, Duration: 30.0,
			Plant:  PlantConfig{Kp: 1.0, Omega: 1.0, Damping: 0.3},
			Source: SourceConfig{Post: 1.0},
		},
		"critical": {
			Element: "pt2", Signal: "step", Dt: 0.05, Duration: 30.0,
			Plant:  PlantConfig{Kp: 1.0, Omega: 1.0, Damping: 1.0},
			Source: SourceConfig{Post: 1.0},
		},
		"overdamped": {
			Element: "pt2", Signal: "step", Dt: 0.05, Duration: 60.0,
			Plant:  PlantConfig{Kp: 1.0, Omega: 1.0, Damping: 2.5},
			Source: SourceConfig{Post: 1.0},
		},
	},
	"hysteresis": {
		"relay": {
			Element: "hysteresis", Signal: "impulse", Dt: 0.1, Duration: 10.0,
			Plant: PlantConfig{
				LowerM: 0.0, LowerN: 0.0, UpperM: 0.0, UpperN: 1.0,
				SpreadX: f(1.0),
			},
			Source: SourceConfig{Amplitude: 2.0, Start: 2.0, Duration: 3.0},
		},
		"band": {
			Element: "hysteresis", Signal: "step", Dt: 0.1, Duration: 10.0,
			Plant: PlantConfig{
				LowerM: 0.5, LowerN: 0.0, UpperM: 1.0, UpperN: 1.0,
				Cross: true, SpreadY: f(1.0),
			},
			Source: SourceConfig{Pre: -3.0, Post: 3.0, StepTime: 5.0},
		},
	},
}

func GetPreset(elem, preset string) *Config {
	elemPresets, ok := Presets[elem]
	if !ok {
		return nil
	}
	cfg, ok := elemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(elem string) []string {
	elemPresets, ok := Presets[elem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(elemPresets))
	for name := range elemPresets {
		names = append(names, name)
	}
	return names
}
