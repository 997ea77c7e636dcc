// Package config loads and saves run configurations and ships named presets
// per element kind.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.1
	DefaultDuration = 10.0
	DefaultKp       = 1.0
	DefaultT1       = 1.0
	DefaultPIDKp    = 2.0
	DefaultPIDKi    = 0.5
	DefaultPIDKd    = 0.0
)

type Config struct {
	Element    string        `yaml:"element"`
	Signal     string        `yaml:"signal"`
	Controller string        `yaml:"controller"`
	Dt         float64       `yaml:"dt"`
	Duration   float64       `yaml:"duration"`
	Plant      PlantConfig   `yaml:"plant"`
	Source     SourceConfig  `yaml:"source"`
	PID        PIDConfig     `yaml:"pid"`
}

// PlantConfig carries the union of all element parameters; the registry
// picks the fields relevant to the selected kind. The optional pointer
// fields distinguish "unset" from zero for the hysteresis derivations.
type PlantConfig struct {
	Kp      float64 `yaml:"kp"`
	T1      float64 `yaml:"t1"`
	T2      float64 `yaml:"t2"`
	Delay   float64 `yaml:"delay"`
	Omega   float64 `yaml:"omega"`
	Damping float64 `yaml:"damping"`

	LowerM    float64  `yaml:"lower_m"`
	LowerN    float64  `yaml:"lower_n"`
	UpperM    float64  `yaml:"upper_m"`
	UpperN    float64  `yaml:"upper_n"`
	LowerX    *float64 `yaml:"lower_x"`
	UpperX    *float64 `yaml:"upper_x"`
	SpreadX   *float64 `yaml:"spread_x"`
	SpreadY   *float64 `yaml:"spread_y"`
	Cross     bool     `yaml:"cross"`
	FromUpper bool     `yaml:"from_upper"`
}

type SourceConfig struct {
	Pre       float64 `yaml:"pre"`
	Post      float64 `yaml:"post"`
	StepTime  float64 `yaml:"step_time"`
	Rest      float64 `yaml:"rest"`
	Amplitude float64 `yaml:"amplitude"`
	Start     float64 `yaml:"start"`
	Duration  float64 `yaml:"duration"`
	Value     float64 `yaml:"value"`
}

type PIDConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

func DefaultConfig() *Config {
	return &Config{
		Element:    "pt1",
		Signal:     "step",
		Controller: "none",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Plant: PlantConfig{
			Kp:      DefaultKp,
			T1:      DefaultT1,
			T2:      DefaultT1,
			Omega:   1.0,
			Damping: 1.0,
			LowerM:  1.0,
			UpperM:  1.0,
		},
		Source: SourceConfig{
			Post:      1.0,
			Amplitude: 1.0,
			Duration:  1.0,
			Value:     1.0,
		},
		PID: PIDConfig{Kp: DefaultPIDKp, Ki: DefaultPIDKi, Kd: DefaultPIDKd},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
