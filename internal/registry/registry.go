// Package registry builds elements, signals and controllers by name from a
// run configuration.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/controlbox/internal/config"
	"github.com/san-kum/controlbox/internal/control"
	"github.com/san-kum/controlbox/internal/element"
	"github.com/san-kum/controlbox/internal/signal"
)

type Registry struct {
	elements    map[string]func(*config.Config) (element.Element, error)
	signals     map[string]func(*config.Config) (signal.Signal, error)
	controllers map[string]func(*config.Config) (control.Controller, error)
}

func New() *Registry {
	r := &Registry{
		elements:    make(map[string]func(*config.Config) (element.Element, error)),
		signals:     make(map[string]func(*config.Config) (signal.Signal, error)),
		controllers: make(map[string]func(*config.Config) (control.Controller, error)),
	}

	r.elements["pt0"] = func(cfg *config.Config) (element.Element, error) {
		return element.NewPT0(cfg.Dt, cfg.Plant.Delay, cfg.Plant.Kp)
	}
	r.elements["pt1"] = func(cfg *config.Config) (element.Element, error) {
		return element.NewPT1(cfg.Dt, cfg.Plant.T1, cfg.Plant.Kp)
	}
	r.elements["pt2"] = func(cfg *config.Config) (element.Element, error) {
		if cfg.Plant.Omega != 0 || cfg.Plant.Damping != 0 {
			return element.NewPT2(cfg.Dt, cfg.Plant.Omega, cfg.Plant.Damping, cfg.Plant.Kp)
		}
		return element.NewPT2FromTimeConstants(cfg.Dt, cfg.Plant.T1, cfg.Plant.T2, cfg.Plant.Kp)
	}
	r.elements["hysteresis"] = func(cfg *config.Config) (element.Element, error) {
		p := cfg.Plant
		b := element.NewHysteresisBuilder(
			element.LinearFunc{M: p.LowerM, N: p.LowerN},
			element.LinearFunc{M: p.UpperM, N: p.UpperN},
		)
		if p.Cross {
			b.Cross()
		}
		if p.SpreadX != nil {
			b.SpreadX(*p.SpreadX)
		}
		if p.SpreadY != nil {
			b.SpreadY(*p.SpreadY)
		}
		if p.LowerX != nil {
			b.LowerX(*p.LowerX)
		}
		if p.UpperX != nil {
			b.UpperX(*p.UpperX)
		}
		if p.FromUpper {
			b.StartFromUpper()
		}
		return b.Build()
	}

	r.signals["step"] = func(cfg *config.Config) (signal.Signal, error) {
		s := cfg.Source
		return signal.Step{Pre: s.Pre, Post: s.Post, StepTime: s.StepTime}, nil
	}
	r.signals["impulse"] = func(cfg *config.Config) (signal.Signal, error) {
		s := cfg.Source
		return signal.Impulse{Rest: s.Rest, Amplitude: s.Amplitude, Start: s.Start, Duration: s.Duration}, nil
	}
	r.signals["constant"] = func(cfg *config.Config) (signal.Signal, error) {
		return signal.Constant(cfg.Source.Value), nil
	}

	r.controllers["none"] = func(cfg *config.Config) (control.Controller, error) {
		return control.NewNone(), nil
	}
	r.controllers["pid"] = func(cfg *config.Config) (control.Controller, error) {
		return control.NewPID(cfg.PID.Kp, cfg.PID.Ki, cfg.PID.Kd), nil
	}

	return r
}

func (r *Registry) Element(name string, cfg *config.Config) (element.Element, error) {
	fn, ok := r.elements[name]
	if !ok {
		return nil, fmt.Errorf("unknown element: %s (available: %v)", name, r.ListElements())
	}
	return fn(cfg)
}

func (r *Registry) Signal(name string, cfg *config.Config) (signal.Signal, error) {
	fn, ok := r.signals[name]
	if !ok {
		return nil, fmt.Errorf("unknown signal: %s (available: %v)", name, r.ListSignals())
	}
	return fn(cfg)
}

func (r *Registry) Controller(name string, cfg *config.Config) (control.Controller, error) {
	if name == "" {
		name = "none"
	}
	fn, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return fn(cfg)
}

func (r *Registry) ListElements() []string { return sortedKeys(r.elements) }
func (r *Registry) ListSignals() []string  { return sortedKeys(r.signals) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
