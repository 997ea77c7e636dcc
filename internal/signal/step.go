package signal

import "fmt"

// Step switches from Pre to Post at StepTime.
type Step struct {
	Pre      float64
	Post     float64
	StepTime float64
}

// UnitStep is a 0-to-1 step at t=0.
func UnitStep() Step { return Step{Pre: 0, Post: 1, StepTime: 0} }

func (s Step) At(t float64) float64 {
	if t < s.StepTime {
		return s.Pre
	}
	return s.Post
}

func (s Step) Name() string { return "Step" }

func (s Step) String() string {
	return fmt.Sprintf("Step(pre=%g, post=%g, at=%g)", s.Pre, s.Post, s.StepTime)
}

// Impulse holds Amplitude for Duration starting at Start and Rest otherwise.
type Impulse struct {
	Rest      float64
	Amplitude float64
	Start     float64
	Duration  float64
}

// UnitImpulse is a one-second unit pulse at t=0 over a zero resting level.
func UnitImpulse() Impulse { return Impulse{Rest: 0, Amplitude: 1, Start: 0, Duration: 1} }

func (i Impulse) At(t float64) float64 {
	if t < i.Start || t > i.Start+i.Duration {
		return i.Rest
	}
	return i.Amplitude
}

func (i Impulse) Name() string { return "Impulse" }

func (i Impulse) String() string {
	return fmt.Sprintf("Impulse(amplitude=%g, start=%g, duration=%g, rest=%g)",
		i.Amplitude, i.Start, i.Duration, i.Rest)
}
