// Package element implements discrete-time plant elements used as stand-ins
// for physical actuators, sensors, and processes in control-loop testing.
//
// Every element consumes one input sample per Step call and produces one
// output sample, advancing its internal state deterministically. The catalog
// is closed: PT0 (transport delay), PT1 (first-order lag), PT2 (second-order
// lag/oscillator) and Hysteresis (two-state switching nonlinearity). All of
// them satisfy the Element interface, which adds value semantics (Clone,
// Equal) and a stable kind name on top of the per-sample transfer.
//
// Stepping never fails. Out-of-range inputs saturate through whichever
// branch or segment applies, the way a physical plant would. All invalid
// configurations are rejected at construction time instead.
package element
