package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/controlbox/internal/control"
	"github.com/san-kum/controlbox/internal/element"
	"github.com/san-kum/controlbox/internal/metrics"
	"github.com/san-kum/controlbox/internal/signal"
	"github.com/san-kum/controlbox/internal/sim"
)

// identity builds a lag with zero time constant and unit gain, which passes
// every sample through unchanged.
func identity(dt float64) element.Element {
	e, err := element.NewPT1(dt, 0, 1.0)
	Expect(err).NotTo(HaveOccurred())
	return e
}

type recordingObserver struct {
	times []float64
}

func (r *recordingObserver) OnStep(t, u, y float64) {
	r.times = append(r.times, t)
}

var _ = Describe("Runner", func() {
	var cfg sim.Config

	BeforeEach(func() {
		cfg = sim.Config{Dt: 0.25, Duration: 1.0}
	})

	Describe("open-loop runs", func() {
		It("samples the source on the configured grid", func() {
			r := sim.New(identity(cfg.Dt), signal.Constant(2.0))

			result, err := r.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Times).To(Equal([]float64{0, 0.25, 0.5, 0.75}))
			Expect(result.Inputs).To(HaveEach(2.0))
			Expect(result.Outputs).To(HaveEach(2.0))
		})

		It("records the step input as seen by the plant", func() {
			r := sim.New(identity(cfg.Dt), signal.Step{Pre: 0, Post: 1, StepTime: 0.5})

			result, err := r.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Inputs).To(Equal([]float64{0, 0, 1, 1}))
		})

		It("rejects a non-positive dt", func() {
			r := sim.New(identity(0.25), signal.Constant(1))

			_, err := r.Run(context.Background(), sim.Config{Dt: 0, Duration: 1})
			Expect(err).To(MatchError(ContainSubstring("dt must be positive")))
		})

		It("rejects a non-positive duration", func() {
			r := sim.New(identity(0.25), signal.Constant(1))

			_, err := r.Run(context.Background(), sim.Config{Dt: 0.25, Duration: -1})
			Expect(err).To(MatchError(ContainSubstring("duration must be positive")))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			r := sim.New(identity(cfg.Dt), signal.Constant(1))
			result, err := r.Run(ctx, cfg)
			Expect(err).To(MatchError(context.Canceled))
			Expect(result.Times).To(BeEmpty())
		})
	})

	Describe("metrics and observers", func() {
		It("reduces metrics into the result", func() {
			r := sim.New(identity(cfg.Dt), signal.Constant(3.0))
			r.AddMetric(metrics.NewSteadyStateError(3.0))

			result, err := r.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Metrics).To(HaveKeyWithValue("steady_state_error", 0.0))
		})

		It("resets metrics between runs", func() {
			r := sim.New(identity(cfg.Dt), signal.Constant(1.0))
			m := metrics.NewOvershoot(0.5)
			r.AddMetric(m)

			_, err := r.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Value()).To(BeNumerically(">", 0))

			r2 := sim.New(identity(cfg.Dt), signal.Constant(0.2))
			r2.AddMetric(m)
			result, err := r2.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Metrics["overshoot"]).To(BeZero())
		})

		It("notifies observers once per step", func() {
			obs := &recordingObserver{}
			r := sim.New(identity(cfg.Dt), signal.Constant(1))
			r.AddObserver(obs)

			result, err := r.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(obs.times).To(Equal(result.Times))
		})
	})

	Describe("closed-loop runs", func() {
		It("drives a lag to the setpoint with PI control", func() {
			plant, err := element.NewPT1(0.125, 1.0, 1.0)
			Expect(err).NotTo(HaveOccurred())

			r := sim.New(plant, signal.Constant(5.0))
			pid := control.NewPID(2.0, 1.0, 0)

			result, err := r.RunClosedLoop(context.Background(), sim.Config{Dt: 0.125, Duration: 24}, pid)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Outputs[len(result.Outputs)-1]).To(BeNumerically("~", 5.0, 0.05))
		})

		It("behaves like an open-loop run with the pass-through controller on an integrating error", func() {
			plant, err := element.NewPT1(0.25, 0.5, 1.0)
			Expect(err).NotTo(HaveOccurred())

			r := sim.New(plant, signal.Constant(1.0))
			result, err := r.RunClosedLoop(context.Background(), cfg, control.NewNone())
			Expect(err).NotTo(HaveOccurred())

			// u = setpoint - y, so the loop follows u(k) = 1 - y(k-1).
			Expect(result.Inputs[0]).To(Equal(1.0))
			for i := 1; i < len(result.Inputs); i++ {
				Expect(result.Inputs[i]).To(Equal(1.0 - result.Outputs[i-1]))
			}
		})

		It("resets the controller before stepping", func() {
			plant := identity(cfg.Dt)
			pid := control.NewPID(1.0, 1.0, 0)
			pid.Compute(100, 0)
			pid.Compute(100, 1)

			r := sim.New(plant, signal.Constant(1.0))
			result, err := r.RunClosedLoop(context.Background(), cfg, pid)
			Expect(err).NotTo(HaveOccurred())
			// A fresh controller starts proportional-only: u(0) = Kp * 1.
			Expect(result.Inputs[0]).To(Equal(1.0))
		})
	})
})
