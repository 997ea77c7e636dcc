package signal

// TimeRange describes the sampling grid of a run: [Start, Stop) in steps of
// Dt, in increasing time order.
type TimeRange struct {
	Start float64
	Stop  float64
	Dt    float64
}

// Steps counts the samples in the range. Zero when the range is empty or Dt
// is not positive.
func (r TimeRange) Steps() int {
	if r.Dt <= 0 || r.Stop <= r.Start {
		return 0
	}
	return int((r.Stop - r.Start) / r.Dt)
}

// Times materializes the sample instants.
func (r TimeRange) Times() []float64 {
	n := r.Steps()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.Start + float64(i)*r.Dt
	}
	return out
}
