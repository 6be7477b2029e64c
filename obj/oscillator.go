package obj

import "math"

// Oscillator produces |sin(phase)| + Offset, advancing the phase by Step on
// every call. The phase only moves forward.
type Oscillator struct {
	Phase  float64
	Offset float64
	Step   float64
}

func NewOscillator(phase, offset, step float64) *Oscillator {
	return &Oscillator{Phase: phase, Offset: offset, Step: step}
}

// Next returns the value for the current phase, then advances it.
func (o *Oscillator) Next() float64 {
	v := math.Abs(math.Sin(o.Phase)) + o.Offset
	o.Phase += o.Step
	return v
}
