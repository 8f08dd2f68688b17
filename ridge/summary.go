package ridge

import "github.com/montanaflynn/stats"

// Summary condenses an evaluated ridge into a handful of scalars.
type Summary struct {
	// MaxPowerPeriod is the period at the highest-power retained point.
	MaxPowerPeriod float64
	MeanPeriod     float64
	MedianPeriod   float64
	MeanPower      float64
	MeanAmplitude  float64
}

// Summarize computes summary statistics over the retained ridge points.
func Summarize(d *Data) (Summary, error) {
	if d.Empty() {
		return Summary{}, ErrEmptyRidgeData
	}

	best := 0
	for i, p := range d.Power {
		if p > d.Power[best] {
			best = i
		}
	}

	meanPeriod, err := stats.Mean(d.Periods)
	if err != nil {
		return Summary{}, err
	}

	medianPeriod, err := stats.Median(d.Periods)
	if err != nil {
		return Summary{}, err
	}

	meanPower, err := stats.Mean(d.Power)
	if err != nil {
		return Summary{}, err
	}

	meanAmplitude, err := stats.Mean(d.Amplitude)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		MaxPowerPeriod: d.Periods[best],
		MeanPeriod:     meanPeriod,
		MedianPeriod:   medianPeriod,
		MeanPower:      meanPower,
		MeanAmplitude:  meanAmplitude,
	}, nil
}
