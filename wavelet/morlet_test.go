package wavelet

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestScaleFromPeriodMonotonic(t *testing.T) {
	sfreqs := []float64{0.1, 1, 10}

	for _, sfreq := range sfreqs {
		prev := 0.0
		for period := 1.0; period < 200; period += 3.7 {
			s := ScaleFromPeriod(period, sfreq, DefaultOmega0)
			if s <= prev {
				t.Fatalf("scale not increasing at period %v (sfreq %v): %v <= %v",
					period, sfreq, s, prev)
			}
			prev = s
		}
	}
}

func TestScalePeriodRoundTrip(t *testing.T) {
	const sfreq = 2.0

	for _, period := range []float64{3, 25, 70, 120} {
		s := ScaleFromPeriod(period, sfreq, DefaultOmega0)
		back := PeriodFromScale(s, sfreq, DefaultOmega0)
		if math.Abs(back-period) > 1e-10 {
			t.Fatalf("round trip: period %v -> scale %v -> %v", period, s, back)
		}
	}
}

func TestScaleFromPeriodNADiffers(t *testing.T) {
	admissible := ScaleFromPeriod(50, 1, DefaultOmega0)
	na := ScaleFromPeriodNA(50, 1, DefaultOmega0)

	if math.Abs(admissible-na) < 1e-9 {
		t.Fatal("expected admissible and non-admissible scales to differ")
	}
}

func TestEnvelopePeakAndDecay(t *testing.T) {
	const scale = 10.0

	peak := Envelope(0, scale)
	want := math.Pow(math.Pi, -0.25) / math.Sqrt(scale)
	if math.Abs(peak-want) > 1e-12 {
		t.Fatalf("peak = %v, want %v", peak, want)
	}

	if Envelope(5, scale) >= peak || Envelope(-5, scale) >= peak {
		t.Fatal("envelope must decay away from zero")
	}
	if math.Abs(Envelope(5, scale)-Envelope(-5, scale)) > 1e-15 {
		t.Fatal("envelope must be symmetric")
	}
}

func TestMorletModulusEqualsEnvelope(t *testing.T) {
	const scale = 7.0

	for _, offset := range []float64{-12, -3, 0, 4, 20} {
		w := Morlet(offset, scale, DefaultOmega0)
		if math.Abs(cmplx.Abs(w)-Envelope(offset, scale)) > 1e-12 {
			t.Fatalf("offset %v: |wavelet| = %v, envelope = %v",
				offset, cmplx.Abs(w), Envelope(offset, scale))
		}
	}
}

func TestSupportRadius(t *testing.T) {
	// Radius grows linearly with scale.
	r1 := SupportRadius(10, DefaultPeakFraction)
	r2 := SupportRadius(20, DefaultPeakFraction)
	if r2 <= r1 {
		t.Fatalf("radius must grow with scale: %d, %d", r1, r2)
	}

	// At the clipped radius the envelope has decayed to ~1/peakFraction
	// of the peak.
	scale := 15.0
	r := SupportRadius(scale, DefaultPeakFraction)
	ratio := Envelope(float64(r), scale) / Envelope(0, scale)
	if ratio > 1.1/DefaultPeakFraction*10 {
		t.Fatalf("envelope ratio at radius = %v, want <= ~1e-6", ratio)
	}
}

func TestCOISlope(t *testing.T) {
	// Reference value for omega0 = 2*pi.
	want := 4 * math.Pi / (math.Sqrt2 * (DefaultOmega0 + math.Sqrt(2+DefaultOmega0*DefaultOmega0)))

	if got := COISlope(DefaultOmega0); math.Abs(got-want) > 1e-15 {
		t.Fatalf("COISlope = %v, want %v", got, want)
	}

	// ~0.7 for the standard Morlet, well below 1.
	if got := COISlope(DefaultOmega0); got < 0.5 || got > 0.9 {
		t.Fatalf("COISlope = %v, outside plausible range", got)
	}
}
