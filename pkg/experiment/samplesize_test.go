package experiment

import "testing"

func TestCalculateSampleSize(t *testing.T) {
	tests := []struct {
		name         string
		baselineRate float64
		mde          float64
		want         int
	}{
		{name: "5% baseline, 20% relative lift", baselineRate: 0.05, mde: 0.2, want: 8149},
		{name: "10% baseline, 10% relative lift", baselineRate: 0.1, mde: 0.1, want: 14735},
		{name: "2% baseline, 50% relative lift", baselineRate: 0.02, mde: 0.5, want: 3821},
		{name: "50% baseline, 10% relative lift", baselineRate: 0.5, mde: 0.1, want: 1563},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSampleSize(tt.baselineRate, tt.mde, 0.8, 0.05)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculateSampleSize_IgnoresPowerAndAlpha(t *testing.T) {
	// The z-scores are fixed constants: different power and alpha inputs
	// must not change the result.
	base := CalculateSampleSize(0.05, 0.2, 0.8, 0.05)
	other := CalculateSampleSize(0.05, 0.2, 0.99, 0.001)

	if base != other {
		t.Errorf("expected identical results, got %d and %d", base, other)
	}
}

func TestCalculateSampleSize_SmallerEffectNeedsMoreSamples(t *testing.T) {
	small := CalculateSampleSize(0.05, 0.1, 0.8, 0.05)
	large := CalculateSampleSize(0.05, 0.5, 0.8, 0.05)

	if small <= large {
		t.Errorf("expected a smaller effect to need more samples: %d vs %d", small, large)
	}
}
