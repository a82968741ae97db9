package eeg

import "testing"

func TestSeededMockProviderIsDeterministic(t *testing.T) {
	a := NewSeededMockProvider(42).Metrics()
	b := NewSeededMockProvider(42).Metrics()

	if a != b {
		t.Errorf("same seed produced different metrics: %+v vs %+v", a, b)
	}

	c := NewSeededMockProvider(43).Metrics()
	if a == c {
		t.Error("different seeds should produce different metrics")
	}
}

func TestMockProviderRanges(t *testing.T) {
	p := NewSeededMockProvider(7)

	for i := 0; i < 1000; i++ {
		m := p.Metrics()
		checks := []struct {
			name   string
			value  float64
			lo, hi float64
		}{
			{"motivation", m.Motivation, 30, 95},
			{"resilience", m.Resilience, 35, 90},
			{"innovation", m.Innovation, 40, 92},
			{"responsibility", m.Responsibility, 25, 88},
		}
		for _, c := range checks {
			if c.value < c.lo || c.value > c.hi {
				t.Fatalf("%s = %v, outside [%v, %v]", c.name, c.value, c.lo, c.hi)
			}
		}
	}
}

func TestFixedProvider(t *testing.T) {
	p := &FixedProvider{}
	first := p.Metrics()
	second := p.Metrics()
	if first != second {
		t.Error("FixedProvider must return identical metrics on every call")
	}
}
