// Package eeg supplies the four domain-aligned EEG indicators. The real
// acquisition API is not integrated yet; MockProvider stands in behind the
// same interface and is swapped out without touching the analysis code.
package eeg

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"sbindex/internal/model"
)

// Provider supplies one set of domain-aligned EEG metrics per call,
// each value on a 0-100 scale.
type Provider interface {
	Metrics() model.EEGDomainMetrics
}

// MockProvider generates plausible metrics in fixed per-indicator ranges:
// frontal asymmetry (motivation), alpha recovery (resilience), SMR/beta
// coherence (innovation), prefrontal stability (responsibility).
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider creates a time-seeded mock provider
func NewMockProvider() *MockProvider {
	return NewSeededMockProvider(time.Now().UnixNano())
}

// NewSeededMockProvider creates a deterministic mock provider for tests
func NewSeededMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

// Metrics returns one generated indicator set. Safe for concurrent use.
func (p *MockProvider) Metrics() model.EEGDomainMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return model.EEGDomainMetrics{
		Motivation:     p.uniform(30.0, 95.0),
		Resilience:     p.uniform(35.0, 90.0),
		Innovation:     p.uniform(40.0, 92.0),
		Responsibility: p.uniform(25.0, 88.0),
	}
}

func (p *MockProvider) uniform(lo, hi float64) float64 {
	v := lo + p.rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

// FixedProvider returns the same metrics on every call
type FixedProvider struct {
	Values model.EEGDomainMetrics
}

// Metrics returns the fixed values
func (p *FixedProvider) Metrics() model.EEGDomainMetrics {
	return p.Values
}
