package linefit

import (
	"fmt"
	"sync"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/regression"
	"github.com/arloliu/linefit/snapshot"
)

// Session holds the current Analysis of a front end.
//
// Loading a dataset replaces the whole Analysis in one step. A load that fails leaves the
// previous Analysis in place. Session is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	opts    []Option
	current *Analysis
}

// NewSession creates an empty session. opts apply to every Analyze call it makes.
func NewSession(opts ...Option) *Session {
	return &Session{opts: opts}
}

// Load analyzes samples and makes the result current.
func (s *Session) Load(samples []dataset.Sample) (*Analysis, error) {
	a, err := Analyze(samples, s.opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = a
	s.mu.Unlock()

	return a, nil
}

// LoadFile reads a CSV or XLSX file and loads its samples.
func (s *Session) LoadFile(path string, opts ...dataset.ReadOption) (*Analysis, error) {
	samples, err := dataset.ReadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return s.Load(samples)
}

// Current returns the current Analysis, if any.
func (s *Session) Current() (*Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != nil
}

// Predict evaluates the current fit at x.
//
// Returns errs.ErrInsufficientData when nothing is loaded and errs.ErrInvalidInput for a
// non-finite x.
func (s *Session) Predict(x float64) (regression.Prediction, error) {
	a, ok := s.Current()
	if !ok {
		return regression.Prediction{}, fmt.Errorf("%w: no dataset loaded", errs.ErrInsufficientData)
	}

	return a.Predict(x)
}

// Fingerprint returns the fingerprint of the current dataset, or false when nothing is
// loaded. Front ends compare it to skip reloading an unchanged file.
func (s *Session) Fingerprint() (uint64, bool) {
	a, ok := s.Current()
	if !ok {
		return 0, false
	}

	return a.Fingerprint, true
}

// Reset discards the current Analysis.
func (s *Session) Reset() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Snapshot encodes the current dataset and fit.
func (s *Session) Snapshot(opts ...snapshot.Option) ([]byte, error) {
	a, ok := s.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no dataset loaded", errs.ErrInsufficientData)
	}

	return snapshot.Encode(a.Samples, a.Result, opts...)
}

// Restore decodes a snapshot and loads its samples.
//
// The fit is recomputed from the restored samples rather than taken from the snapshot
// header, so the restored Analysis is always consistent with its data.
func (s *Session) Restore(data []byte) (*Analysis, error) {
	snap, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}

	return s.Load(snap.Samples)
}
