package dataset

import (
	"fmt"

	"github.com/arloliu/linefit/errs"
)

// Extrema holds the minimum and maximum of each coordinate across a dataset.
type Extrema struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// String returns a human-readable summary of the extrema.
func (e Extrema) String() string {
	return fmt.Sprintf("Extrema{X: [%g, %g], Y: [%g, %g]}", e.MinX, e.MaxX, e.MinY, e.MaxY)
}

// RangeX returns MaxX - MinX.
func (e Extrema) RangeX() float64 {
	return e.MaxX - e.MinX
}

// RangeY returns MaxY - MinY.
func (e Extrema) RangeY() float64 {
	return e.MaxY - e.MinY
}

// FindExtrema computes the extrema of samples in a single pass.
//
// Returns errs.ErrInsufficientData for an empty slice and errs.ErrInvalidInput if any
// sample is not finite.
func FindExtrema(samples []Sample) (Extrema, error) {
	if len(samples) == 0 {
		return Extrema{}, fmt.Errorf("%w: extrema of an empty dataset", errs.ErrInsufficientData)
	}

	first := samples[0]
	if !first.IsFinite() {
		return Extrema{}, fmt.Errorf("%w: sample 0 %s is not finite", errs.ErrInvalidInput, first)
	}

	ext := Extrema{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for i, s := range samples[1:] {
		if !s.IsFinite() {
			return Extrema{}, fmt.Errorf("%w: sample %d %s is not finite", errs.ErrInvalidInput, i+1, s)
		}
		if s.X < ext.MinX {
			ext.MinX = s.X
		}
		if s.X > ext.MaxX {
			ext.MaxX = s.X
		}
		if s.Y < ext.MinY {
			ext.MinY = s.Y
		}
		if s.Y > ext.MaxY {
			ext.MaxY = s.Y
		}
	}

	return ext, nil
}
