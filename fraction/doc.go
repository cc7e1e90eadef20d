// Package fraction approximates real numbers with simple fractions for display.
//
// Approximate searches denominators in increasing order: starting from 1/1 it raises the
// numerator while the candidate is below the target and otherwise moves to the next
// denominator with the nearest integer numerator, stopping as soon as the candidate is
// within the tolerance. This is not a continued-fraction method and does not guarantee
// the smallest possible denominator, but for display purposes its results are the
// familiar ones:
//
//	f, _ := fraction.Approximate(0.75)  // 3/4
//	f, _ = fraction.Approximate(-2.5)   // 5/2, the sign is dropped
//	f, _ = fraction.Approximate(math.Pi) // 355/113
//
// The search is bounded by a denominator ceiling and an iteration ceiling. When either is
// exhausted before the tolerance is met, Approximate returns an error wrapping
// errs.ErrApproximationNotConverged instead of looping further.
//
// # Configuration
//
//   - WithTolerance: maximum absolute difference between the fraction and |value| (default 1e-6)
//   - WithMaxDenominator: largest denominator tried (default 10,000,000)
//   - WithMaxIterations: loop step budget (default 50,000,000)
package fraction
