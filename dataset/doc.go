// Package dataset holds the two-column numeric samples a regression is fitted on.
//
// It provides the Sample type, validation of the finite-value invariant, the extrema
// finder, a stable fingerprint of a sample sequence, and readers that turn CSV or XLSX
// input into samples.
//
// # Ingestion
//
// ReadCSV and ReadExcel read the first two columns of every row and keep only the rows
// where both cells parse as finite numbers. Header rows, blank lines and rows with
// malformed cells are dropped silently:
//
//	samples, err := dataset.ReadFile("measurements.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ext, err := dataset.FindExtrema(samples)
//
// All functions in this package are safe for concurrent use.
package dataset
