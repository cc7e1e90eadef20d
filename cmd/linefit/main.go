// Command linefit fits a least-squares line to a CSV or XLSX file and prints the equation,
// the data ranges and predictions.
//
// Usage:
//
//	linefit -input data.csv -predict 1,2.5,10
//	linefit -input data.xlsx -sheet Sheet2 -latex
//	linefit -input data.csv -snapshot data.lfs -compression s2
//	linefit -restore data.lfs -predict 42
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/linefit"
	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/equation"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/fraction"
	"github.com/arloliu/linefit/snapshot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linefit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "CSV or XLSX file with x in the first column and y in the second")
	sheet := fs.String("sheet", "", "Worksheet to read from an XLSX file (default: first sheet)")
	predict := fs.String("predict", "", "Comma separated x values to predict")
	latex := fs.Bool("latex", false, "Print the equation as LaTeX source")
	tolerance := fs.Float64("tolerance", fraction.DefaultTolerance, "Tolerance of the fraction approximation")
	snapshotFile := fs.String("snapshot", "", "Optional snapshot output file")
	compression := fs.String("compression", "zstd", "Snapshot compression: none, zstd, s2 or lz4")
	restore := fs.String("restore", "", "Load a snapshot file instead of -input")
	verbose := fs.Bool("verbose", false, "Enable verbose output")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Validate inputs
	if (*input == "") == (*restore == "") {
		fmt.Fprintf(stderr, "Error: exactly one of -input or -restore is required\n")
		return 1
	}
	xs, err := parsePredictList(*predict)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -predict: %v\n", err)
		return 1
	}
	ct, err := format.ParseCompressionType(*compression)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -compression: %v\n", err)
		return 1
	}

	style := equation.StylePlain
	if *latex {
		style = equation.StyleLaTeX
	}
	session := linefit.NewSession(linefit.WithEquationOptions(
		equation.WithStyle(style),
		equation.WithTolerance(*tolerance),
	))

	var a *linefit.Analysis
	if *restore != "" {
		if *verbose {
			fmt.Fprintf(stdout, "Restoring snapshot %s...\n", *restore)
		}
		data, readErr := os.ReadFile(*restore)
		if readErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", readErr)
			return 1
		}
		a, err = session.Restore(data)
	} else {
		if *verbose {
			fmt.Fprintf(stdout, "Reading %s...\n", *input)
		}
		var opts []dataset.ReadOption
		if *sheet != "" {
			opts = append(opts, dataset.WithSheet(*sheet))
		}
		a, err = session.LoadFile(*input, opts...)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(stdout, "Loaded %d samples (fingerprint %016x)\n\n", len(a.Samples), a.Fingerprint)
	}

	printAnalysis(stdout, a)

	for _, x := range xs {
		p, predictErr := session.Predict(x)
		if predictErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", predictErr)
			return 1
		}
		fmt.Fprintf(stdout, "Predict:   %s\n", p)
	}

	if *snapshotFile != "" {
		if err := snapshot.WriteFile(*snapshotFile, a.Samples, a.Result, snapshot.WithCompression(ct)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if *verbose {
			fmt.Fprintf(stdout, "Snapshot written to %s (%s)\n", *snapshotFile, ct)
		}
	}

	return 0
}

func printAnalysis(w io.Writer, a *linefit.Analysis) {
	fmt.Fprintf(w, "Equation:  %s\n", a.Equation)
	fmt.Fprintf(w, "Slope:     %g\n", a.Result.Slope)
	fmt.Fprintf(w, "Intercept: %g\n", a.Result.Intercept)
	fmt.Fprintf(w, "X range:   [%g, %g]\n", a.Extrema.MinX, a.Extrema.MaxX)
	fmt.Fprintf(w, "Y range:   [%g, %g]\n", a.Extrema.MinY, a.Extrema.MaxY)
	fmt.Fprintf(w, "Line:      %s\n", a.Segment)
}

// parsePredictList parses "1, 2.5,10" into its values. An empty list is allowed.
func parsePredictList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	xs := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		x, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", part)
		}
		xs = append(xs, x)
	}

	return xs, nil
}
