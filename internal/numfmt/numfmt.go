// Package numfmt formats magnitudes into short, fixed-width strings with a
// binary or decimal scale prefix.
package numfmt

import (
	"fmt"
)

// maxStep is the index of the largest supported prefix.
const maxStep = 5

// System describes a unit and how it scales.
type System struct {
	// Base is the step between two prefixes (1024 or 1000).
	Base float64
	// Prefixes are the scale prefixes, smallest first.
	Prefixes [maxStep + 1]string
	// Singular is the unit label used for exactly one.
	Singular string
	// Plural is the unit label used otherwise.
	Plural string
}

//nolint:gochecknoglobals // Unit systems are constants
var (
	// Bytes formats sizes with IEC prefixes.
	Bytes = System{
		Base:     1024,
		Prefixes: [maxStep + 1]string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei"},
		Singular: "B",
		Plural:   "B",
	}
	// Files formats file counts with SI prefixes.
	Files = System{
		Base:     1000,
		Prefixes: [maxStep + 1]string{"k", "M", "G", "T", "P", "E"},
		Singular: "file ",
		Plural:   "files",
	}
)

// Format renders n. Values below 1000 are printed exactly. Larger values are
// scaled to the largest prefix keeping the mantissa below 999.95 and printed
// with three significant digits.
func (s System) Format(n uint64) string {
	switch {
	case n == 1:
		return fmt.Sprintf("%5d %s", n, s.Singular)
	case n < 1000:
		return fmt.Sprintf("%5d %s", n, s.Plural)
	}

	value := float64(n)
	step := 0
	base := s.Base

	for step < maxStep && value >= base*999.95 {
		step++
		base *= s.Base
	}

	var precision int

	switch {
	case value < base*9.9995:
		precision = 3
	case value < base*99.995:
		precision = 2
	default:
		precision = 1
	}

	return fmt.Sprintf("%.*f %s%s", precision, value/base, s.Prefixes[step], s.Plural)
}

// IBytes formats a byte count with IEC prefixes.
func IBytes(n uint64) string {
	return Bytes.Format(n)
}

// SIFiles formats a file count with SI prefixes.
func SIFiles(n uint64) string {
	return Files.Format(n)
}
