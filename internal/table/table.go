// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// An IntegrityError reports malformed calibration data, detected when loading
// the embedded literal or when fitting splines over its columns. It is fatal
// and load-time only; a correctly shipped table never triggers it.
type IntegrityError struct {
	Line   int    // 1-based line within the data literal, or 0 if not line-specific
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("calibration data line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("calibration data: %s", e.Reason)
}

// A Sample relates one stellar effective temperature to its bolometric
// correction, together with the matching B-V color index and log10 temperature.
type Sample struct {
	BV      float64 // B-V color index
	LogTeff float64 // log10 of the effective temperature
	BC      float64 // bolometric correction in V band, in magnitudes
	Teff    float64 // effective temperature in Kelvin
}

// A Table is an ordered, immutable set of calibration samples sorted by
// ascending temperature. Built once at startup and shared read-only by all
// lookups; column accessors return fresh copies.
type Table struct {
	samples []Sample
}

// Largest allowed mismatch between the stored log10 temperature column and
// log10 of the temperature column. The literal rounds temperatures to whole
// Kelvin and logarithms to four decimals; the combined rounding reaches
// 1.4e-4 on the coolest rows.
const logTeffTol = 2.5e-4

// New loads the embedded calibration table. Idempotent: repeated calls yield
// structurally identical tables.
func New() (*Table, error) { return Parse(bcData) }

// Parse builds a table from rows of four whitespace-separated columns
// (B-V, log10(T), BC, T), one sample per line. Blank lines and lines starting
// with # are skipped. Returns an *IntegrityError naming the offending line on
// malformed input.
func Parse(data string) (*Table, error) {
	lines := strings.Split(data, "\n")
	samples := make([]Sample, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 4 {
			return nil, &IntegrityError{Line: i + 1, Reason: fmt.Sprintf("expected 4 columns, got %d", len(fields))}
		}
		var row [4]float64
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &IntegrityError{Line: i + 1, Reason: fmt.Sprintf("column %d: invalid number %q", j+1, f)}
			}
			row[j] = v
		}
		samples = append(samples, Sample{BV: row[0], LogTeff: row[1], BC: row[2], Teff: row[3]})
	}
	return FromSamples(samples)
}

// FromSamples builds a table from pre-assembled samples, applying the same
// validation as Parse. The input is copied and re-sorted by ascending
// temperature; temperatures must be positive and pairwise distinct, all values
// finite, and the log10 temperature column consistent with the temperature
// column to printed precision. The stored logarithm is replaced by the exact
// recomputed value so that the T and log-T axes describe identical physics.
func FromSamples(samples []Sample) (*Table, error) {
	if len(samples) < 2 {
		return nil, &IntegrityError{Reason: fmt.Sprintf("need at least 2 samples, got %d", len(samples))}
	}
	s := make([]Sample, len(samples))
	copy(s, samples)
	sort.Slice(s, func(i, j int) bool { return s[i].Teff < s[j].Teff })

	for i := range s {
		if math.IsNaN(s[i].Teff) || math.IsInf(s[i].Teff, 0) || s[i].Teff <= 0 {
			return nil, &IntegrityError{Reason: fmt.Sprintf("invalid temperature %g K", s[i].Teff)}
		}
		if math.IsNaN(s[i].BV) || math.IsInf(s[i].BV, 0) || math.IsNaN(s[i].BC) || math.IsInf(s[i].BC, 0) {
			return nil, &IntegrityError{Reason: fmt.Sprintf("non-finite values in sample at %g K", s[i].Teff)}
		}
		exact := math.Log10(s[i].Teff)
		if math.Abs(s[i].LogTeff-exact) > logTeffTol {
			return nil, &IntegrityError{Reason: fmt.Sprintf("log temperature %g inconsistent with %g K", s[i].LogTeff, s[i].Teff)}
		}
		s[i].LogTeff = exact
		if i > 0 && s[i].Teff <= s[i-1].Teff {
			return nil, &IntegrityError{Reason: fmt.Sprintf("duplicate temperature %g K", s[i].Teff)}
		}
	}
	return &Table{samples: s}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.samples) }

// Sample returns the i-th sample in ascending temperature order.
func (t *Table) Sample(i int) Sample { return t.samples[i] }

// Teffs returns a copy of the temperature column, ascending.
func (t *Table) Teffs() []float64 { return t.column(func(s Sample) float64 { return s.Teff }) }

// LogTeffs returns a copy of the log10 temperature column, ascending.
func (t *Table) LogTeffs() []float64 { return t.column(func(s Sample) float64 { return s.LogTeff }) }

// BVs returns a copy of the B-V column in table order, i.e. non-increasing
// for physically plausible data since hotter stars have lower B-V.
func (t *Table) BVs() []float64 { return t.column(func(s Sample) float64 { return s.BV }) }

// BCs returns a copy of the bolometric correction column in table order.
func (t *Table) BCs() []float64 { return t.column(func(s Sample) float64 { return s.BC }) }

func (t *Table) column(f func(Sample) float64) []float64 {
	col := make([]float64, len(t.samples))
	for i, s := range t.samples {
		col[i] = f(s)
	}
	return col
}
