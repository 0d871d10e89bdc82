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

package bc

import (
	"fmt"
	"math"
	"gonum.org/v1/gonum/interp"
	"github.com/mlnoga/bcv/internal/table"
)

// A policy for query values outside the calibrated domain
type Policy int

const (
	PolicyReject Policy = iota // fail the call with a *DomainError
	PolicyClamp                // evaluate at the nearest bound and return a *DomainWarning
)

func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyClamp:
		return "clamp"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// A closed interval of calibrated values
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether x lies in the closed interval. False for NaN.
func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// The calibrated domain bounds per axis, plus the bolometric correction range
// and the underlying sample count, as reported by Info
type Domain struct {
	Teff    Range `json:"teff"`
	LogTeff Range `json:"logTeff"`
	BV      Range `json:"bv"`
	BC      Range `json:"bc"`
	Samples int   `json:"samples"`
}

// A Query pairs an axis tag with an ordered sequence of input values.
// Transient currency between collaborators and the engine.
type Query struct {
	Axis   Axis
	Values []float64
}

// A Corrector answers bolometric correction queries against a calibration
// table using natural cubic splines, one per query axis, fit and memoized at
// construction. The table and all fitted state are read-only afterwards, so
// any number of lookups may run concurrently without coordination.
type Corrector struct {
	tbl          *table.Table
	policy       Policy
	domain       Domain
	bvLo, bvHi   int // half-open sample bounds of the strictly monotonic B-V run
	bcOfTeff     *interp.NaturalCubic
	bcOfLogTeff  *interp.NaturalCubic
	bcOfBV       *interp.NaturalCubic
	teffOfBV     *interp.NaturalCubic
}

// New creates a Corrector over the given calibration table with the given
// out-of-domain policy. Fits all four axis splines once: bolometric correction
// over temperature, over log temperature and over B-V, plus temperature over
// B-V for the reverse lookup. The two B-V axis splines are fit over the table
// reversed into ascending B-V order, restricted to the longest strictly
// monotonic run of the B-V column; B-V queries outside that run are out of
// domain. Returns a *table.IntegrityError if any axis lacks strictly
// increasing abscissas.
func New(tbl *table.Table, policy Policy) (c *Corrector, err error) {
	if tbl==nil || tbl.Len()<2 { return nil, &table.IntegrityError{Reason: "missing calibration table"} }
	c=&Corrector{tbl: tbl, policy: policy}

	teffs, logTeffs, bcs:=tbl.Teffs(), tbl.LogTeffs(), tbl.BCs()
	if c.bcOfTeff,    err=fitSpline(AxisTeff,    teffs,    bcs); err!=nil { return nil, err }
	if c.bcOfLogTeff, err=fitSpline(AxisLogTeff, logTeffs, bcs); err!=nil { return nil, err }

	// B-V falls as temperature rises, so in ascending temperature order the
	// column is decreasing. Find the longest strictly decreasing run and
	// reverse it into the ascending order the spline fit requires.
	c.bvLo, c.bvHi=longestDecreasingRun(tbl.BVs())
	n:=c.bvHi-c.bvLo
	if n<2 { return nil, &table.IntegrityError{Reason: "B-V column has no strictly monotonic span"} }
	rbv, rbc, rteff:=make([]float64, n), make([]float64, n), make([]float64, n)
	for k:=0; k<n; k++ {
		s:=tbl.Sample(c.bvHi-1-k)
		rbv[k], rbc[k], rteff[k]=s.BV, s.BC, s.Teff
	}
	if c.bcOfBV,   err=fitSpline(AxisBV, rbv, rbc);   err!=nil { return nil, err }
	if c.teffOfBV, err=fitSpline(AxisBV, rbv, rteff); err!=nil { return nil, err }

	bcMin, bcMax:=bcs[0], bcs[0]
	for _, v:=range bcs {
		bcMin, bcMax=math.Min(bcMin, v), math.Max(bcMax, v)
	}
	c.domain=Domain{
		Teff:    Range{teffs[0], teffs[len(teffs)-1]},
		LogTeff: Range{logTeffs[0], logTeffs[len(logTeffs)-1]},
		BV:      Range{rbv[0], rbv[n-1]},
		BC:      Range{bcMin, bcMax},
		Samples: tbl.Len(),
	}
	return c, nil
}

// Fits a natural cubic spline after validating strictly increasing abscissas,
// which the fitter itself would panic on
func fitSpline(axis Axis, xs, ys []float64) (*interp.NaturalCubic, error) {
	for i:=1; i<len(xs); i++ {
		if xs[i]<=xs[i-1] {
			return nil, &table.IntegrityError{Reason: fmt.Sprintf("%s axis not strictly increasing at %g", axis, xs[i])}
		}
	}
	nc:=&interp.NaturalCubic{}
	if err:=nc.Fit(xs, ys); err!=nil { return nil, err }
	return nc, nil
}

// Returns the half-open bounds of the longest contiguous strictly decreasing
// run, preferring the earliest on ties
func longestDecreasingRun(xs []float64) (lo, hi int) {
	if len(xs)==0 { return 0, 0 }
	lo, hi=0, 1
	runLo:=0
	for i:=1; i<len(xs); i++ {
		if !(xs[i]<xs[i-1]) { runLo=i }
		if i+1-runLo>hi-lo { lo, hi=runLo, i+1 }
	}
	return lo, hi
}

// Evaluates the given spline at each query value under the configured
// out-of-domain policy. Under PolicyReject the whole call fails on the first
// value outside rng; under PolicyClamp out-of-range values evaluate at the
// nearest bound and the full results are returned together with a
// *DomainWarning. NaN has no nearest bound and is rejected under either policy.
func (c *Corrector) evalAll(sp *interp.NaturalCubic, axis Axis, rng Range, xs []float64) ([]float64, error) {
	res:=make([]float64, len(xs))
	var warn *DomainWarning
	for i, x:=range xs {
		if !rng.Contains(x) {
			if c.policy==PolicyReject || math.IsNaN(x) {
				return nil, &DomainError{Axis: axis, Value: x, Min: rng.Min, Max: rng.Max}
			}
			if warn==nil {
				warn=&DomainWarning{Axis: axis, Value: x, Min: rng.Min, Max: rng.Max}
			}
			warn.Clamped++
			if x<rng.Min { x=rng.Min } else { x=rng.Max }
		}
		res[i]=sp.Predict(x)
	}
	if warn!=nil { return res, warn }
	return res, nil
}

func (c *Corrector) eval(sp *interp.NaturalCubic, axis Axis, rng Range, x float64) (float64, error) {
	res, err:=c.evalAll(sp, axis, rng, []float64{x})
	if res==nil { return math.NaN(), err }
	return res[0], err
}

// BCFromTeff returns the bolometric correction for one effective temperature
// in Kelvin, validated against the calibrated temperature domain.
func (c *Corrector) BCFromTeff(teff float64) (float64, error) {
	return c.eval(c.bcOfTeff, AxisTeff, c.domain.Teff, teff)
}

// BCFromTeffs returns bolometric corrections for a sequence of effective
// temperatures in Kelvin. Results mirror the input order and length exactly.
// The whole call fails on the first out-of-domain value under PolicyReject;
// see evalAll for the clamping contract.
func (c *Corrector) BCFromTeffs(teffs []float64) ([]float64, error) {
	return c.evalAll(c.bcOfTeff, AxisTeff, c.domain.Teff, teffs)
}

// BCFromLogTeff returns the bolometric correction for one base-10 logarithmic
// temperature. The log-T axis has its own spline, distinct from the T axis.
func (c *Corrector) BCFromLogTeff(logTeff float64) (float64, error) {
	return c.eval(c.bcOfLogTeff, AxisLogTeff, c.domain.LogTeff, logTeff)
}

// BCFromLogTeffs is the sequence form of BCFromLogTeff, with the same
// ordering and failure contract as BCFromTeffs.
func (c *Corrector) BCFromLogTeffs(logTeffs []float64) ([]float64, error) {
	return c.evalAll(c.bcOfLogTeff, AxisLogTeff, c.domain.LogTeff, logTeffs)
}

// BCFromBV returns the bolometric correction for one B-V color index,
// validated against the strictly monotonic B-V run of the table.
func (c *Corrector) BCFromBV(bv float64) (float64, error) {
	return c.eval(c.bcOfBV, AxisBV, c.domain.BV, bv)
}

// BCFromBVs is the sequence form of BCFromBV, with the same ordering and
// failure contract as BCFromTeffs.
func (c *Corrector) BCFromBVs(bvs []float64) ([]float64, error) {
	return c.evalAll(c.bcOfBV, AxisBV, c.domain.BV, bvs)
}

// TeffFromBV estimates the effective temperature in Kelvin for one B-V color
// index, the reverse lookup. Same B-V domain as BCFromBV.
func (c *Corrector) TeffFromBV(bv float64) (float64, error) {
	return c.eval(c.teffOfBV, AxisBV, c.domain.BV, bv)
}

// TeffFromBVs is the sequence form of TeffFromBV, with the same ordering and
// failure contract as BCFromTeffs.
func (c *Corrector) TeffFromBVs(bvs []float64) ([]float64, error) {
	return c.evalAll(c.teffOfBV, AxisBV, c.domain.BV, bvs)
}

// Lookup dispatches a Query to the matching forward lookup operation.
// Unrecognized axes fail with an *AxisError.
func (c *Corrector) Lookup(q Query) ([]float64, error) {
	switch q.Axis {
	case AxisTeff:
		return c.BCFromTeffs(q.Values)
	case AxisLogTeff:
		return c.BCFromLogTeffs(q.Values)
	case AxisBV:
		return c.BCFromBVs(q.Values)
	}
	return nil, &AxisError{Kind: q.Axis.String()}
}

// Info returns the calibrated domain bounds for all four axes and the table's
// sample count. Pure query, no failure modes.
func (c *Corrector) Info() Domain { return c.domain }

// Policy returns the configured out-of-domain policy.
func (c *Corrector) Policy() Policy { return c.policy }
